package partitionFuncs

import "errors"

var (
	ErrColumnNotFound            = errors.New("column not found")
	ErrMultipleColumnsFound      = errors.New("multiple columns found")
	ErrTransformNotApplicable    = errors.New("transform not applicable to column type")
	ErrInvalidPartitionOptions   = errors.New("invalid partition options")
	ErrColumnTypeNotImplemented  = errors.New("column type not implemented")
	ErrBuilderTypeNotImplemented = errors.New("builder type not implemented")
)
