package icetypes

import "errors"

var (
	ErrArrowTypeNotSupported = errors.New("arrow type not supported")
	ErrTimeUnitNotSupported  = errors.New("time unit not supported")
)
