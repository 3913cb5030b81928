package transforms

import "errors"

var (
	ErrParseTransform       = errors.New("invalid transform specifier")
	ErrUnsupportedTransform = errors.New("transform not supported for source type")
	ErrValueNotSupported    = errors.New("value not supported for source type")
)
