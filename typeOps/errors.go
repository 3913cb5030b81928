package typeops

import "errors"

var (
	ErrInvalidTruncateWidth = errors.New("invalid truncate width")
	ErrDecimalOutOfRange    = errors.New("decimal out of range")
)
