package transforms

import (
	"encoding/base64"
	"fmt"

	"github.com/alekLukanen/errs"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
	"github.com/alekLukanen/IcebergTransforms/typeOps"
)

/*
* TruncateTransform reduces a value to a fixed width while keeping
* its ordering: integers round down to the nearest lower multiple of
* Width (floor semantics, so truncate[10] of -1 is -10), strings keep
* their first Width characters, binary values their first Width
* bytes, and decimals truncate their unscaled value to the nearest
* lower multiple of Width at the same scale.
 */
type TruncateTransform struct {
	Width int

	legacyFalsyNulls bool
}

func NewTruncateTransform(width int) TruncateTransform {
	return TruncateTransform{Width: width}
}

// WithLegacyFalsyNulls returns a copy that collapses 0 and empty
// values to null the way older writers do. See
// BucketTransform.WithLegacyFalsyNulls.
func (obj TruncateTransform) WithLegacyFalsyNulls() TruncateTransform {
	obj.legacyFalsyNulls = true
	return obj
}

func (obj TruncateTransform) String() string {
	return fmt.Sprintf("%s[%d]", truncateSpec, obj.Width)
}

func (obj TruncateTransform) CanTransform(source icetypes.Type) bool {
	if source == nil {
		return false
	}
	switch source.Kind() {
	case icetypes.KindInt, icetypes.KindLong,
		icetypes.KindString, icetypes.KindBinary,
		icetypes.KindDecimal:
		return true
	default:
		return false
	}
}

func (obj TruncateTransform) Bind(source icetypes.Type) (RowMapper, error) {
	truncateFunc, err := obj.truncateFunc(source)
	if err != nil {
		return nil, err
	}

	legacy := obj.legacyFalsyNulls
	return func(value any) (any, error) {
		if value == nil || (legacy && isFalsyValue(value)) {
			return nil, nil
		}
		return truncateFunc(value)
	}, nil
}

func (obj TruncateTransform) truncateFunc(source icetypes.Type) (func(any) (any, error), error) {
	if source == nil {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: truncate over nil type", ErrUnsupportedTransform),
		)
	}

	width := obj.Width
	switch source.Kind() {
	case icetypes.KindInt:
		return func(value any) (any, error) {
			intValue, ok := value.(int32)
			if !ok {
				return nil, errs.NewStackError(
					fmt.Errorf("%w: expected int32 value, got %T", ErrValueNotSupported, value),
				)
			}
			return intValue - floorMod32(intValue, int32(width)), nil
		}, nil
	case icetypes.KindLong:
		return func(value any) (any, error) {
			longValue, ok := value.(int64)
			if !ok {
				return nil, errs.NewStackError(
					fmt.Errorf("%w: expected int64 value, got %T", ErrValueNotSupported, value),
				)
			}
			return longValue - floorMod64(longValue, int64(width)), nil
		}, nil
	case icetypes.KindString:
		return func(value any) (any, error) {
			stringValue, ok := value.(string)
			if !ok {
				return nil, errs.NewStackError(
					fmt.Errorf("%w: expected string value, got %T", ErrValueNotSupported, value),
				)
			}
			return truncateString(stringValue, width), nil
		}, nil
	case icetypes.KindBinary:
		return func(value any) (any, error) {
			bytesValue, ok := value.([]byte)
			if !ok {
				return nil, errs.NewStackError(
					fmt.Errorf("%w: expected byte value, got %T", ErrValueNotSupported, value),
				)
			}
			if len(bytesValue) <= width {
				return bytesValue, nil
			}
			// copy so the partition value does not alias the
			// caller's backing array
			return append([]byte(nil), bytesValue[:width]...), nil
		}, nil
	case icetypes.KindDecimal:
		return func(value any) (any, error) {
			decimalValue, ok := value.(icetypes.Decimal)
			if !ok {
				return nil, errs.NewStackError(
					fmt.Errorf("%w: expected decimal value, got %T", ErrValueNotSupported, value),
				)
			}
			return typeops.TruncateDecimal(decimalValue, width)
		}, nil
	default:
		return nil, errs.NewStackError(
			fmt.Errorf("%w: truncate over %s", ErrUnsupportedTransform, source),
		)
	}
}

func (obj TruncateTransform) ResultType(source icetypes.Type) (icetypes.Type, error) {
	if !obj.CanTransform(source) {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: truncate over %s", ErrUnsupportedTransform, source),
		)
	}
	return source, nil
}

func (obj TruncateTransform) PreservesOrder() bool {
	return true
}

/*
* A wider string truncation keeps strictly more information than a
* narrower one, so truncate[W] satisfies the ordering of truncate[V]
* whenever W >= V over a string source. No compatibility is claimed
* across other source types or mixed variants.
 */
func (obj TruncateTransform) SatisfiesOrderOf(source icetypes.Type, other Transform) bool {
	if Equal(obj, other) {
		return true
	}
	otherTruncate, ok := other.(TruncateTransform)
	if !ok {
		return false
	}
	if source == nil || source.Kind() != icetypes.KindString {
		return false
	}
	return obj.Width >= otherTruncate.Width
}

func (obj TruncateTransform) ToHumanString(source icetypes.Type, value any) string {
	if value == nil {
		return "null"
	}
	if bytesValue, ok := value.([]byte); ok {
		return base64.StdEncoding.EncodeToString(bytesValue)
	}
	return fmt.Sprintf("%v", value)
}

// floor style modulo: the result has the sign of the divisor, so
// v - floorMod(v, w) is the largest multiple of w not exceeding v
func floorMod32(v, w int32) int32 {
	r := v % w
	if r < 0 {
		r += w
	}
	return r
}

func floorMod64(v, w int64) int64 {
	r := v % w
	if r < 0 {
		r += w
	}
	return r
}

// strings truncate by character, not by byte, so a multi byte code
// point is never split
func truncateString(value string, width int) string {
	count := 0
	for idx := range value {
		if count == width {
			return value[:idx]
		}
		count++
	}
	return value
}
