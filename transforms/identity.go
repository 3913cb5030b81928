package transforms

import (
	"fmt"

	"github.com/alekLukanen/errs"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

// IdentityTransform maps every value to itself. It accepts any
// primitive source type and preserves ordering.
type IdentityTransform struct{}

func NewIdentityTransform() IdentityTransform {
	return IdentityTransform{}
}

func (obj IdentityTransform) String() string {
	return identitySpec
}

func (obj IdentityTransform) CanTransform(source icetypes.Type) bool {
	return source != nil && source.IsPrimitive()
}

func (obj IdentityTransform) Bind(source icetypes.Type) (RowMapper, error) {
	if !obj.CanTransform(source) {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: identity over %s", ErrUnsupportedTransform, source),
		)
	}
	return func(value any) (any, error) {
		return value, nil
	}, nil
}

func (obj IdentityTransform) ResultType(source icetypes.Type) (icetypes.Type, error) {
	if !obj.CanTransform(source) {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: identity over %s", ErrUnsupportedTransform, source),
		)
	}
	return source, nil
}

func (obj IdentityTransform) PreservesOrder() bool {
	return true
}

// ordering by raw value is compatible with any other order
// preserving transform of the same values
func (obj IdentityTransform) SatisfiesOrderOf(_ icetypes.Type, other Transform) bool {
	return other != nil && other.PreservesOrder()
}

func (obj IdentityTransform) ToHumanString(source icetypes.Type, value any) string {
	return humanString(source, value)
}
