package transforms

import (
	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

// VoidTransform maps every value, null included, to null: the column
// is not partitioned on, so all rows collapse into one partition. A
// plain comparable value, not a singleton; equality is by canonical
// string like every other transform.
type VoidTransform struct{}

func NewVoidTransform() VoidTransform {
	return VoidTransform{}
}

func (obj VoidTransform) String() string {
	return voidSpec
}

func (obj VoidTransform) CanTransform(source icetypes.Type) bool {
	return source != nil
}

func (obj VoidTransform) Bind(_ icetypes.Type) (RowMapper, error) {
	return func(_ any) (any, error) {
		return nil, nil
	}, nil
}

func (obj VoidTransform) ResultType(source icetypes.Type) (icetypes.Type, error) {
	return source, nil
}

func (obj VoidTransform) PreservesOrder() bool {
	return false
}

func (obj VoidTransform) SatisfiesOrderOf(_ icetypes.Type, other Transform) bool {
	return Equal(obj, other)
}

func (obj VoidTransform) ToHumanString(_ icetypes.Type, _ any) string {
	return "null"
}
