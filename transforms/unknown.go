package transforms

import (
	"fmt"

	"github.com/alekLukanen/errs"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

/*
* UnknownTransform stands in for a specifier this version does not
* recognize, so metadata written by a newer format version still
* parses. Its canonical string is the fixed literal "unknown" while
* the original specifier is kept in Raw for diagnostics. Applying it
* is a caller error: CanTransform is always false and Bind always
* fails.
 */
type UnknownTransform struct {
	Raw string
}

func NewUnknownTransform(raw string) UnknownTransform {
	return UnknownTransform{Raw: raw}
}

func (obj UnknownTransform) String() string {
	return unknownSpec
}

func (obj UnknownTransform) CanTransform(_ icetypes.Type) bool {
	return false
}

func (obj UnknownTransform) Bind(_ icetypes.Type) (RowMapper, error) {
	return nil, errs.NewStackError(
		fmt.Errorf("%w: cannot apply unknown transform %q", ErrUnsupportedTransform, obj.Raw),
	)
}

func (obj UnknownTransform) ResultType(_ icetypes.Type) (icetypes.Type, error) {
	return icetypes.StringType{}, nil
}

func (obj UnknownTransform) PreservesOrder() bool {
	return false
}

func (obj UnknownTransform) SatisfiesOrderOf(_ icetypes.Type, other Transform) bool {
	return Equal(obj, other)
}

func (obj UnknownTransform) ToHumanString(_ icetypes.Type, value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}
