package transforms

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

func TestIdentityTransform(t *testing.T) {

	testCases := []struct {
		caseName string
		source   icetypes.Type
		value    any
	}{
		{
			caseName: "long",
			source:   icetypes.LongType{},
			value:    int64(42),
		},
		{
			caseName: "string",
			source:   icetypes.StringType{},
			value:    "hello-world",
		},
		{
			caseName: "boolean",
			source:   icetypes.BooleanType{},
			value:    true,
		},
		{
			caseName: "uuid",
			source:   icetypes.UUIDType{},
			value:    uuid.MustParse("f79c3e09-677c-4bbd-a479-3f349cb785e7"),
		},
		{
			caseName: "null",
			source:   icetypes.LongType{},
			value:    nil,
		},
	}

	transform := NewIdentityTransform()
	for _, tc := range testCases {
		t.Run(tc.caseName, func(t *testing.T) {
			rowMapper, err := transform.Bind(tc.source)
			if err != nil {
				t.Fatalf("unexpected error binding transform: %s", err)
			}
			mapped, err := rowMapper(tc.value)
			if err != nil {
				t.Fatalf("unexpected error mapping value: %s", err)
			}
			if mapped != tc.value {
				t.Errorf("expected value %v but received %v", tc.value, mapped)
			}

			resultType, err := transform.ResultType(tc.source)
			if err != nil {
				t.Fatalf("unexpected error from result type: %s", err)
			}
			if resultType != tc.source {
				t.Errorf("expected result type %s but received %s", tc.source, resultType)
			}
		})
	}

}

func TestIdentityCanTransform(t *testing.T) {

	transform := NewIdentityTransform()
	if !transform.CanTransform(icetypes.StringType{}) {
		t.Errorf("identity must accept primitive types")
	}
	if transform.CanTransform(icetypes.NewListType(icetypes.IntType{})) {
		t.Errorf("identity must reject non primitive types")
	}
	if _, err := transform.Bind(icetypes.NewListType(icetypes.IntType{})); !errors.Is(err, ErrUnsupportedTransform) {
		t.Errorf("expected bind over a list to fail with ErrUnsupportedTransform")
	}

}

func TestIdentityOrdering(t *testing.T) {

	transform := NewIdentityTransform()
	if !transform.PreservesOrder() {
		t.Errorf("identity must preserve order")
	}
	if !transform.SatisfiesOrderOf(icetypes.StringType{}, NewIdentityTransform()) {
		t.Errorf("identity must satisfy its own order")
	}
	if !transform.SatisfiesOrderOf(icetypes.StringType{}, NewTruncateTransform(4)) {
		t.Errorf("identity must satisfy the order of any order preserving transform")
	}
	if transform.SatisfiesOrderOf(icetypes.StringType{}, NewBucketTransform(16)) {
		t.Errorf("identity must not satisfy the order of a hash transform")
	}
	if transform.SatisfiesOrderOf(icetypes.StringType{}, NewVoidTransform()) {
		t.Errorf("identity must not satisfy the order of void")
	}

}
