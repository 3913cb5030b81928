package transforms

import (
	"testing"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

func TestIdentityHumanStrings(t *testing.T) {

	testCases := []struct {
		caseName string
		source   icetypes.Type
		value    any
		expStr   string
	}{
		{
			caseName: "null",
			source:   icetypes.LongType{},
			value:    nil,
			expStr:   "null",
		},
		{
			caseName: "long",
			source:   icetypes.LongType{},
			value:    int64(42),
			expStr:   "42",
		},
		{
			caseName: "string",
			source:   icetypes.StringType{},
			value:    "iceberg",
			expStr:   "iceberg",
		},
		{
			caseName: "binary-renders-base64",
			source:   icetypes.BinaryType{},
			value:    []byte{0x01, 0x02, 0x03},
			expStr:   "AQID",
		},
		{
			caseName: "date-renders-iso-day",
			source:   icetypes.DateType{},
			value:    int32(17486),
			expStr:   "2017-11-16",
		},
		{
			caseName: "time-renders-iso-time",
			source:   icetypes.TimeType{},
			value:    int64(81068000000),
			expStr:   "22:31:08",
		},
		{
			caseName: "timestamp-renders-without-offset",
			source:   icetypes.TimestampType{},
			value:    int64(1510871468000000),
			expStr:   "2017-11-16T22:31:08",
		},
		{
			caseName: "timestamptz-renders-with-offset",
			source:   icetypes.TimestamptzType{},
			value:    int64(1510871468000000),
			expStr:   "2017-11-16T22:31:08+00:00",
		},
		{
			caseName: "decimal",
			source:   icetypes.NewDecimalType(9, 2),
			value:    icetypes.NewDecimalFromI64(1420, 2),
			expStr:   "14.20",
		},
	}

	transform := NewIdentityTransform()
	for _, tc := range testCases {
		t.Run(tc.caseName, func(t *testing.T) {
			res := transform.ToHumanString(tc.source, tc.value)
			if res != tc.expStr {
				t.Errorf("expected %q but received %q", tc.expStr, res)
			}
		})
	}

}

func TestTruncateHumanStrings(t *testing.T) {

	transform := NewTruncateTransform(4)

	if res := transform.ToHumanString(icetypes.BinaryType{}, []byte{0x01, 0x02, 0x03}); res != "AQID" {
		t.Errorf("expected base64 string but received %q", res)
	}
	if res := transform.ToHumanString(icetypes.StringType{}, "abcd"); res != "abcd" {
		t.Errorf("expected plain string but received %q", res)
	}
	if res := transform.ToHumanString(icetypes.LongType{}, nil); res != "null" {
		t.Errorf("expected null literal but received %q", res)
	}

}

func TestBucketHumanStrings(t *testing.T) {

	transform := NewBucketTransform(16)

	if res := transform.ToHumanString(icetypes.LongType{}, int32(3)); res != "3" {
		t.Errorf("expected bucket number but received %q", res)
	}
	if res := transform.ToHumanString(icetypes.LongType{}, nil); res != "null" {
		t.Errorf("expected null literal but received %q", res)
	}

}
