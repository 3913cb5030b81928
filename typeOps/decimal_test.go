package typeops

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/decimal128"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

func TestDecimalToBytes(t *testing.T) {

	testCases := []struct {
		caseName string
		unscaled int64
		expBytes []byte
	}{
		{
			caseName: "reference-vector-14.20",
			unscaled: 1420,
			expBytes: []byte{0x05, 0x8C},
		},
		{
			caseName: "zero",
			unscaled: 0,
			expBytes: []byte{0x00},
		},
		{
			caseName: "small-positive",
			unscaled: 1,
			expBytes: []byte{0x01},
		},
		{
			caseName: "sign-bit-needs-leading-zero",
			unscaled: 128,
			expBytes: []byte{0x00, 0x80},
		},
		{
			caseName: "negative",
			unscaled: -1420,
			expBytes: []byte{0xFA, 0x74},
		},
		{
			caseName: "minus-one",
			unscaled: -1,
			expBytes: []byte{0xFF},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.caseName, func(t *testing.T) {
			res := DecimalToBytes(icetypes.NewDecimalFromI64(tc.unscaled, 2))
			if !bytes.Equal(res, tc.expBytes) {
				t.Errorf("expected bytes %X but received %X", tc.expBytes, res)
			}
		})
	}

}

func TestBigIntToMinimalBytes(t *testing.T) {

	// values beyond 64 bits keep the same minimal layout
	wide := new(big.Int).Lsh(big.NewInt(1), 72) // 2^72
	res := BigIntToMinimalBytes(wide)
	exp := append([]byte{0x01}, make([]byte, 9)...)
	if !bytes.Equal(res, exp) {
		t.Errorf("expected bytes %X but received %X", exp, res)
	}

}

// rounding the 128-bit minimum down leaves the representable range
func TestTruncateDecimalOutOfRange(t *testing.T) {

	minUnscaled := icetypes.NewDecimal(decimal128.New(math.MinInt64, 0), 2)
	if _, err := TruncateDecimal(minUnscaled, 10); !errors.Is(err, ErrDecimalOutOfRange) {
		t.Errorf("expected ErrDecimalOutOfRange but received '%s'", err)
	}

	// the maximum is already a multiple boundary away from overflow
	// in the other direction; truncation only ever rounds down
	maxUnscaled := icetypes.NewDecimal(decimal128.New(math.MaxInt64, math.MaxUint64), 2)
	if _, err := TruncateDecimal(maxUnscaled, 10); err != nil {
		t.Errorf("unexpected error truncating the 128-bit maximum: %s", err)
	}

}

func TestTruncateDecimal(t *testing.T) {

	testCases := []struct {
		caseName    string
		width       int
		unscaled    int64
		scale       int
		expUnscaled int64
		expErr      error
	}{
		{
			caseName:    "truncates-to-lower-multiple",
			width:       10,
			unscaled:    1099,
			scale:       2,
			expUnscaled: 1090,
		},
		{
			caseName:    "already-a-multiple",
			width:       10,
			unscaled:    1090,
			scale:       2,
			expUnscaled: 1090,
		},
		{
			caseName:    "negative-floors",
			width:       10,
			unscaled:    -1,
			scale:       2,
			expUnscaled: -10,
		},
		{
			caseName: "width-must-be-positive",
			width:    0,
			unscaled: 1099,
			scale:    2,
			expErr:   ErrInvalidTruncateWidth,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.caseName, func(t *testing.T) {
			res, err := TruncateDecimal(icetypes.NewDecimalFromI64(tc.unscaled, tc.scale), tc.width)
			if !errors.Is(err, tc.expErr) {
				t.Fatalf("expected error '%s' but received '%s'", tc.expErr, err)
			}
			if tc.expErr != nil {
				return
			}
			if res.UnscaledBigInt().Int64() != tc.expUnscaled {
				t.Errorf("expected unscaled %d but received %s", tc.expUnscaled, res.UnscaledBigInt())
			}
			if res.Scale != tc.scale {
				t.Errorf("expected scale %d but received %d", tc.scale, res.Scale)
			}
		})
	}

}
