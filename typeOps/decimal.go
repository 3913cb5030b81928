package typeops

import (
	"fmt"
	"math/big"

	"github.com/alekLukanen/errs"
	"github.com/apache/arrow/go/v17/arrow/decimal128"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
)

/*
* Encodes the unscaled value of a decimal as a minimal two's
* complement big endian byte sequence. The byte length is always
* bitLen/8 + 1 so the sign bit is never ambiguous; unscaled 1420
* encodes as 0x05 0x8C. This layout is a cross implementation
* contract used by the bucket hash, so it must not change.
 */
func DecimalToBytes(value icetypes.Decimal) []byte {
	return BigIntToMinimalBytes(value.UnscaledBigInt())
}

func BigIntToMinimalBytes(value *big.Int) []byte {
	byteCount := value.BitLen()/8 + 1
	out := make([]byte, byteCount)
	if value.Sign() >= 0 {
		value.FillBytes(out)
		return out
	}

	// two's complement of a negative value: v + 2^(8*n)
	wrapped := new(big.Int).Lsh(big.NewInt(1), uint(8*byteCount))
	wrapped.Add(wrapped, value)
	wrapped.FillBytes(out)
	return out
}

/*
* Truncates a decimal to the nearest lower multiple of width at the
* same scale. The width applies to the unscaled value, so
* truncate(width=50, 10.50 at scale 2) is 10.50 -> unscaled 1050,
* already a multiple of 50. Floor semantics for negative values.
 */
func TruncateDecimal(value icetypes.Decimal, width int) (icetypes.Decimal, error) {
	if width <= 0 {
		return icetypes.Decimal{}, errs.NewStackError(
			fmt.Errorf("%w: %d", ErrInvalidTruncateWidth, width),
		)
	}

	unscaled := value.UnscaledBigInt()
	remainder := new(big.Int).Mod(unscaled, big.NewInt(int64(width)))
	truncated := new(big.Int).Sub(unscaled, remainder)

	// rounding down can leave the 128-bit range when the unscaled
	// value sits within width of the minimum
	if truncated.Cmp(minDecimal128) < 0 || truncated.Cmp(maxDecimal128) > 0 {
		return icetypes.Decimal{}, errs.NewStackError(
			fmt.Errorf("%w: unscaled %s", ErrDecimalOutOfRange, truncated),
		)
	}
	return icetypes.NewDecimal(decimal128.FromBigInt(truncated), value.Scale), nil
}

var (
	maxDecimal128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minDecimal128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)
