package icetypes

import (
	"math/big"
	"strings"

	"github.com/apache/arrow/go/v17/arrow/decimal128"
)

/*
* A decimal runtime value: a 128-bit unscaled integer plus the scale
* it was declared with. The scale is carried on the value so that a
* transform does not need the declared DecimalType to re-render or
* truncate it.
 */
type Decimal struct {
	Value decimal128.Num
	Scale int
}

func NewDecimal(value decimal128.Num, scale int) Decimal {
	return Decimal{Value: value, Scale: scale}
}

func NewDecimalFromI64(unscaled int64, scale int) Decimal {
	return Decimal{Value: decimal128.FromI64(unscaled), Scale: scale}
}

func (obj Decimal) UnscaledBigInt() *big.Int {
	return obj.Value.BigInt()
}

func (obj Decimal) String() string {
	unscaled := obj.Value.BigInt()
	if obj.Scale <= 0 {
		return unscaled.String()
	}

	neg := unscaled.Sign() < 0
	digits := new(big.Int).Abs(unscaled).String()
	if len(digits) <= obj.Scale {
		digits = strings.Repeat("0", obj.Scale-len(digits)+1) + digits
	}
	pointAt := len(digits) - obj.Scale

	var bld strings.Builder
	if neg {
		bld.WriteByte('-')
	}
	bld.WriteString(digits[:pointAt])
	bld.WriteByte('.')
	bld.WriteString(digits[pointAt:])
	return bld.String()
}
