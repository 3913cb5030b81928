package transforms

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/alekLukanen/errs"
	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
	"github.com/alekLukanen/IcebergTransforms/typeOps"
)

/*
* BucketTransform hashes the source value into one of NumBuckets
* buckets: the value is byte encoded per source type, hashed with
* 32-bit murmur3 (x86 variant, seed 0), masked to the non-negative
* 31-bit range and reduced modulo NumBuckets. The byte encodings and
* the hash are a cross implementation contract; independent writers
* and readers must land identical values in identical buckets.
 */
type BucketTransform struct {
	NumBuckets int

	legacyFalsyNulls bool
}

func NewBucketTransform(numBuckets int) BucketTransform {
	return BucketTransform{NumBuckets: numBuckets}
}

/*
* WithLegacyFalsyNulls returns a copy that reproduces the null
* handling of older writers, where the value 0 and empty strings or
* byte sequences collapse to a null partition value. Only use this
* when byte identical layouts with data written by such writers are
* required; by default only an explicit null input maps to null.
 */
func (obj BucketTransform) WithLegacyFalsyNulls() BucketTransform {
	obj.legacyFalsyNulls = true
	return obj
}

func (obj BucketTransform) String() string {
	return fmt.Sprintf("%s[%d]", bucketSpec, obj.NumBuckets)
}

func (obj BucketTransform) CanTransform(source icetypes.Type) bool {
	if source == nil {
		return false
	}
	switch source.Kind() {
	case icetypes.KindInt, icetypes.KindLong,
		icetypes.KindDate, icetypes.KindTime,
		icetypes.KindTimestamp, icetypes.KindTimestamptz,
		icetypes.KindDecimal, icetypes.KindString,
		icetypes.KindFixed, icetypes.KindBinary,
		icetypes.KindUUID:
		return true
	default:
		return false
	}
}

func (obj BucketTransform) Bind(source icetypes.Type) (RowMapper, error) {
	hashFunc, err := obj.HashFunc(source)
	if err != nil {
		return nil, err
	}

	numBuckets := int32(obj.NumBuckets)
	legacy := obj.legacyFalsyNulls
	return func(value any) (any, error) {
		if value == nil || (legacy && isFalsyValue(value)) {
			return nil, nil
		}
		hashValue, err := hashFunc(value)
		if err != nil {
			return nil, err
		}
		return (hashValue & math.MaxInt32) % numBuckets, nil
	}, nil
}

/*
* HashFunc returns the raw 32-bit hash for values of the source
* type, before the bucket reduction. Exposed so conformance vectors
* published for the table format can be checked directly.
 */
func (obj BucketTransform) HashFunc(source icetypes.Type) (func(any) (int32, error), error) {
	if source == nil {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: bucket over nil type", ErrUnsupportedTransform),
		)
	}

	switch source.Kind() {
	case icetypes.KindInt, icetypes.KindLong,
		icetypes.KindDate, icetypes.KindTime,
		icetypes.KindTimestamp, icetypes.KindTimestamptz:
		return hashIntegral, nil
	case icetypes.KindDecimal:
		return hashDecimal, nil
	case icetypes.KindString:
		return hashString, nil
	case icetypes.KindFixed, icetypes.KindBinary:
		return hashBytes, nil
	case icetypes.KindUUID:
		return hashUUID, nil
	default:
		return nil, errs.NewStackError(
			fmt.Errorf("%w: bucket over %s", ErrUnsupportedTransform, source),
		)
	}
}

func (obj BucketTransform) ResultType(source icetypes.Type) (icetypes.Type, error) {
	if !obj.CanTransform(source) {
		return nil, errs.NewStackError(
			fmt.Errorf("%w: bucket over %s", ErrUnsupportedTransform, source),
		)
	}
	return icetypes.IntType{}, nil
}

// hash output is not monotonic in the input
func (obj BucketTransform) PreservesOrder() bool {
	return false
}

func (obj BucketTransform) SatisfiesOrderOf(_ icetypes.Type, other Transform) bool {
	return Equal(obj, other)
}

func (obj BucketTransform) ToHumanString(source icetypes.Type, value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}

func hash32(data []byte) int32 {
	return int32(murmur3.Sum32WithSeed(data, 0))
}

// all integral kinds hash their 64-bit representation packed little
// endian, so int and long values of equal magnitude land in the same
// bucket
func hashIntegral(value any) (int32, error) {
	var packed int64
	switch v := value.(type) {
	case int32:
		packed = int64(v)
	case int64:
		packed = v
	default:
		return 0, errs.NewStackError(
			fmt.Errorf("%w: expected integral value, got %T", ErrValueNotSupported, value),
		)
	}

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(packed))
	return hash32(buf), nil
}

// decimals hash the minimal big endian two's complement encoding of
// the unscaled value
func hashDecimal(value any) (int32, error) {
	decimalValue, ok := value.(icetypes.Decimal)
	if !ok {
		return 0, errs.NewStackError(
			fmt.Errorf("%w: expected decimal value, got %T", ErrValueNotSupported, value),
		)
	}
	return hash32(typeops.DecimalToBytes(decimalValue)), nil
}

func hashString(value any) (int32, error) {
	stringValue, ok := value.(string)
	if !ok {
		return 0, errs.NewStackError(
			fmt.Errorf("%w: expected string value, got %T", ErrValueNotSupported, value),
		)
	}
	return hash32([]byte(stringValue)), nil
}

func hashBytes(value any) (int32, error) {
	bytesValue, ok := value.([]byte)
	if !ok {
		return 0, errs.NewStackError(
			fmt.Errorf("%w: expected byte value, got %T", ErrValueNotSupported, value),
		)
	}
	return hash32(bytesValue), nil
}

// uuids hash their 16 raw bytes, high 64 bits then low 64 bits, each
// big endian
func hashUUID(value any) (int32, error) {
	uuidValue, ok := value.(uuid.UUID)
	if !ok {
		return 0, errs.NewStackError(
			fmt.Errorf("%w: expected uuid value, got %T", ErrValueNotSupported, value),
		)
	}
	return hash32(uuidValue[:]), nil
}

// the legacy falsy test: 0, empty string and empty byte sequence
// all collapse to null
func isFalsyValue(value any) bool {
	switch v := value.(type) {
	case int32:
		return v == 0
	case int64:
		return v == 0
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case icetypes.Decimal:
		return v.UnscaledBigInt().Sign() == 0
	default:
		return false
	}
}
