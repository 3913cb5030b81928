package icetypes

import (
	"fmt"

	"github.com/alekLukanen/errs"
	"github.com/apache/arrow/go/v17/arrow"
)

/*
* Maps an arrow column dtype to the matching source type. Only the
* dtypes used by partition columns are supported. A 16 byte fixed
* size binary column maps to fixed[16], not uuid; columns holding
* uuids have to be declared with UUIDType{} directly.
 */
func FromArrow(dtype arrow.DataType) (Type, error) {
	switch dtype.ID() {
	case arrow.BOOL:
		return BooleanType{}, nil
	case arrow.INT32:
		return IntType{}, nil
	case arrow.INT64:
		return LongType{}, nil
	case arrow.FLOAT32:
		return FloatType{}, nil
	case arrow.FLOAT64:
		return DoubleType{}, nil
	case arrow.DATE32:
		return DateType{}, nil
	case arrow.TIME64:
		timeType := dtype.(*arrow.Time64Type)
		if timeType.Unit != arrow.Microsecond {
			return nil, errs.NewStackError(
				fmt.Errorf("%w: time64 unit %s", ErrTimeUnitNotSupported, timeType.Unit),
			)
		}
		return TimeType{}, nil
	case arrow.TIMESTAMP:
		tsType := dtype.(*arrow.TimestampType)
		if tsType.Unit != arrow.Microsecond {
			return nil, errs.NewStackError(
				fmt.Errorf("%w: timestamp unit %s", ErrTimeUnitNotSupported, tsType.Unit),
			)
		}
		if tsType.TimeZone == "" {
			return TimestampType{}, nil
		}
		return TimestamptzType{}, nil
	case arrow.STRING:
		return StringType{}, nil
	case arrow.BINARY:
		return BinaryType{}, nil
	case arrow.FIXED_SIZE_BINARY:
		fixedType := dtype.(*arrow.FixedSizeBinaryType)
		return FixedType{Width: fixedType.ByteWidth}, nil
	case arrow.DECIMAL128:
		decType := dtype.(*arrow.Decimal128Type)
		return DecimalType{Precision: int(decType.Precision), Scale: int(decType.Scale)}, nil
	case arrow.LIST:
		listType := dtype.(*arrow.ListType)
		element, err := FromArrow(listType.Elem())
		if err != nil {
			return nil, err
		}
		return ListType{Element: element}, nil
	default:
		return nil, errs.NewStackError(
			fmt.Errorf("%w: %s", ErrArrowTypeNotSupported, dtype),
		)
	}
}

// ArrowType returns the arrow dtype a column of the given source type
// is stored as. UUID values are stored as 16 byte fixed size binary.
func ArrowType(t Type) arrow.DataType {
	switch t.Kind() {
	case KindBoolean:
		return arrow.FixedWidthTypes.Boolean
	case KindInt:
		return arrow.PrimitiveTypes.Int32
	case KindLong:
		return arrow.PrimitiveTypes.Int64
	case KindFloat:
		return arrow.PrimitiveTypes.Float32
	case KindDouble:
		return arrow.PrimitiveTypes.Float64
	case KindDate:
		return arrow.FixedWidthTypes.Date32
	case KindTime:
		return arrow.FixedWidthTypes.Time64us
	case KindTimestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond}
	case KindTimestamptz:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}
	case KindString:
		return arrow.BinaryTypes.String
	case KindBinary:
		return arrow.BinaryTypes.Binary
	case KindFixed:
		return &arrow.FixedSizeBinaryType{ByteWidth: t.(FixedType).Width}
	case KindDecimal:
		decType := t.(DecimalType)
		return &arrow.Decimal128Type{
			Precision: int32(decType.Precision),
			Scale:     int32(decType.Scale),
		}
	case KindUUID:
		return &arrow.FixedSizeBinaryType{ByteWidth: 16}
	case KindList:
		return arrow.ListOf(ArrowType(t.(ListType).Element))
	default:
		return nil
	}
}
