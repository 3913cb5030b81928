package partitionFuncs

import (
	"fmt"

	"github.com/alekLukanen/errs"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
	"github.com/alekLukanen/IcebergTransforms/transforms"
)

type PartitionFunc func(*memory.GoAllocator, arrow.Record, string, *TransformPartitionOptions) (arrow.Array, error)

type TransformPartitionOptions struct {
	Transform transforms.Transform
}

func NewTransformPartitionOptions(transform transforms.Transform) *TransformPartitionOptions {
	return &TransformPartitionOptions{
		Transform: transform,
	}
}

func (obj *TransformPartitionOptions) PartitionType() string {
	if obj.Transform == nil {
		return ""
	}
	return obj.Transform.String()
}

func (obj *TransformPartitionOptions) PartitionFunc() PartitionFunc {
	return TransformPartition
}

func (obj *TransformPartitionOptions) Validate() error {
	if obj.Transform == nil {
		return errs.NewStackError(
			fmt.Errorf("%w: transform is nil", ErrInvalidPartitionOptions),
		)
	}
	return nil
}

/*
* Applies the partition transform to one column of the record and
* returns the per row partition values as an arrow array. Rows that
* are null in the source column are null in the result. The array
* dtype matches the transform's result type for the column's source
* type.
 */
func TransformPartition(mem *memory.GoAllocator, record arrow.Record, column string, options *TransformPartitionOptions) (arrow.Array, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	transform := options.Transform

	schema := record.Schema()
	columnIdxs := schema.FieldIndices(column)
	if len(columnIdxs) == 0 {
		return nil, errs.NewStackError(ErrColumnNotFound)
	} else if len(columnIdxs) > 1 {
		return nil, errs.NewStackError(ErrMultipleColumnsFound)
	}

	arr := record.Column(columnIdxs[0])
	sourceType, err := icetypes.FromArrow(arr.DataType())
	if err != nil {
		return nil, errs.Wrap(err, fmt.Errorf("column: %s", column))
	}

	if !transform.CanTransform(sourceType) {
		return nil, errs.NewStackError(
			fmt.Errorf(
				"%w: %s over column %q of type %s",
				ErrTransformNotApplicable,
				transform,
				column,
				sourceType,
			),
		)
	}

	rowMapper, err := transform.Bind(sourceType)
	if err != nil {
		return nil, err
	}
	resultType, err := transform.ResultType(sourceType)
	if err != nil {
		return nil, err
	}

	bldr := array.NewBuilder(mem, icetypes.ArrowType(resultType))
	defer bldr.Release()

	for i := 0; i < arr.Len(); i++ {
		value, err := ColumnValue(arr, i)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Errorf("column: %s, array index: %d", column, i))
		}
		mapped, err := rowMapper(value)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Errorf("column: %s, array index: %d", column, i))
		}
		if err := appendValue(bldr, mapped); err != nil {
			return nil, errs.Wrap(err, fmt.Errorf("column: %s, array index: %d", column, i))
		}
	}

	return bldr.NewArray(), nil
}

// ColumnValue reads one element of an arrow array as the runtime
// value a transform's row mapper expects, nil when the row is null.
func ColumnValue(arr arrow.Array, idx int) (any, error) {
	if arr.IsNull(idx) {
		return nil, nil
	}

	switch arr.DataType().ID() {
	case arrow.BOOL:
		return arr.(*array.Boolean).Value(idx), nil
	case arrow.INT32:
		return arr.(*array.Int32).Value(idx), nil
	case arrow.INT64:
		return arr.(*array.Int64).Value(idx), nil
	case arrow.FLOAT32:
		return arr.(*array.Float32).Value(idx), nil
	case arrow.FLOAT64:
		return arr.(*array.Float64).Value(idx), nil
	case arrow.DATE32:
		return int32(arr.(*array.Date32).Value(idx)), nil
	case arrow.TIME64:
		return int64(arr.(*array.Time64).Value(idx)), nil
	case arrow.TIMESTAMP:
		return int64(arr.(*array.Timestamp).Value(idx)), nil
	case arrow.STRING:
		return arr.(*array.String).Value(idx), nil
	case arrow.BINARY:
		return arr.(*array.Binary).Value(idx), nil
	case arrow.FIXED_SIZE_BINARY:
		return arr.(*array.FixedSizeBinary).Value(idx), nil
	case arrow.DECIMAL128:
		decType := arr.DataType().(*arrow.Decimal128Type)
		return icetypes.NewDecimal(arr.(*array.Decimal128).Value(idx), int(decType.Scale)), nil
	default:
		return nil, errs.NewStackError(
			fmt.Errorf("%w: %s", ErrColumnTypeNotImplemented, arr.DataType()),
		)
	}
}

func appendValue(bldr array.Builder, value any) error {
	if value == nil {
		bldr.AppendNull()
		return nil
	}

	switch b := bldr.(type) {
	case *array.BooleanBuilder:
		b.Append(value.(bool))
	case *array.Int32Builder:
		b.Append(value.(int32))
	case *array.Int64Builder:
		b.Append(value.(int64))
	case *array.Float32Builder:
		b.Append(value.(float32))
	case *array.Float64Builder:
		b.Append(value.(float64))
	case *array.Date32Builder:
		b.Append(arrow.Date32(value.(int32)))
	case *array.Time64Builder:
		b.Append(arrow.Time64(value.(int64)))
	case *array.TimestampBuilder:
		b.Append(arrow.Timestamp(value.(int64)))
	case *array.StringBuilder:
		b.Append(value.(string))
	case *array.BinaryBuilder:
		b.Append(value.([]byte))
	case *array.FixedSizeBinaryBuilder:
		b.Append(value.([]byte))
	case *array.Decimal128Builder:
		b.Append(value.(icetypes.Decimal).Value)
	default:
		return errs.NewStackError(
			fmt.Errorf("%w: %T", ErrBuilderTypeNotImplemented, bldr),
		)
	}
	return nil
}
