package main

import (
	"log/slog"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
	"github.com/alekLukanen/IcebergTransforms/partitionFuncs"
	"github.com/alekLukanen/IcebergTransforms/transforms"
)

func main() {

	PartitionSampleRecord()

}

func PartitionSampleRecord() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger.Info("Running IcebergTransforms Scratch")

	mem := memory.NewGoAllocator()
	recBldr := array.NewRecordBuilder(mem, arrow.NewSchema(
		[]arrow.Field{
			{Name: "id", Type: arrow.PrimitiveTypes.Int64},
			{Name: "name", Type: arrow.BinaryTypes.String},
			{Name: "created", Type: arrow.FixedWidthTypes.Date32},
		},
		nil,
	))
	defer recBldr.Release()

	recBldr.Field(0).(*array.Int64Builder).AppendValues([]int64{34, 1_000, 2_500}, nil)
	recBldr.Field(1).(*array.StringBuilder).AppendValues([]string{"iceberg", "warehouse", "scratch"}, nil)
	recBldr.Field(2).(*array.Date32Builder).AppendValues([]arrow.Date32{17486, 17487, 17488}, nil)

	rec := recBldr.NewRecord()
	defer rec.Release()

	partitionSpecs := []struct {
		column string
		spec   string
	}{
		{column: "id", spec: "bucket[16]"},
		{column: "name", spec: "truncate[4]"},
		{column: "created", spec: "identity"},
	}

	for _, partitionSpec := range partitionSpecs {
		transform, err := transforms.ParseTransform(partitionSpec.spec)
		if err != nil {
			logger.Error("failed to parse transform", slog.String("error", err.Error()))
			return
		}

		arr, err := partitionFuncs.TransformPartition(
			mem, rec, partitionSpec.column, partitionFuncs.NewTransformPartitionOptions(transform),
		)
		if err != nil {
			logger.Error("failed to partition record", slog.String("error", err.Error()))
			return
		}

		sourceType, err := icetypes.FromArrow(
			rec.Column(rec.Schema().FieldIndices(partitionSpec.column)[0]).DataType(),
		)
		if err != nil {
			logger.Error("failed to map column type", slog.String("error", err.Error()))
			return
		}

		humanValues := make([]string, 0, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			value, err := partitionFuncs.ColumnValue(arr, i)
			if err != nil {
				logger.Error("failed to read partition value", slog.String("error", err.Error()))
				return
			}
			humanValues = append(humanValues, transform.ToHumanString(sourceType, value))
		}

		logger.Info(
			"partitioned column",
			slog.String("column", partitionSpec.column),
			slog.String("transform", transform.String()),
			slog.String("partitionArray", arr.String()),
			slog.Any("humanValues", humanValues),
		)
	}

}
