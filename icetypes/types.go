package icetypes

import (
	"fmt"
)

/*
* The closed set of source type kinds a partition transform can be
* bound to. Every kind except KindList is primitive. Transforms
* dispatch on the kind, so adding a type means adding one kind here
* and one entry in each transform's dispatch table.
 */
type TypeKind int

const (
	KindBoolean TypeKind = iota
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindDate
	KindTime
	KindTimestamp
	KindTimestamptz
	KindString
	KindBinary
	KindFixed
	KindDecimal
	KindUUID
	KindList
)

func (k TypeKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindTimestamp:
		return "timestamp"
	case KindTimestamptz:
		return "timestamptz"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindFixed:
		return "fixed"
	case KindDecimal:
		return "decimal"
	case KindUUID:
		return "uuid"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

type Type interface {
	Kind() TypeKind
	IsPrimitive() bool
	String() string
}

////////////////////////////////////////

type BooleanType struct{}

func (obj BooleanType) Kind() TypeKind    { return KindBoolean }
func (obj BooleanType) IsPrimitive() bool { return true }
func (obj BooleanType) String() string    { return "boolean" }

// 32-bit signed integers
type IntType struct{}

func (obj IntType) Kind() TypeKind    { return KindInt }
func (obj IntType) IsPrimitive() bool { return true }
func (obj IntType) String() string    { return "int" }

// 64-bit signed integers
type LongType struct{}

func (obj LongType) Kind() TypeKind    { return KindLong }
func (obj LongType) IsPrimitive() bool { return true }
func (obj LongType) String() string    { return "long" }

type FloatType struct{}

func (obj FloatType) Kind() TypeKind    { return KindFloat }
func (obj FloatType) IsPrimitive() bool { return true }
func (obj FloatType) String() string    { return "float" }

type DoubleType struct{}

func (obj DoubleType) Kind() TypeKind    { return KindDouble }
func (obj DoubleType) IsPrimitive() bool { return true }
func (obj DoubleType) String() string    { return "double" }

// calendar days since the unix epoch, stored as int32
type DateType struct{}

func (obj DateType) Kind() TypeKind    { return KindDate }
func (obj DateType) IsPrimitive() bool { return true }
func (obj DateType) String() string    { return "date" }

// microseconds from midnight, stored as int64
type TimeType struct{}

func (obj TimeType) Kind() TypeKind    { return KindTime }
func (obj TimeType) IsPrimitive() bool { return true }
func (obj TimeType) String() string    { return "time" }

// microseconds since the unix epoch, no zone, stored as int64
type TimestampType struct{}

func (obj TimestampType) Kind() TypeKind    { return KindTimestamp }
func (obj TimestampType) IsPrimitive() bool { return true }
func (obj TimestampType) String() string    { return "timestamp" }

// microseconds since the unix epoch in UTC, stored as int64
type TimestamptzType struct{}

func (obj TimestamptzType) Kind() TypeKind    { return KindTimestamptz }
func (obj TimestamptzType) IsPrimitive() bool { return true }
func (obj TimestamptzType) String() string    { return "timestamptz" }

type StringType struct{}

func (obj StringType) Kind() TypeKind    { return KindString }
func (obj StringType) IsPrimitive() bool { return true }
func (obj StringType) String() string    { return "string" }

type BinaryType struct{}

func (obj BinaryType) Kind() TypeKind    { return KindBinary }
func (obj BinaryType) IsPrimitive() bool { return true }
func (obj BinaryType) String() string    { return "binary" }

type FixedType struct {
	Width int
}

func NewFixedType(width int) FixedType {
	return FixedType{Width: width}
}

func (obj FixedType) Kind() TypeKind    { return KindFixed }
func (obj FixedType) IsPrimitive() bool { return true }
func (obj FixedType) String() string    { return fmt.Sprintf("fixed[%d]", obj.Width) }

type DecimalType struct {
	Precision int
	Scale     int
}

func NewDecimalType(precision, scale int) DecimalType {
	return DecimalType{Precision: precision, Scale: scale}
}

func (obj DecimalType) Kind() TypeKind    { return KindDecimal }
func (obj DecimalType) IsPrimitive() bool { return true }
func (obj DecimalType) String() string {
	return fmt.Sprintf("decimal(%d, %d)", obj.Precision, obj.Scale)
}

type UUIDType struct{}

func (obj UUIDType) Kind() TypeKind    { return KindUUID }
func (obj UUIDType) IsPrimitive() bool { return true }
func (obj UUIDType) String() string    { return "uuid" }

type ListType struct {
	Element Type
}

func NewListType(element Type) ListType {
	return ListType{Element: element}
}

func (obj ListType) Kind() TypeKind    { return KindList }
func (obj ListType) IsPrimitive() bool { return false }
func (obj ListType) String() string    { return fmt.Sprintf("list<%s>", obj.Element) }
