// Package remat provides type-erased handles for matrix data with backend-defined storage.
package remat

// DType is a constraint for supported matrix element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~uint8 | ~int32 | ~int64 | ~float32 | ~float64 | ~bool
}

// DataType represents runtime element type information.
type DataType int

// Supported element types for matrix data.
const (
	Uint8 DataType = iota
	Int32
	Int64
	Float32
	Float64
	Bool
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Bool:
		return 1
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
