package remat

import (
	"fmt"
	"strconv"
	"strings"
)

// Desc describes the matrix data behind a handle: its dimensions and element
// type. It is metadata only and never carries the data itself. Consumers
// compare descriptors to validate compatibility before touching any bytes.
//
// The zero Desc describes no data and is what empty views report.
type Desc struct {
	Shape Shape
	DType DataType
}

// DescOf builds a descriptor for the given shape and element type.
// The shape is cloned so later mutation of the argument cannot alias the
// descriptor.
func DescOf(shape Shape, dtype DataType) Desc {
	return Desc{Shape: shape.Clone(), DType: dtype}
}

// Equal reports whether two descriptors describe the same dimensions and
// element type.
func (d Desc) Equal(other Desc) bool {
	return d.DType == other.DType && d.Shape.Equal(other.Shape)
}

// NumElements returns the total number of elements described.
func (d Desc) NumElements() int {
	return d.Shape.NumElements()
}

// ByteSize returns the size in bytes of data matching the descriptor.
func (d Desc) ByteSize() int {
	return d.NumElements() * d.DType.Size()
}

// Clone returns a descriptor with its own copy of the shape.
func (d Desc) Clone() Desc {
	return Desc{Shape: d.Shape.Clone(), DType: d.DType}
}

// String returns a compact form such as "uint8[8x8]".
func (d Desc) String() string {
	if len(d.Shape) == 0 {
		return d.DType.String() + "[]"
	}
	dims := make([]string, len(d.Shape))
	for i, dim := range d.Shape {
		dims[i] = strconv.Itoa(dim)
	}
	return fmt.Sprintf("%s[%s]", d.DType, strings.Join(dims, "x"))
}
