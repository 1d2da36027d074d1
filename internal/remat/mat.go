package remat

import (
	"fmt"
	"unsafe"
)

// Mat is a host-resident matrix with a contiguous row-major buffer. It is
// the canonical storage type that reference adapters wrap and that device
// adapters stage transfers through.
//
// Unlike a handle, a Mat always owns or wraps concrete host memory; Clone
// produces an independent deep copy.
type Mat struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewMat allocates a zero-initialized matrix with the given shape and
// element type. The shape must have at least one dimension.
func NewMat(shape Shape, dtype DataType) (*Mat, error) {
	if err := validateMatShape(shape); err != nil {
		return nil, err
	}

	return &Mat{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice builds a matrix from a typed element slice. The elements are
// copied; the matrix never aliases the input slice.
func FromSlice[T DType](shape Shape, elems []T) (*Mat, error) {
	if err := validateMatShape(shape); err != nil {
		return nil, err
	}
	if len(elems) != shape.NumElements() {
		return nil, fmt.Errorf("shape %v needs %d elements, got %d", shape, shape.NumElements(), len(elems))
	}

	var zero T
	dtype := inferDataType(zero)
	m := &Mat{
		data:   make([]byte, len(elems)*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length derived from the input slice
	src := unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), len(elems)*dtype.Size())
	copy(m.data, src)
	return m, nil
}

// WrapBytes wraps an existing buffer without copying. The matrix aliases
// data for its whole lifetime, so writes through the matrix are visible to
// the buffer's owner and vice versa. The buffer must hold at least the
// number of bytes the shape and element type require.
func WrapBytes(shape Shape, dtype DataType, data []byte) (*Mat, error) {
	if err := validateMatShape(shape); err != nil {
		return nil, err
	}
	need := shape.NumElements() * dtype.Size()
	if len(data) < need {
		return nil, fmt.Errorf("buffer holds %d bytes, shape %v of %s needs %d", len(data), shape, dtype, need)
	}

	return &Mat{
		data:   data[:need],
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the matrix's shape.
func (m *Mat) Shape() Shape {
	return m.shape
}

// Strides returns the matrix's memory strides in elements.
func (m *Mat) Strides() []int {
	return m.stride
}

// DType returns the matrix's element type.
func (m *Mat) DType() DataType {
	return m.dtype
}

// Desc returns the matrix descriptor. The descriptor shares the receiver's
// shape; treat it as read-only.
func (m *Mat) Desc() Desc {
	return Desc{Shape: m.shape, DType: m.dtype}
}

// NumElements returns the total number of elements.
func (m *Mat) NumElements() int {
	return m.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (m *Mat) ByteSize() int {
	return len(m.data)
}

// Step returns the number of bytes between the starts of successive rows.
// Mat storage is always contiguous, so this is the row length in bytes.
func (m *Mat) Step() int {
	if len(m.shape) < 2 {
		return len(m.data)
	}
	return m.stride[0] * m.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (m *Mat) Data() []byte {
	return m.data
}

// AsUint8 interprets the data as []uint8.
// Panics if the matrix's dtype is not Uint8.
func (m *Mat) AsUint8() []uint8 {
	if m.dtype != Uint8 {
		panic(fmt.Sprintf("matrix dtype is %s, not uint8", m.dtype))
	}
	return m.data // Already []byte = []uint8
}

// AsInt32 interprets the data as []int32.
// Panics if the matrix's dtype is not Int32.
func (m *Mat) AsInt32() []int32 {
	if m.dtype != Int32 {
		panic(fmt.Sprintf("matrix dtype is %s, not int32", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the matrix's dtype is not Int64.
func (m *Mat) AsInt64() []int64 {
	if m.dtype != Int64 {
		panic(fmt.Sprintf("matrix dtype is %s, not int64", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsFloat32 interprets the data as []float32.
// Panics if the matrix's dtype is not Float32.
func (m *Mat) AsFloat32() []float32 {
	if m.dtype != Float32 {
		panic(fmt.Sprintf("matrix dtype is %s, not float32", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the matrix's dtype is not Float64.
func (m *Mat) AsFloat64() []float64 {
	if m.dtype != Float64 {
		panic(fmt.Sprintf("matrix dtype is %s, not float64", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the matrix's dtype is not Bool.
func (m *Mat) AsBool() []bool {
	if m.dtype != Bool {
		panic(fmt.Sprintf("matrix dtype is %s, not bool", m.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&m.data[0])), m.NumElements())
}

// Clone returns a deep copy of the matrix. The clone owns fresh storage
// even when the receiver wraps an external buffer.
func (m *Mat) Clone() *Mat {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return &Mat{
		data:   data,
		shape:  m.shape.Clone(),
		stride: append([]int(nil), m.stride...),
		dtype:  m.dtype,
	}
}

// CopyTo copies the receiver's elements into dst. The two matrices must
// have equal descriptors.
func (m *Mat) CopyTo(dst *Mat) error {
	if !m.Desc().Equal(dst.Desc()) {
		return fmt.Errorf("descriptor mismatch: %s vs %s", m.Desc(), dst.Desc())
	}
	copy(dst.data, m.data)
	return nil
}

// validateMatShape checks that a shape can describe matrix storage: at
// least one dimension, all of them positive.
func validateMatShape(shape Shape) error {
	if len(shape) == 0 {
		return fmt.Errorf("empty shape: a matrix needs at least one dimension")
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("invalid shape: %w", err)
	}
	return nil
}
