package remat

import (
	"bytes"
	"testing"
)

// Mat Creation Tests

func TestNewMatAllTypes(t *testing.T) {
	types := []struct {
		dtype       DataType
		elementSize int
	}{
		{Uint8, 1},
		{Int32, 4},
		{Int64, 8},
		{Float32, 4},
		{Float64, 8},
		{Bool, 1},
	}

	shape := Shape{2, 3}
	for _, tt := range types {
		m, err := NewMat(shape, tt.dtype)
		if err != nil {
			t.Fatalf("NewMat(%v, %v) failed: %v", shape, tt.dtype, err)
		}

		if m.DType() != tt.dtype {
			t.Errorf("DType = %v, want %v", m.DType(), tt.dtype)
		}

		expectedByteSize := 6 * tt.elementSize // 2*3 elements
		if m.ByteSize() != expectedByteSize {
			t.Errorf("ByteSize = %d, want %d for type %v", m.ByteSize(), expectedByteSize, tt.dtype)
		}
	}
}

func TestNewMatInvalidShape(t *testing.T) {
	invalidShapes := []Shape{
		{},
		{0},
		{-1},
		{2, 0},
		{2, -3},
	}

	for _, shape := range invalidShapes {
		_, err := NewMat(shape, Uint8)
		if err == nil {
			t.Errorf("NewMat(%v) should fail but didn't", shape)
		}
	}
}

func TestFromSlice(t *testing.T) {
	m, err := FromSlice(Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if m.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", m.DType())
	}

	data := m.AsFloat32()
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("element %d = %v, want %v", i, data[i], want)
		}
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []uint8{1, 2, 3, 4}
	m, err := FromSlice(Shape{2, 2}, src)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	src[0] = 99
	if m.AsUint8()[0] != 1 {
		t.Error("FromSlice should copy the input, not alias it")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice(Shape{2, 3}, []float32{1, 2, 3})
	if err == nil {
		t.Error("FromSlice with 3 elements for a 2x3 shape should fail")
	}
}

func TestWrapBytesAliases(t *testing.T) {
	buf := make([]byte, 64)
	m, err := WrapBytes(Shape{8, 8}, Uint8, buf)
	if err != nil {
		t.Fatalf("WrapBytes failed: %v", err)
	}

	m.AsUint8()[0] = 42
	if buf[0] != 42 {
		t.Error("writes through the matrix should be visible in the wrapped buffer")
	}

	buf[1] = 7
	if m.AsUint8()[1] != 7 {
		t.Error("writes to the wrapped buffer should be visible through the matrix")
	}
}

func TestWrapBytesTooSmall(t *testing.T) {
	_, err := WrapBytes(Shape{8, 8}, Uint8, make([]byte, 63))
	if err == nil {
		t.Error("WrapBytes with a 63-byte buffer for 64 bytes of data should fail")
	}
}

// Mat Accessor Tests

func TestMatAsInt64(t *testing.T) {
	m, _ := NewMat(Shape{3, 2}, Int64)
	data := m.AsInt64()

	if len(data) != 6 {
		t.Errorf("AsInt64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if m.AsInt64()[0] != 42 {
		t.Error("AsInt64 should return zero-copy slice")
	}
}

func TestMatAsUint8(t *testing.T) {
	m, _ := NewMat(Shape{4, 4}, Uint8)
	data := m.AsUint8()

	if len(data) != 16 {
		t.Errorf("AsUint8 length = %d, want 16", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 255
	if m.AsUint8()[0] != 255 {
		t.Error("AsUint8 should return zero-copy slice")
	}
}

func TestMatAsWrongTypePanics(t *testing.T) {
	m, _ := NewMat(Shape{2}, Float32)

	// AsFloat32 should work
	_ = m.AsFloat32()

	// AsFloat64 should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("AsFloat64 on a Float32 matrix should panic")
		}
	}()
	_ = m.AsFloat64()
}

func TestMatStep(t *testing.T) {
	tests := []struct {
		shape Shape
		dtype DataType
		want  int
	}{
		{Shape{4, 8}, Uint8, 8},
		{Shape{8}, Uint8, 8},
		{Shape{2, 3}, Float64, 24},
		{Shape{2, 3, 4}, Uint8, 12},
	}

	for _, tt := range tests {
		m, err := NewMat(tt.shape, tt.dtype)
		if err != nil {
			t.Fatalf("NewMat(%v, %v) failed: %v", tt.shape, tt.dtype, err)
		}
		if got := m.Step(); got != tt.want {
			t.Errorf("Step() of %v %s = %d, want %d", tt.shape, tt.dtype, got, tt.want)
		}
	}
}

func TestMatDesc(t *testing.T) {
	m, _ := NewMat(Shape{8, 8}, Uint8)
	want := DescOf(Shape{8, 8}, Uint8)

	if !m.Desc().Equal(want) {
		t.Errorf("Desc() = %s, want %s", m.Desc(), want)
	}
}

// Mat Copy Tests

func TestMatCloneIsDeep(t *testing.T) {
	m, _ := FromSlice(Shape{2, 2}, []uint8{1, 2, 3, 4})
	clone := m.Clone()

	clone.AsUint8()[0] = 99
	if m.AsUint8()[0] != 1 {
		t.Error("Clone should own independent storage")
	}
}

func TestMatCloneOfWrappedOwnsStorage(t *testing.T) {
	buf := make([]byte, 4)
	m, _ := WrapBytes(Shape{2, 2}, Uint8, buf)
	clone := m.Clone()

	buf[0] = 55
	if clone.AsUint8()[0] != 0 {
		t.Error("Clone of a wrapping matrix should not alias the wrapped buffer")
	}
}

func TestMatCopyTo(t *testing.T) {
	src, _ := FromSlice(Shape{2, 2}, []uint8{1, 2, 3, 4})
	dst, _ := NewMat(Shape{2, 2}, Uint8)

	if err := src.CopyTo(dst); err != nil {
		t.Fatalf("CopyTo failed: %v", err)
	}
	if !bytes.Equal(dst.Data(), src.Data()) {
		t.Error("CopyTo should copy all elements")
	}
}

func TestMatCopyToDescMismatch(t *testing.T) {
	src, _ := NewMat(Shape{2, 2}, Uint8)

	wrongShape, _ := NewMat(Shape{4}, Uint8)
	if err := src.CopyTo(wrongShape); err == nil {
		t.Error("CopyTo with a different shape should fail")
	}

	wrongType, _ := NewMat(Shape{2, 2}, Int32)
	if err := src.CopyTo(wrongType); err == nil {
		t.Error("CopyTo with a different dtype should fail")
	}
}
