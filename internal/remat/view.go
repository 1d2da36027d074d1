package remat

import (
	"fmt"
	"unsafe"
)

// Access selects how a view of the underlying data will be used.
type Access int

// Supported access modes for views.
const (
	// Read views observe current data and never trigger a commit.
	Read Access = iota
	// Write views stage new data; releasing the view commits it.
	Write
)

// String returns a human-readable access mode name.
func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "unknown"
	}
}

// commitGuard fires a write view's completion callback at most once.
// It is shared by pointer so that copies of a View cannot re-arm it.
type commitGuard struct {
	fn    func()
	fired bool
}

func (g *commitGuard) fire() {
	if g.fired {
		panic("write view committed twice")
	}
	g.fired = true
	if g.fn != nil {
		g.fn()
	}
}

// View is a window onto matrix data: a byte buffer, its descriptor, and the
// byte step between rows. A view obtained for writing carries a completion
// callback that fires exactly once, when the view is released.
//
// The usual pattern is an access followed by a deferred release:
//
//	v, err := r.Access(remat.Write)
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//	copy(v.Data(), payload)
//
// The zero View is an inert sentinel: no data, a zero descriptor, and
// releasing it is a no-op.
type View struct {
	desc  Desc
	data  []byte
	step  int
	guard *commitGuard
}

// NewView builds a read view over data. Read views carry no completion
// callback; releasing one is a no-op.
func NewView(desc Desc, data []byte, step int) View {
	return View{desc: desc, data: data, step: step}
}

// NewWriteView builds a write view over data. commit runs exactly once when
// the view is released; it may be nil when the producer needs no completion
// signal.
func NewWriteView(desc Desc, data []byte, step int, commit func()) View {
	return View{desc: desc, data: data, step: step, guard: &commitGuard{fn: commit}}
}

// Release ends the view's access window. For a write view this commits the
// staged data by firing the completion callback; releasing the same write
// view twice is a programming error and panics. Releasing a read view or
// the zero View does nothing.
func (v View) Release() {
	if v.guard != nil {
		v.guard.fire()
	}
}

// Desc returns the view's descriptor.
func (v View) Desc() Desc {
	return v.desc
}

// Shape returns the viewed data's shape.
func (v View) Shape() Shape {
	return v.desc.Shape
}

// DType returns the viewed data's element type.
func (v View) DType() DataType {
	return v.desc.DType
}

// Step returns the number of bytes between the starts of successive rows.
func (v View) Step() int {
	return v.step
}

// ByteSize returns the size of the viewed window in bytes.
func (v View) ByteSize() int {
	return len(v.data)
}

// Data returns the viewed bytes. The slice aliases the producer's buffer;
// it stays valid until the view is released.
func (v View) Data() []byte {
	return v.data
}

// Ptr returns the base address of the viewed data, or nil for a view over
// no data.
func (v View) Ptr() unsafe.Pointer {
	if len(v.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&v.data[0])
}

// Contiguous reports whether the viewed rows are densely packed, with no
// padding bytes between them.
func (v View) Contiguous() bool {
	if len(v.desc.Shape) < 2 || v.desc.Shape[0] <= 1 {
		return true
	}
	return v.step == v.desc.ByteSize()/v.desc.Shape[0]
}

// AsUint8 interprets the viewed data as []uint8.
// Panics if the view's dtype is not Uint8 or the view is not contiguous.
func (v View) AsUint8() []uint8 {
	v.checkTyped(Uint8)
	return v.data
}

// AsInt32 interprets the viewed data as []int32.
// Panics if the view's dtype is not Int32 or the view is not contiguous.
func (v View) AsInt32() []int32 {
	v.checkTyped(Int32)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&v.data[0])), v.desc.NumElements())
}

// AsInt64 interprets the viewed data as []int64.
// Panics if the view's dtype is not Int64 or the view is not contiguous.
func (v View) AsInt64() []int64 {
	v.checkTyped(Int64)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&v.data[0])), v.desc.NumElements())
}

// AsFloat32 interprets the viewed data as []float32.
// Panics if the view's dtype is not Float32 or the view is not contiguous.
func (v View) AsFloat32() []float32 {
	v.checkTyped(Float32)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&v.data[0])), v.desc.NumElements())
}

// AsFloat64 interprets the viewed data as []float64.
// Panics if the view's dtype is not Float64 or the view is not contiguous.
func (v View) AsFloat64() []float64 {
	v.checkTyped(Float64)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&v.data[0])), v.desc.NumElements())
}

// AsBool interprets the viewed data as []bool.
// Panics if the view's dtype is not Bool or the view is not contiguous.
func (v View) AsBool() []bool {
	v.checkTyped(Bool)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&v.data[0])), v.desc.NumElements())
}

func (v View) checkTyped(want DataType) {
	if v.desc.DType != want {
		panic(fmt.Sprintf("view dtype is %s, not %s", v.desc.DType, want))
	}
	if len(v.data) == 0 {
		panic("typed access on a view over no data")
	}
	if !v.Contiguous() {
		panic(fmt.Sprintf("typed access on a non-contiguous view (step %d)", v.step))
	}
}
