package remat

import (
	"errors"
	"fmt"
	"reflect"
)

// Errors reported by handle operations.
var (
	// ErrEmptyHandle is returned when data access or adapter recovery is
	// attempted on a handle that holds no adapter.
	ErrEmptyHandle = errors.New("empty handle")

	// ErrTypeMismatch is returned when adapter recovery requests a type
	// other than the one the handle holds.
	ErrTypeMismatch = errors.New("adapter type mismatch")
)

// RMat is a type-erased handle to matrix data whose storage lives behind an
// Adapter. Pipelines move RMat values around without knowing whether the
// data sits in host memory, on a device, or inside a wrapped external
// buffer; backends recover their concrete adapter with Get when they need
// the specific representation back.
//
// Copies of an RMat share the same adapter. The zero value is the empty
// handle: it has no descriptor, and every access or recovery on it fails.
//
// RMat itself performs no synchronization; concurrent use of one adapter
// through any number of handles follows that adapter's own rules.
type RMat struct {
	adapter Adapter
}

// New wraps a freshly constructed adapter in a handle. The handle (together
// with its copies) assumes ownership of the adapter; release of
// exclusively-owned storage is the adapter's business, typically via a
// finalizer. Panics if adapter is nil; use the zero RMat for an
// intentionally empty handle.
func New(adapter Adapter) RMat {
	if adapter == nil {
		panic("nil adapter")
	}
	return RMat{adapter: adapter}
}

// IsEmpty reports whether the handle holds no adapter.
func (r RMat) IsEmpty() bool {
	return r.adapter == nil
}

// Desc returns the descriptor of the held data. Calling Desc on an empty
// handle is a programming error and panics; probe with IsEmpty first.
func (r RMat) Desc() Desc {
	if r.adapter == nil {
		panic("Desc on empty handle")
	}
	return r.adapter.Desc()
}

// Access obtains a view of the held data for the given mode, blocking until
// the view is usable. It returns ErrEmptyHandle on an empty handle; any
// other error comes from the adapter unchanged.
//
// Release the returned view when done. For Write access the release is what
// commits the staged data.
func (r RMat) Access(a Access) (View, error) {
	if r.adapter == nil {
		return View{}, fmt.Errorf("%s access: %w", a, ErrEmptyHandle)
	}
	return r.adapter.Access(a)
}

// Holds reports whether the handle's adapter is exactly of type A. It
// compares runtime type identity, so a handle holding *webgpu.BufferAdapter
// is held as that pointer type and nothing else. Holds never fails: an
// empty handle simply holds nothing.
func Holds[A Adapter](r RMat) bool {
	if r.adapter == nil {
		return false
	}
	return reflect.TypeOf(r.adapter) == reflect.TypeFor[A]()
}

// Get recovers the handle's adapter as its concrete type A, giving a
// backend its specific representation back. It fails with ErrEmptyHandle on
// an empty handle and with ErrTypeMismatch when the held adapter's runtime
// type is not exactly A.
func Get[A Adapter](r RMat) (A, error) {
	var zero A
	if r.adapter == nil {
		return zero, fmt.Errorf("get %v: %w", reflect.TypeFor[A](), ErrEmptyHandle)
	}
	if reflect.TypeOf(r.adapter) != reflect.TypeFor[A]() {
		return zero, fmt.Errorf("handle holds %T, not %v: %w", r.adapter, reflect.TypeFor[A](), ErrTypeMismatch)
	}
	return r.adapter.(A), nil
}
