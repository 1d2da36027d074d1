// Package gonum adapts gonum dense matrices as handle storage.
//
// Views are zero-copy: they alias the float64 backing array of the wrapped
// *mat.Dense, so gonum code and handle consumers observe each other's
// writes without a transfer.
package gonum

import (
	"unsafe"

	"gonum.org/v1/gonum/mat"

	"github.com/remat-ml/remat/internal/remat"
)

// Verify that DenseAdapter implements Adapter.
var _ remat.Adapter = (*DenseAdapter)(nil)

// DenseAdapter exposes a gonum *mat.Dense through the handle contract.
// Write views mutate the dense matrix in place; the commit callback only
// notifies the observer, since the data is already where it lives.
type DenseAdapter struct {
	dense    *mat.Dense
	onCommit func()
}

// NewDenseAdapter wraps a dense matrix. The onCommit observer may be nil;
// when set it runs once per released write view.
func NewDenseAdapter(d *mat.Dense, onCommit func()) *DenseAdapter {
	if d == nil {
		panic("nil dense matrix")
	}
	if d.IsEmpty() {
		panic("empty dense matrix")
	}
	return &DenseAdapter{dense: d, onCommit: onCommit}
}

// Dense returns the wrapped matrix for callers that recovered this adapter
// from a handle.
func (a *DenseAdapter) Dense() *mat.Dense {
	return a.dense
}

// Desc describes the dense matrix as rows x cols of float64.
func (a *DenseAdapter) Desc() remat.Desc {
	r, c := a.dense.Dims()
	return remat.DescOf(remat.Shape{r, c}, remat.Float64)
}

// Access returns a view aliasing the dense matrix storage. The view step
// follows the gonum stride, so a submatrix-backed Dense yields a
// non-contiguous view.
func (a *DenseAdapter) Access(acc remat.Access) (remat.View, error) {
	raw := a.dense.RawMatrix()

	// Span from the first to the last addressable element. For a
	// submatrix this is shorter than rows*stride.
	span := (raw.Rows-1)*raw.Stride + raw.Cols
	//nolint:gosec // G103: zero-copy reinterpretation of the float64 backing array.
	data := unsafe.Slice((*byte)(unsafe.Pointer(&raw.Data[0])), span*8)
	step := raw.Stride * 8

	if acc == remat.Write {
		return remat.NewWriteView(a.Desc(), data, step, a.onCommit), nil
	}
	return remat.NewView(a.Desc(), data, step), nil
}
