package gonum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/remat-ml/remat/internal/remat"
)

func TestNewDenseAdapterPanics(t *testing.T) {
	assert.PanicsWithValue(t, "nil dense matrix", func() {
		NewDenseAdapter(nil, nil)
	})
	assert.PanicsWithValue(t, "empty dense matrix", func() {
		NewDenseAdapter(&mat.Dense{}, nil)
	})
}

func TestDenseAdapterDesc(t *testing.T) {
	d := mat.NewDense(3, 4, nil)
	adapter := NewDenseAdapter(d, nil)

	desc := adapter.Desc()
	assert.True(t, desc.Shape.Equal(remat.Shape{3, 4}))
	assert.Equal(t, remat.Float64, desc.DType)
	assert.Equal(t, 96, desc.ByteSize())
}

func TestReadViewAliasesDense(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	adapter := NewDenseAdapter(d, nil)

	view, err := adapter.Access(remat.Read)
	require.NoError(t, err)
	defer view.Release()

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, view.AsFloat64())

	// Mutations through gonum are visible without another access.
	d.Set(1, 2, 42)
	assert.Equal(t, 42.0, view.AsFloat64()[5])
}

func TestWriteViewMutatesDenseInPlace(t *testing.T) {
	commits := 0
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	adapter := NewDenseAdapter(d, func() { commits++ })

	view, err := adapter.Access(remat.Write)
	require.NoError(t, err)

	data := view.AsFloat64()
	for i := range data {
		data[i] = float64(i) * 10
	}

	// In-place storage: gonum sees the write before the view is released.
	assert.Equal(t, 30.0, d.At(1, 1))
	assert.Equal(t, 0, commits)

	view.Release()
	assert.Equal(t, 1, commits)
}

func TestReadViewNeverCommits(t *testing.T) {
	commits := 0
	adapter := NewDenseAdapter(mat.NewDense(2, 2, nil), func() { commits++ })

	view, err := adapter.Access(remat.Read)
	require.NoError(t, err)
	view.Release()

	assert.Equal(t, 0, commits)
}

func TestSubmatrixViewIsNonContiguous(t *testing.T) {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d.Set(i, j, float64(i*4+j))
		}
	}

	sub, ok := d.Slice(0, 2, 0, 2).(*mat.Dense)
	require.True(t, ok)

	adapter := NewDenseAdapter(sub, nil)
	assert.True(t, adapter.Desc().Shape.Equal(remat.Shape{2, 2}))

	view, err := adapter.Access(remat.Read)
	require.NoError(t, err)
	defer view.Release()

	// The view keeps the parent stride, so rows are 4 elements apart.
	assert.Equal(t, 32, view.Step())
	assert.False(t, view.Contiguous())
	assert.Panics(t, func() { view.AsFloat64() })
}

func TestHandleRecoversDenseAdapter(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	adapter := NewDenseAdapter(d, nil)
	handle := remat.New(adapter)

	require.True(t, remat.Holds[*DenseAdapter](handle))

	got, err := remat.Get[*DenseAdapter](handle)
	require.NoError(t, err)
	assert.Same(t, adapter, got)
	assert.Same(t, d, got.Dense())

	// A consumer that only knows the handle contract can still write, and
	// gonum arithmetic observes the result.
	view, err := handle.Access(remat.Write)
	require.NoError(t, err)
	copy(view.AsFloat64(), []float64{10, 20, 30, 40})
	view.Release()

	assert.Equal(t, 100.0, mat.Sum(d))
}
