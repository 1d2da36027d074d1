// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package remat

import (
	"github.com/remat-ml/remat/internal/remat"
)

// Type aliases for public API

// DType is a constraint for matrix element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = remat.DType

// DataType identifies the element type of matrix data.
type DataType = remat.DataType

// Data type constants.
const (
	Uint8   DataType = remat.Uint8
	Int32   DataType = remat.Int32
	Int64   DataType = remat.Int64
	Float32 DataType = remat.Float32
	Float64 DataType = remat.Float64
	Bool    DataType = remat.Bool
)

// Shape represents the dimensions of matrix data.
// Example: Shape{2, 3, 4} represents a 3D volume with dimensions 2×3×4.
type Shape = remat.Shape

// Desc pairs a shape with an element type. Two handles describe the same
// data layout exactly when their descriptors are Equal.
type Desc = remat.Desc

// RMat is the type-erased handle. The zero value is the empty handle:
// IsEmpty reports true and every access fails with ErrEmptyHandle.
//
// Handles are cheap to copy; copies share the same adapter.
type RMat = remat.RMat

// Sentinel errors returned by handle operations.
var (
	// ErrEmptyHandle reports an operation on a handle with no adapter.
	ErrEmptyHandle = remat.ErrEmptyHandle
	// ErrTypeMismatch reports a Get for an adapter type the handle does
	// not hold.
	ErrTypeMismatch = remat.ErrTypeMismatch
)

// Construction

// DescOf builds a descriptor from a shape and element type. The shape is
// copied, so later mutation of the argument does not affect the descriptor.
func DescOf(shape Shape, dtype DataType) Desc {
	return remat.DescOf(shape, dtype)
}

// New wraps an adapter in a handle. The adapter defines where the data
// lives and how views reach it.
//
// Example:
//
//	m, _ := remat.NewMat(remat.Shape{8, 8}, remat.Uint8)
//	handle := remat.New(remat.NewRefAdapter(m, nil))
func New(adapter Adapter) RMat {
	return remat.New(adapter)
}

// Type recovery

// Holds reports whether the handle's storage is owned by an adapter of
// exactly type A. It never matches across distinct adapter types, even
// when one wraps the other.
func Holds[A Adapter](r RMat) bool {
	return remat.Holds[A](r)
}

// Get returns the handle's adapter as type A.
//
// Fails with ErrEmptyHandle on the empty handle and ErrTypeMismatch when
// the handle holds a different adapter type. On success the returned
// adapter is the exact value the handle was built from, so backend-side
// state (device buffers, wrapped matrices) is recovered without a copy.
//
// Example:
//
//	if remat.Holds[*gonum.DenseAdapter](handle) {
//	    adapter, _ := remat.Get[*gonum.DenseAdapter](handle)
//	    dst.Add(dst, adapter.Dense())
//	}
func Get[A Adapter](r RMat) (A, error) {
	return remat.Get[A](r)
}
