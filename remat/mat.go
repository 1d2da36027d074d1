// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package remat

import (
	"github.com/remat-ml/remat/internal/remat"
)

// Mat is a plain host matrix with dense row-major storage.
//
// Mat provides:
//   - Shape and type information via Shape(), DType(), Desc()
//   - Type-safe data access via AsUint8(), AsFloat64(), etc.
//   - Deep copies via Clone() and desc-checked copies via CopyTo()
//
// It is the default storage behind RefAdapter and ShadowAdapter, and the
// staging type device backends use for host shadows.
//
// Example:
//
//	m, _ := remat.NewMat(remat.Shape{2, 3}, remat.Float32)
//	data := m.AsFloat32() // Type-safe access
//	clone := m.Clone()    // Independent storage
type Mat = remat.Mat

// NewMat creates a zero-filled matrix with the given shape and element
// type. The shape must have at least one dimension and no non-positive
// extents.
func NewMat(shape Shape, dtype DataType) (*Mat, error) {
	return remat.NewMat(shape, dtype)
}

// FromSlice creates a matrix by copying a typed slice. The slice length
// must match the shape's element count; the element type is inferred.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	m, err := remat.FromSlice(remat.Shape{2, 3}, data)
func FromSlice[T DType](shape Shape, data []T) (*Mat, error) {
	return remat.FromSlice(shape, data)
}

// WrapBytes creates a matrix aliasing an existing byte buffer. No copy is
// made: writes through the matrix are visible in the buffer and vice
// versa. The buffer must hold at least the descriptor's byte size.
//
// This is a low-level function for callers that already own storage, such
// as decoders and backend staging paths.
func WrapBytes(shape Shape, dtype DataType, data []byte) (*Mat, error) {
	return remat.WrapBytes(shape, dtype, data)
}
