// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum

import (
	"gonum.org/v1/gonum/mat"

	internalgonum "github.com/remat-ml/remat/internal/backend/gonum"
	"github.com/remat-ml/remat/remat"
)

// DenseAdapter exposes a gonum *mat.Dense through the handle contract.
// Views alias the matrix storage, so there is no transfer in either
// direction.
type DenseAdapter = internalgonum.DenseAdapter

// Compile-time check that DenseAdapter implements remat.Adapter.
var _ remat.Adapter = (*DenseAdapter)(nil)

// NewDenseAdapter wraps a dense matrix for handle access.
//
// The onCommit observer may be nil; when set it runs once per released
// write view.
//
// Example:
//
//	d := mat.NewDense(8, 8, nil)
//	handle := remat.New(gonum.NewDenseAdapter(d, nil))
func NewDenseAdapter(d *mat.Dense, onCommit func()) *DenseAdapter {
	return internalgonum.NewDenseAdapter(d, onCommit)
}
