// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum bridges handles and gonum dense matrices.
//
// # Overview
//
// This package adapts a gonum *mat.Dense as handle storage:
//   - Zero-copy views over the float64 backing array
//   - In-place writes visible to gonum arithmetic immediately
//   - Exact adapter recovery on the gonum side via remat.Get
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/remat-ml/remat/backend/gonum"
//	    "github.com/remat-ml/remat/remat"
//	)
//
//	func main() {
//	    d := mat.NewDense(8, 8, nil)
//	    handle := remat.New(gonum.NewDenseAdapter(d, nil))
//
//	    // Handle consumers write, gonum reads.
//	    view, _ := handle.Access(remat.Write)
//	    fill(view.AsFloat64())
//	    view.Release()
//
//	    total := mat.Sum(d)
//	}
//
// # Strided Matrices
//
// A Dense produced by Slice keeps its parent's stride. Views over such a
// matrix are non-contiguous: typed slice access panics, and consumers must
// walk rows via Data and Step instead.
package gonum
