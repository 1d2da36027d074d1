// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package remat provides type-erased handles for matrix data whose storage
// is owned by a backend.
//
// # Overview
//
// A handle (RMat) carries matrix data without naming where it lives. The
// storage policy sits behind the Adapter interface, so the same consumer
// code works over host memory, a gonum matrix, or a GPU buffer:
//   - RMat: the type-erased handle, cheap to copy
//   - Adapter: storage contract a backend implements
//   - View: host window over the data, with commit-on-release writes
//   - Mat: plain host matrix, the default storage and staging type
//
// # Basic Usage
//
//	import "github.com/remat-ml/remat/remat"
//
//	func main() {
//	    m, _ := remat.NewMat(remat.Shape{8, 8}, remat.Uint8)
//	    handle := remat.New(remat.NewRefAdapter(m, nil))
//
//	    view, _ := handle.Access(remat.Write)
//	    fill(view.AsUint8())
//	    view.Release() // commits the write
//	}
//
// # Access Protocol
//
// Access(Read) returns a view of the current data and never writes back.
// Access(Write) returns a view whose Release commits the staged data to
// the adapter's storage exactly once. Releasing a write view twice is a
// programming error and panics.
//
// # Type Recovery
//
// A backend that receives a handle from foreign code can check whether it
// owns the storage and recover its own adapter without a copy:
//
//	if remat.Holds[*gpu.BufferAdapter](handle) {
//	    adapter, _ := remat.Get[*gpu.BufferAdapter](handle)
//	    submit(adapter.Buffer())
//	}
//
// Get fails with ErrTypeMismatch when the handle holds another adapter
// type, and with ErrEmptyHandle on the zero handle.
//
// # Supported Data Types
//
// Descriptors cover the element types of the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Backends
//
// Storage implementations live under backend/:
//   - backend/gonum: zero-copy views over gonum *mat.Dense
//   - backend/webgpu: device-resident buffers with staged transfers (Windows)
//
// In-package policies RefAdapter (zero-copy) and ShadowAdapter (staging
// copy) cover plain host memory.
package remat
