//go:build windows

// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides device-resident handle storage on WebGPU.
//
// WebGPU is a cross-platform graphics and compute API. This backend uses
// zero-CGO bindings and keeps matrix data in GPU storage buffers; host
// views move data through staged transfers.
//
// Example:
//
//	import (
//	    "github.com/remat-ml/remat/backend/webgpu"
//	    "github.com/remat-ml/remat/remat"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    m, _ := remat.NewMat(remat.Shape{8, 8}, remat.Uint8)
//	    adapter := gpu.Upload(m)
//	    defer adapter.Release()
//
//	    handle := remat.New(adapter)
//	}
package webgpu

import (
	internalwebgpu "github.com/remat-ml/remat/internal/backend/webgpu"
	"github.com/remat-ml/remat/remat"
)

// Backend owns the WebGPU device and allocates device-resident adapters
// via Upload and Alloc.
type Backend = internalwebgpu.Backend

// BufferAdapter holds matrix data in a GPU storage buffer. Reads sync
// device data into a host shadow; writes stage into the shadow and upload
// on release.
type BufferAdapter = internalwebgpu.BufferAdapter

// MemoryStats reports device buffer usage for a backend.
type MemoryStats = internalwebgpu.MemoryStats

// Compile-time check that BufferAdapter implements the handle contracts.
var (
	_ remat.Adapter  = (*BufferAdapter)(nil)
	_ remat.Releaser = (*BufferAdapter)(nil)
)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend ready
// to hold matrix data. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible
// GPU and drivers are present. Useful for graceful fallback to host
// storage when no GPU is reachable.
//
// Example:
//
//	var adapter remat.Adapter
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    adapter = gpu.Upload(m)
//	} else {
//	    adapter = remat.NewRefAdapter(m, nil)
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
