// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package remat

import (
	"github.com/remat-ml/remat/internal/remat"
)

// Adapter is the storage contract behind a handle. A backend implements it
// to expose data it owns, wherever that data lives.
//
// Implementations:
//   - RefAdapter: zero-copy views over a host Mat
//   - ShadowAdapter: staged views over a host Mat
//   - backend/gonum: zero-copy views over gonum *mat.Dense
//   - backend/webgpu: staged transfers for device buffers (Windows)
//
// Example:
//
//	type fileAdapter struct{ m *remat.Mat }
//
//	func (a *fileAdapter) Access(acc remat.Access) (remat.View, error) {
//	    if acc == remat.Write {
//	        return remat.NewWriteView(a.m.Desc(), a.m.Data(), a.m.Step(), a.flush), nil
//	    }
//	    return remat.NewView(a.m.Desc(), a.m.Data(), a.m.Step()), nil
//	}
type Adapter interface {
	// Access returns a host view of the data. Read views observe the
	// current contents; write views commit on Release.
	Access(a Access) (View, error)
	// Desc describes the data without materializing a view. It stays
	// stable across accesses.
	Desc() Desc
}

// Releaser is implemented by adapters owning resources that need an
// explicit lifetime, such as device buffers. Handles never call it; the
// storage owner decides when to release.
type Releaser interface {
	Release()
}

// In-package storage policies

// RefAdapter serves zero-copy views over a host matrix. Writes through a
// view land directly in the matrix; the commit callback only notifies.
type RefAdapter = remat.RefAdapter

// NewRefAdapter wraps a host matrix for zero-copy access. The onCommit
// observer may be nil; when set it runs once per released write view.
func NewRefAdapter(m *Mat, onCommit func()) *RefAdapter {
	return remat.NewRefAdapter(m, onCommit)
}

// ShadowAdapter serves views over a private staging copy. Reads sync the
// staging copy from the canonical matrix first; writes land in the
// staging copy and reach the canonical matrix when the view is released.
type ShadowAdapter = remat.ShadowAdapter

// NewShadowAdapter wraps a host matrix behind a staging copy. The
// onCommit observer may be nil.
func NewShadowAdapter(canonical *Mat, onCommit func()) *ShadowAdapter {
	return remat.NewShadowAdapter(canonical, onCommit)
}

// MockAdapter counts accesses and serves zero views. It exists for tests
// that care about handle-to-adapter delegation, not data.
type MockAdapter = remat.MockAdapter

// NewMockAdapter creates a mock adapter reporting the given descriptor.
func NewMockAdapter(desc Desc) *MockAdapter {
	return remat.NewMockAdapter(desc)
}
