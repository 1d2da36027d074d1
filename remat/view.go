// Copyright 2026 ReMat Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package remat

import (
	"github.com/remat-ml/remat/internal/remat"
)

// Access selects how a view may touch the underlying data.
type Access = remat.Access

// Access mode constants.
const (
	// Read views observe the current data and never write back.
	Read Access = remat.Read
	// Write views stage data and commit it when released.
	Write Access = remat.Write
)

// View is a host window over matrix data.
//
// A view stays valid until released. For write views, Release commits the
// staged data to the adapter's storage exactly once; releasing a write
// view twice panics. Read views release as a no-op, so a uniform
//
//	view, err := handle.Access(mode)
//	if err != nil { ... }
//	defer view.Release()
//
// works for both modes. The zero View is inert.
type View = remat.View

// NewView builds a read-style view over existing host data. Adapter
// implementations use it to serve Access(Read).
func NewView(desc Desc, data []byte, step int) View {
	return remat.NewView(desc, data, step)
}

// NewWriteView builds a view whose Release invokes commit exactly once.
// Adapter implementations use it to serve Access(Write); commit may be
// nil when the storage needs no write-back.
func NewWriteView(desc Desc, data []byte, step int, commit func()) View {
	return remat.NewWriteView(desc, data, step, commit)
}
