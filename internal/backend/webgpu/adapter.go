//go:build windows

package webgpu

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/remat-ml/remat/internal/remat"
)

// Verify that BufferAdapter implements the handle contracts.
var (
	_ remat.Adapter  = (*BufferAdapter)(nil)
	_ remat.Releaser = (*BufferAdapter)(nil)
)

// BufferAdapter holds matrix data in a GPU storage buffer and serves host
// views through a staging shadow. A read syncs device data into the shadow
// before exposing it; a write stages into the shadow and uploads it back to
// the device exactly once, when the view is released.
//
// The adapter serializes its own device traffic, but overlapping view
// windows are still the caller's to order. The device buffer is released by
// a finalizer when the last handle drops, or earlier via Release.
type BufferAdapter struct {
	backend *Backend
	desc    remat.Desc
	size    uint64 // aligned device buffer size

	mu       sync.Mutex
	buffer   *wgpu.Buffer
	shadow   *remat.Mat // lazily allocated host staging matrix
	released bool
}

// deviceBufferUsage covers storage binding plus both staged transfer
// directions.
const deviceBufferUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst

// Upload copies a host matrix into a fresh device buffer and returns the
// adapter owning that buffer.
func (b *Backend) Upload(m *remat.Mat) *BufferAdapter {
	if m == nil {
		panic("webgpu: Upload: nil matrix")
	}

	//nolint:gosec // G115: Buffer size fits in uint64 for GPU operations.
	alignedSize := alignBufferSize(uint64(m.ByteSize()))
	alignedData := make([]byte, alignedSize)
	copy(alignedData, m.Data())

	buffer := b.createBuffer(alignedData, deviceBufferUsage)
	b.trackBufferAllocation(alignedSize)

	return newBufferAdapter(b, buffer, m.Desc().Clone(), alignedSize)
}

// Alloc creates a zero-filled device buffer for the given descriptor and
// returns the adapter owning it.
func (b *Backend) Alloc(desc remat.Desc) (*BufferAdapter, error) {
	if err := desc.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("webgpu: invalid shape: %w", err)
	}
	if len(desc.Shape) == 0 {
		return nil, fmt.Errorf("webgpu: empty shape")
	}

	//nolint:gosec // G115: Buffer size fits in uint64 for GPU operations.
	alignedSize := alignBufferSize(uint64(desc.ByteSize()))
	buffer := b.createBuffer(make([]byte, alignedSize), deviceBufferUsage)
	b.trackBufferAllocation(alignedSize)

	return newBufferAdapter(b, buffer, desc.Clone(), alignedSize), nil
}

func newBufferAdapter(b *Backend, buffer *wgpu.Buffer, desc remat.Desc, size uint64) *BufferAdapter {
	a := &BufferAdapter{
		backend: b,
		buffer:  buffer,
		desc:    desc,
		size:    size,
	}

	// Release the device buffer when the last handle is dropped without an
	// explicit Release.
	runtime.SetFinalizer(a, func(ba *BufferAdapter) {
		ba.Release()
	})

	return a
}

// Desc returns the descriptor of the device-resident data.
func (a *BufferAdapter) Desc() remat.Desc {
	return a.desc
}

// Access returns a host view of the device data. Read views observe the
// current device contents. Write views stage into the host shadow; the
// upload back to the device happens when the view is released.
func (a *BufferAdapter) Access(acc remat.Access) (remat.View, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return remat.View{}, fmt.Errorf("webgpu: %s access on released adapter", acc)
	}

	first := a.shadow == nil
	if first {
		m, err := remat.NewMat(a.desc.Shape, a.desc.DType)
		if err != nil {
			return remat.View{}, fmt.Errorf("webgpu: staging matrix: %w", err)
		}
		a.shadow = m
	}

	// Reads always observe the device; a first-time write starts from the
	// current device contents so partial updates stay coherent.
	if acc != remat.Write || first {
		if err := a.syncShadowLocked(); err != nil {
			return remat.View{}, err
		}
	}

	if acc == remat.Write {
		return remat.NewWriteView(a.desc, a.shadow.Data(), a.shadow.Step(), a.commit), nil
	}
	return remat.NewView(a.desc, a.shadow.Data(), a.shadow.Step()), nil
}

// syncShadowLocked copies the device buffer into the host shadow, dropping
// any alignment padding. Caller holds a.mu.
func (a *BufferAdapter) syncShadowLocked() error {
	data, err := a.backend.readBuffer(a.buffer, a.size)
	if err != nil {
		return fmt.Errorf("webgpu: read from device: %w", err)
	}
	copy(a.shadow.Data(), data)
	return nil
}

// commit uploads the staged shadow back into the device buffer. It runs as
// a write view's completion callback.
func (a *BufferAdapter) commit() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		panic("webgpu: commit on released adapter")
	}
	a.backend.writeBuffer(a.buffer, a.shadow.Data())
}

// Buffer returns the underlying device buffer for backend-side consumers
// that recovered this adapter from a handle.
func (a *BufferAdapter) Buffer() *wgpu.Buffer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer
}

// Size returns the aligned device buffer size in bytes.
func (a *BufferAdapter) Size() uint64 {
	return a.size
}

// Release frees the device buffer. Safe to call more than once; later
// accesses fail. Called automatically by a finalizer if the last handle is
// dropped without it.
func (a *BufferAdapter) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}
	a.released = true
	runtime.SetFinalizer(a, nil)

	a.buffer.Release()
	a.buffer = nil
	a.backend.trackBufferRelease(a.size)
}
