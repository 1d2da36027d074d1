//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

const (
	// Size class thresholds.
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB

	numSizeClasses = 3

	// Max buffers kept per size class.
	maxPoolSize = 100
)

// sizeClass maps a byte size to its pool index: small, medium, or large.
func sizeClass(size uint64) int {
	switch {
	case size < smallThreshold:
		return 0
	case size < mediumThreshold:
		return 1
	default:
		return 2
	}
}

// pooledBuffer is a parked GPU buffer with the metadata needed to match it
// against future requests.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// PoolStats describes buffer pool activity.
type PoolStats struct {
	Allocated uint64 // buffers created because no pooled one matched
	Released  uint64 // buffers handed back to the pool
	Hits      uint64 // acquisitions served from the pool
	Misses    uint64 // acquisitions that had to allocate
	Pooled    int    // buffers currently parked
}

// BufferPool reuses GPU buffers across transfers to cut allocation
// overhead. Buffers are parked by size class and matched on size and usage
// flags.
type BufferPool struct {
	device *wgpu.Device

	mu    sync.Mutex
	pools [numSizeClasses][]pooledBuffer
	stats PoolStats
}

// NewBufferPool creates a new buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{device: device}
}

// Acquire returns a buffer of at least size bytes carrying all requested
// usage flags, reusing a parked buffer when one matches.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	class := sizeClass(size)
	pool := p.pools[class]
	for i, pb := range pool {
		if pb.size >= size && pb.usage&usage == usage {
			p.pools[class] = append(pool[:i], pool[i+1:]...)
			p.stats.Hits++
			return pb.buffer
		}
	}

	p.stats.Misses++
	p.stats.Allocated++

	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// Release parks a buffer for reuse. When the buffer's size class is full,
// the buffer is released to the device instead.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Released++

	class := sizeClass(size)
	if len(p.pools[class]) >= maxPoolSize {
		buffer.Release()
		return
	}

	p.pools[class] = append(p.pools[class], pooledBuffer{
		buffer: buffer,
		size:   size,
		usage:  usage,
	})
}

// Clear releases every parked buffer. Called when the backend is released.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for class := range p.pools {
		for _, pb := range p.pools[class] {
			pb.buffer.Release()
		}
		p.pools[class] = p.pools[class][:0]
	}
}

// Stats returns a snapshot of pool activity.
func (p *BufferPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := p.stats
	stats.Pooled = len(p.pools[0]) + len(p.pools[1]) + len(p.pools[2])
	return stats
}
