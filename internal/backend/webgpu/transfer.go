//go:build windows

package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// alignBufferSize rounds size up to the 4-byte COPY_BUFFER_ALIGNMENT,
// with a 4-byte minimum.
func alignBufferSize(size uint64) uint64 {
	if size < 4 {
		size = 4
	}
	return (size + 3) &^ 3
}

// createBuffer creates a GPU buffer and uploads initial data.
// len(data) must already satisfy the copy alignment.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	// Create buffer with MappedAtCreation for initial data upload
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	// Copy data to mapped buffer
	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a pooled staging buffer since storage buffers can't be mapped
// directly.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	// Staging buffer for reading (MAP_READ | COPY_DST)
	stagingUsage := wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst
	stagingBuffer := b.bufferPool.Acquire(size, stagingUsage)
	defer b.bufferPool.Release(stagingBuffer, size, stagingUsage)

	// Copy from GPU buffer to staging buffer
	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	// Map staging buffer for reading
	err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	// Get mapped range and copy data
	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)

	// Unmap buffer
	stagingBuffer.Unmap()

	return result, nil
}

// writeBuffer uploads data into an existing GPU buffer through a staging
// buffer. The destination must carry COPY_DST usage and be at least
// alignBufferSize(len(data)) bytes.
func (b *Backend) writeBuffer(dstBuffer *wgpu.Buffer, data []byte) {
	alignedSize := alignBufferSize(uint64(len(data)))
	alignedData := make([]byte, alignedSize)
	copy(alignedData, data)

	// Staging buffer filled at creation, then copied on-device
	stagingBuffer := b.createBuffer(alignedData, wgpu.BufferUsageCopySrc)
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(stagingBuffer, 0, dstBuffer, 0, alignedSize)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)
}
