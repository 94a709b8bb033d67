package core

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// validBufferUsageMask covers every BufferUsage bit gputypes defines.
const validBufferUsageMask = gputypes.BufferUsageMapRead |
	gputypes.BufferUsageMapWrite |
	gputypes.BufferUsageCopySrc |
	gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageIndex |
	gputypes.BufferUsageVertex |
	gputypes.BufferUsageUniform |
	gputypes.BufferUsageStorage |
	gputypes.BufferUsageIndirect |
	gputypes.BufferUsageQueryResolve

// bufferSizeAlignment is the alignment wgpu requires of every buffer
// passed down to a HAL backend, regardless of the size requested.
const bufferSizeAlignment = 4

// CreateBuffer creates a buffer on the device, allocating a tracker
// index so its usage can be folded into command buffer/render pass
// usage scopes.
func (d *Device) CreateBuffer(desc *gputypes.BufferDescriptor) (*Buffer, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, &CreateBufferError{Kind: CreateBufferErrorZeroSize}
	}
	if desc.Size == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorZeroSize, Label: desc.Label}
	}
	if desc.Size > d.Limits.MaxBufferSize {
		return nil, &CreateBufferError{
			Kind:          CreateBufferErrorMaxBufferSize,
			Label:         desc.Label,
			RequestedSize: desc.Size,
			MaxSize:       d.Limits.MaxBufferSize,
		}
	}
	if desc.Usage == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorEmptyUsage, Label: desc.Label}
	}
	if desc.Usage&^validBufferUsageMask != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorInvalidUsage, Label: desc.Label}
	}
	if desc.Usage&gputypes.BufferUsageMapRead != 0 && desc.Usage&gputypes.BufferUsageMapWrite != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorMapReadWriteExclusive, Label: desc.Label}
	}

	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	alignedSize := desc.Size
	if rem := alignedSize % bufferSizeAlignment; rem != 0 {
		alignedSize += bufferSizeAlignment - rem
	}

	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             alignedSize,
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	}
	raw, err := halDevice.CreateBuffer(halDesc)
	if err != nil {
		return nil, &CreateBufferError{Kind: CreateBufferErrorHAL, Label: desc.Label, HALError: err}
	}

	index := d.trackers.Buffers.Alloc()
	buffer := NewBuffer(d, raw, &hal.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: desc.Usage,
	}, index)
	if desc.MappedAtCreation {
		buffer.SetMapState(BufferMapStateMapped)
		buffer.MarkInitialized(0, desc.Size)
	}
	return buffer, nil
}
