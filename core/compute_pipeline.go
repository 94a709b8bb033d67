package core

import (
	"github.com/gogpu/wgpu/core/track"
	"github.com/gogpu/wgpu/hal"
)

// ComputePipeline is a compiled compute pipeline: a single shader stage
// and its resource layout, bound via a CoreComputePassEncoder's
// SetPipeline before a Dispatch.
type ComputePipeline struct {
	resourceBase
	layout *PipelineLayout
	raw    *Snatchable[hal.ComputePipeline]
}

// NewComputePipeline wraps a HAL compute pipeline created on device.
func NewComputePipeline(device *Device, raw hal.ComputePipeline, desc *hal.ComputePipelineDescriptor, layout *PipelineLayout, index track.TrackerIndex) *ComputePipeline {
	label := ""
	if desc != nil {
		label = desc.Label
	}
	return &ComputePipeline{
		resourceBase: resourceBase{device: device, label: label, trackerIndex: index},
		layout:       layout,
		raw:          NewSnatchable(raw),
	}
}

// Layout returns the pipeline layout this pipeline was created with.
func (p *ComputePipeline) Layout() *PipelineLayout { return p.layout }

// Raw returns the underlying HAL compute pipeline under guard, or nil
// if destroyed.
func (p *ComputePipeline) Raw(guard *SnatchGuard) hal.ComputePipeline {
	if p == nil || p.raw == nil {
		return nil
	}
	ptr := p.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the pipeline's HAL handle. Safe to call more than
// once.
func (p *ComputePipeline) Destroy() {
	if p.destroyed.Swap(true) {
		return
	}
	if p.device == nil || p.raw == nil {
		return
	}
	guard := p.device.snatchLock.Write()
	defer guard.Release()
	raw := p.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := p.device.snatchLock.Read()
	halDevice := p.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyComputePipeline(*raw)
	}
}

// CreateComputePipeline compiles a compute pipeline against layout.
func (d *Device) CreateComputePipeline(desc *hal.ComputePipelineDescriptor, layout *PipelineLayout) (*ComputePipeline, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, NewValidationError("ComputePipeline", "descriptor", "CreateComputePipeline called with a nil descriptor")
	}

	guard := d.snatchLock.Read()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		guard.Release()
		return nil, ErrDeviceDestroyed
	}
	if layout != nil {
		desc.Layout = layout.Raw(guard)
	}
	guard.Release()

	raw, err := halDevice.CreateComputePipeline(desc)
	if err != nil {
		return nil, err
	}

	index := d.trackers.ComputePipelines.Alloc()
	return NewComputePipeline(d, raw, desc, layout, index), nil
}
