package wgpu

import (
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/hal"
)

// RenderPipeline represents a configured render pipeline.
type RenderPipeline struct {
	core     *core.RenderPipeline
	device   *Device
	released bool
}

// Release destroys the render pipeline.
func (p *RenderPipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	p.core.Destroy()
}

// coreRenderPipeline returns the underlying core.RenderPipeline.
func (p *RenderPipeline) coreRenderPipeline() *core.RenderPipeline { return p.core }

// halRenderPipeline returns the underlying HAL render pipeline, or nil
// if destroyed.
func (p *RenderPipeline) halRenderPipeline() hal.RenderPipeline {
	if p.core == nil || p.device == nil {
		return nil
	}
	guard := p.device.core.SnatchLock().Read()
	defer guard.Release()
	return p.core.Raw(guard)
}

// ComputePipeline represents a configured compute pipeline.
type ComputePipeline struct {
	core     *core.ComputePipeline
	device   *Device
	released bool
}

// Release destroys the compute pipeline.
func (p *ComputePipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	p.core.Destroy()
}

// coreComputePipeline returns the underlying core.ComputePipeline.
func (p *ComputePipeline) coreComputePipeline() *core.ComputePipeline { return p.core }

// halComputePipeline returns the underlying HAL compute pipeline, or
// nil if destroyed.
func (p *ComputePipeline) halComputePipeline() hal.ComputePipeline {
	if p.core == nil || p.device == nil {
		return nil
	}
	guard := p.device.core.SnatchLock().Read()
	defer guard.Release()
	return p.core.Raw(guard)
}
