package wgpu

import (
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/hal"
)

// BindGroupLayout defines the structure of resource bindings for shaders.
type BindGroupLayout struct {
	core     *core.BindGroupLayout
	device   *Device
	released bool
}

// Release destroys the bind group layout.
func (l *BindGroupLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	l.core.Destroy()
}

// coreBindGroupLayout returns the underlying core.BindGroupLayout.
func (l *BindGroupLayout) coreBindGroupLayout() *core.BindGroupLayout { return l.core }

// halBindGroupLayout returns the underlying HAL bind group layout, or
// nil if destroyed.
func (l *BindGroupLayout) halBindGroupLayout() hal.BindGroupLayout {
	if l.core == nil || l.device == nil {
		return nil
	}
	guard := l.device.core.SnatchLock().Read()
	defer guard.Release()
	return l.core.Raw(guard)
}

// PipelineLayout defines the resource layout for a pipeline.
type PipelineLayout struct {
	core     *core.PipelineLayout
	device   *Device
	released bool
}

// Release destroys the pipeline layout.
func (l *PipelineLayout) Release() {
	if l.released {
		return
	}
	l.released = true
	l.core.Destroy()
}

// corePipelineLayout returns the underlying core.PipelineLayout.
func (l *PipelineLayout) corePipelineLayout() *core.PipelineLayout { return l.core }

// halPipelineLayout returns the underlying HAL pipeline layout, or nil
// if destroyed.
func (l *PipelineLayout) halPipelineLayout() hal.PipelineLayout {
	if l.core == nil || l.device == nil {
		return nil
	}
	guard := l.device.core.SnatchLock().Read()
	defer guard.Release()
	return l.core.Raw(guard)
}

// BindGroup represents bound GPU resources for shader access.
type BindGroup struct {
	core     *core.BindGroup
	device   *Device
	released bool
}

// Release destroys the bind group.
func (g *BindGroup) Release() {
	if g.released {
		return
	}
	g.released = true
	g.core.Destroy()
}

// coreBindGroup returns the underlying core.BindGroup.
func (g *BindGroup) coreBindGroup() *core.BindGroup { return g.core }

// halBindGroup returns the underlying HAL bind group, or nil if
// destroyed.
func (g *BindGroup) halBindGroup() hal.BindGroup {
	if g.core == nil || g.device == nil {
		return nil
	}
	guard := g.device.core.SnatchLock().Read()
	defer guard.Release()
	return g.core.Raw(guard)
}
