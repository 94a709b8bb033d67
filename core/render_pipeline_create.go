package core

import "github.com/gogpu/wgpu/hal"

// CreateRenderPipeline compiles a render pipeline against layout. The
// pipeline's RenderPassContext (used to check compatibility with a
// render pass at SetPipeline time) is derived from the descriptor's
// fragment targets and depth/stencil state.
func (d *Device) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor, layout *PipelineLayout) (*RenderPipeline, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, NewValidationError("RenderPipeline", "descriptor", "CreateRenderPipeline called with a nil descriptor")
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

	raw, err := halDevice.CreateRenderPipeline(desc)
	if err != nil {
		return nil, err
	}

	passCtx := renderPassContextFromDescriptor(desc)
	index := d.trackers.RenderPipelines.Alloc()
	return NewRenderPipeline(d, raw, desc, layout, passCtx, index), nil
}

func renderPassContextFromDescriptor(desc *hal.RenderPipelineDescriptor) RenderPassContext {
	var ctx RenderPassContext
	if desc.Fragment != nil {
		for _, target := range desc.Fragment.Targets {
			ctx.ColorFormats = append(ctx.ColorFormats, target.Format)
		}
	}
	if desc.DepthStencil != nil {
		ctx.HasDepthStencil = true
		ctx.DepthStencilFormat = desc.DepthStencil.Format
	}
	ctx.SampleCount = desc.Multisample.Count
	if ctx.SampleCount == 0 {
		ctx.SampleCount = 1
	}
	return ctx
}
