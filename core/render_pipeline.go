package core

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core/track"
	"github.com/gogpu/wgpu/hal"
)

// RenderPassContext describes the attachment shape a render pipeline
// was compiled against: the color formats (in slot order) and, if
// present, the depth/stencil format and the shared sample count. A
// pipeline can only be bound within a render pass whose own attachment
// shape matches.
type RenderPassContext struct {
	ColorFormats       []gputypes.TextureFormat
	DepthStencilFormat gputypes.TextureFormat
	HasDepthStencil    bool
	SampleCount        uint32
}

// IsCompatible reports whether a render pass with the given context can
// have this pipeline bound. Formats must match exactly, slot for slot;
// a pipeline compiled without a depth/stencil target cannot be used in
// a pass that has one, and vice versa.
func (c RenderPassContext) IsCompatible(pass RenderPassContext) bool {
	if len(c.ColorFormats) != len(pass.ColorFormats) {
		return false
	}
	for i := range c.ColorFormats {
		if c.ColorFormats[i] != pass.ColorFormats[i] {
			return false
		}
	}
	if c.HasDepthStencil != pass.HasDepthStencil {
		return false
	}
	if c.HasDepthStencil && c.DepthStencilFormat != pass.DepthStencilFormat {
		return false
	}
	if c.SampleCount != pass.SampleCount {
		return false
	}
	return true
}

// RenderPipeline is a compiled render pipeline: a fixed-function and
// shader-stage configuration that a CoreRenderPassEncoder binds via
// SetPipeline before issuing draws.
type RenderPipeline struct {
	resourceBase
	layout *PipelineLayout

	passContext RenderPassContext

	vertexInputMask uint32 // bit i set: vertex buffer slot i is consumed by this pipeline
	strides         [MaxVertexBuffers]uint64
	stepModes       [MaxVertexBuffers]gputypes.VertexStepMode
	vertexBufferCount int

	indexFormat gputypes.IndexFormat

	requiresBlendConstant    bool
	requiresStencilReference bool

	raw *Snatchable[hal.RenderPipeline]
}

// NewRenderPipeline builds the validation-facing RenderPipeline from a
// HAL descriptor already converted for the pass it targets.
func NewRenderPipeline(device *Device, raw hal.RenderPipeline, desc *hal.RenderPipelineDescriptor, layout *PipelineLayout, passCtx RenderPassContext, index track.TrackerIndex) *RenderPipeline {
	p := &RenderPipeline{
		resourceBase: resourceBase{device: device, trackerIndex: index},
		layout:       layout,
		passContext:  passCtx,
		raw:          NewSnatchable(raw),
	}
	if desc != nil {
		p.resourceBase.label = desc.Label
		for slot, buf := range desc.Vertex.Buffers {
			if slot >= MaxVertexBuffers {
				break
			}
			p.vertexInputMask |= 1 << uint(slot)
			p.strides[slot] = buf.ArrayStride
			p.stepModes[slot] = buf.StepMode
			p.vertexBufferCount = slot + 1
		}
		p.indexFormat = gputypes.IndexFormatUint16
		if desc.Primitive.StripIndexFormat != nil {
			p.indexFormat = *desc.Primitive.StripIndexFormat
		}
		if desc.Fragment != nil {
			for _, target := range desc.Fragment.Targets {
				if target.Blend == nil {
					continue
				}
				if usesBlendConstant(target.Blend.Color.SrcFactor) || usesBlendConstant(target.Blend.Color.DstFactor) ||
					usesBlendConstant(target.Blend.Alpha.SrcFactor) || usesBlendConstant(target.Blend.Alpha.DstFactor) {
					p.requiresBlendConstant = true
				}
			}
		}
		if desc.DepthStencil != nil {
			ds := desc.DepthStencil
			if ds.StencilFront.Compare != gputypes.CompareFunctionAlways || ds.StencilBack.Compare != gputypes.CompareFunctionAlways {
				p.requiresStencilReference = true
			}
		}
	}
	return p
}

func usesBlendConstant(f gputypes.BlendFactor) bool {
	return f == gputypes.BlendFactorConstant || f == gputypes.BlendFactorOneMinusConstant
}

// Layout returns the pipeline layout this pipeline was created with.
func (p *RenderPipeline) Layout() *PipelineLayout { return p.layout }

// VertexInputMask returns the bitmask of vertex buffer slots this
// pipeline's vertex state reads from.
func (p *RenderPipeline) VertexInputMask() uint32 { return p.vertexInputMask }

// RequiresBlendConstant reports whether any fragment target references
// BlendFactorConstant/BlendFactorOneMinusConstant, making
// SetBlendConstant mandatory before a draw.
func (p *RenderPipeline) RequiresBlendConstant() bool { return p.requiresBlendConstant }

// RequiresStencilReference reports whether either stencil face compares
// with something other than Always, making SetStencilReference
// mandatory before a draw.
func (p *RenderPipeline) RequiresStencilReference() bool { return p.requiresStencilReference }

// PassContext returns the attachment shape this pipeline was compiled
// against.
func (p *RenderPipeline) PassContext() RenderPassContext { return p.passContext }

// VertexStrides returns the per-slot array stride this pipeline's
// vertex state declared, used to propagate stride state into a
// CoreRenderPassEncoder's VertexState on SetPipeline.
func (p *RenderPipeline) VertexStrides() [MaxVertexBuffers]uint64 { return p.strides }

// VertexStepModes returns the per-slot step mode (Vertex/Instance) this
// pipeline's vertex state declared.
func (p *RenderPipeline) VertexStepModes() [MaxVertexBuffers]gputypes.VertexStepMode {
	return p.stepModes
}

// VertexBufferCount returns one past the highest vertex buffer slot this
// pipeline's vertex state declares; slots at or beyond it carry no
// stride/step-mode constraint.
func (p *RenderPipeline) VertexBufferCount() int { return p.vertexBufferCount }

// IndexFormat returns the index format this pipeline expects a bound
// index buffer to be interpreted under (the primitive state's strip
// index format, defaulting to Uint16 when the pipeline doesn't declare
// one).
func (p *RenderPipeline) IndexFormat() gputypes.IndexFormat { return p.indexFormat }

// Raw returns the underlying HAL render pipeline under guard, or nil if
// destroyed.
func (p *RenderPipeline) Raw(guard *SnatchGuard) hal.RenderPipeline {
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
func (p *RenderPipeline) Destroy() {
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
		halDevice.DestroyRenderPipeline(*raw)
	}
}
