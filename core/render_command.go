package core

import "github.com/gogpu/gputypes"

// RenderCommand is one recorded step of a render pass, the shared
// vocabulary both the encoded (StandaloneRenderPass/RunRenderPass) and
// incremental (the CoreRenderPassEncoder methods directly) APIs drive
// through the same dispatch routine, so the two flavors cannot drift
// apart.
type RenderCommand interface {
	isRenderCommand()
}

// SetBindGroupCommand binds a bind group at a slot with its dynamic
// offsets.
type SetBindGroupCommand struct {
	Index          uint32
	Group          *BindGroup
	DynamicOffsets []uint32
}

// SetPipelineCommand binds a render pipeline.
type SetPipelineCommand struct{ Pipeline *RenderPipeline }

// SetIndexBufferCommand binds the index buffer.
type SetIndexBufferCommand struct {
	Buffer *Buffer
	Format gputypes.IndexFormat
	Offset uint64
}

// SetVertexBufferCommand binds a vertex buffer at a slot.
type SetVertexBufferCommand struct {
	Slot   uint32
	Buffer *Buffer
	Offset uint64
}

// SetBlendValueCommand sets the blend constant.
type SetBlendValueCommand struct{ Color gputypes.Color }

// SetStencilReferenceCommand sets the stencil reference value.
type SetStencilReferenceCommand struct{ Reference uint32 }

// SetViewportCommand sets the viewport.
type SetViewportCommand struct{ X, Y, Width, Height, MinDepth, MaxDepth float32 }

// SetScissorCommand sets the scissor rectangle.
type SetScissorCommand struct{ X, Y, Width, Height uint32 }

// DrawCommand draws non-indexed primitives.
type DrawCommand struct{ VertexCount, InstanceCount, FirstVertex, FirstInstance uint32 }

// DrawIndexedCommand draws indexed primitives.
type DrawIndexedCommand struct {
	IndexCount, InstanceCount, FirstIndex uint32
	BaseVertex                            int32
	FirstInstance                         uint32
}

// DrawIndirectCommand draws non-indexed primitives from an indirect
// buffer.
type DrawIndirectCommand struct {
	Buffer *Buffer
	Offset uint64
}

// DrawIndexedIndirectCommand draws indexed primitives from an indirect
// buffer.
type DrawIndexedIndirectCommand struct {
	Buffer *Buffer
	Offset uint64
}

// InsertDebugMarkerCommand inserts a single labeled marker.
type InsertDebugMarkerCommand struct{ Label string }

// PushDebugGroupCommand opens a named debug group.
type PushDebugGroupCommand struct{ Label string }

// PopDebugGroupCommand closes the most recently opened debug group.
type PopDebugGroupCommand struct{}

// BeginOcclusionQueryCommand starts an occlusion query.
type BeginOcclusionQueryCommand struct{ QueryIndex uint32 }

// EndOcclusionQueryCommand ends the active occlusion query.
type EndOcclusionQueryCommand struct{}

func (SetBindGroupCommand) isRenderCommand()         {}
func (SetPipelineCommand) isRenderCommand()          {}
func (SetIndexBufferCommand) isRenderCommand()       {}
func (SetVertexBufferCommand) isRenderCommand()      {}
func (SetBlendValueCommand) isRenderCommand()        {}
func (SetStencilReferenceCommand) isRenderCommand()  {}
func (SetViewportCommand) isRenderCommand()          {}
func (SetScissorCommand) isRenderCommand()           {}
func (DrawCommand) isRenderCommand()                 {}
func (DrawIndexedCommand) isRenderCommand()          {}
func (DrawIndirectCommand) isRenderCommand()         {}
func (DrawIndexedIndirectCommand) isRenderCommand()  {}
func (InsertDebugMarkerCommand) isRenderCommand()    {}
func (PushDebugGroupCommand) isRenderCommand()       {}
func (PopDebugGroupCommand) isRenderCommand()        {}
func (BeginOcclusionQueryCommand) isRenderCommand()  {}
func (EndOcclusionQueryCommand) isRenderCommand()    {}

// StandaloneRenderPass bundles a render pass's attachments with the
// full command list to run against them in one shot, the input to the
// encoded pass API (command_encoder_run_render_pass).
type StandaloneRenderPass struct {
	Label                  string
	ColorAttachments       []RenderPassColorAttachment
	DepthStencilAttachment *RenderPassDepthStencilAttachment
	Commands               []RenderCommand
}

// dispatchCommand interprets one RenderCommand against the pass,
// routing to the same methods the incremental API calls directly. This
// is the routine both API flavors share, so their emitted backend-call
// sequences cannot drift apart. A command that raises a fatal
// RenderPassError poisons the pass via the ordinary fail() path; the
// dispatch loop additionally re-raises it as a panic so a one-shot
// RunRenderPass can abort the remaining commands in the batch without
// each of them individually checking pass.Err().
func (p *CoreRenderPassEncoder) dispatchCommand(cmd RenderCommand) {
	prevErr := p.err

	switch c := cmd.(type) {
	case SetBindGroupCommand:
		_ = p.SetBindGroup(c.Index, c.Group, c.DynamicOffsets)
	case SetPipelineCommand:
		p.SetPipeline(c.Pipeline)
	case SetIndexBufferCommand:
		p.SetIndexBuffer(c.Buffer, c.Format, c.Offset)
	case SetVertexBufferCommand:
		p.SetVertexBuffer(c.Slot, c.Buffer, c.Offset)
	case SetBlendValueCommand:
		p.SetBlendConstant(&c.Color)
	case SetStencilReferenceCommand:
		p.SetStencilReference(c.Reference)
	case SetViewportCommand:
		p.SetViewport(c.X, c.Y, c.Width, c.Height, c.MinDepth, c.MaxDepth)
	case SetScissorCommand:
		p.SetScissorRect(c.X, c.Y, c.Width, c.Height)
	case DrawCommand:
		p.Draw(c.VertexCount, c.InstanceCount, c.FirstVertex, c.FirstInstance)
	case DrawIndexedCommand:
		p.DrawIndexed(c.IndexCount, c.InstanceCount, c.FirstIndex, c.BaseVertex, c.FirstInstance)
	case DrawIndirectCommand:
		p.DrawIndirect(c.Buffer, c.Offset)
	case DrawIndexedIndirectCommand:
		p.DrawIndexedIndirect(c.Buffer, c.Offset)
	case InsertDebugMarkerCommand:
		p.InsertDebugMarker(c.Label)
	case PushDebugGroupCommand:
		p.PushDebugGroup(c.Label)
	case PopDebugGroupCommand:
		p.PopDebugGroup()
	case BeginOcclusionQueryCommand:
		p.BeginOcclusionQuery(c.QueryIndex)
	case EndOcclusionQueryCommand:
		p.EndOcclusionQuery()
	default:
		p.fail(newRenderPassError(RenderPassErrorEncoderState, "unrecognized render command %T", cmd))
	}

	if p.err != nil && p.err != prevErr {
		panic(p.err)
	}
}

// RunRenderPass runs a StandaloneRenderPass in one call: begin, every
// command in order, end, all against the shared dispatch routine.
// command_encoder_run_render_pass in the source material.
func (e *CoreCommandEncoder) RunRenderPass(pass *StandaloneRenderPass) (err error) {
	desc := &RenderPassDescriptor{
		Label:                  pass.Label,
		ColorAttachments:       pass.ColorAttachments,
		DepthStencilAttachment: pass.DepthStencilAttachment,
	}

	rp, beginErr := e.BeginRenderPass(desc)
	if beginErr != nil {
		return beginErr
	}

	defer func() {
		if r := recover(); r != nil {
			rpErr, ok := r.(error)
			if !ok {
				panic(r)
			}
			rp.err = rpErr
			e.setError(rpErr)
			err = rpErr
		}
	}()

	for _, cmd := range pass.Commands {
		rp.dispatchCommand(cmd)
	}

	if endErr := rp.End(); endErr != nil && err == nil {
		err = endErr
	}
	return err
}
