package core

import "github.com/gogpu/gputypes"

// MaxVertexBuffers is the largest vertex buffer slot a pipeline's
// vertex state may declare.
const MaxVertexBuffers = 16

// noVertexLimit is the "no constraint" sentinel a limit holds when no
// bound slot constrains it (all slots empty, or a pipeline with no
// vertex buffers at all).
const noVertexLimit = ^uint32(0)

// OptionalState tracks a piece of pipeline-dependent dynamic state
// (blend constant, stencil reference) that is only mandatory when the
// bound pipeline actually reads it.
type OptionalState int

const (
	// OptionalStateUnused means no bound pipeline needs this state.
	OptionalStateUnused OptionalState = iota
	// OptionalStateRequired means the bound pipeline needs this state
	// but it has not been set in the current pass.
	OptionalStateRequired
	// OptionalStateSet means the state has been provided.
	OptionalStateSet
)

// Require updates the state in response to a new pipeline binding: a
// pipeline that doesn't need the state never upgrades Unused; one that
// does forces Required unless the value is already Set from an earlier
// SetBlendConstant/SetStencilReference call in this pass (matching
// wgpu-core, where dynamic state survives a pipeline switch).
func (s *OptionalState) Require(needed bool) {
	if !needed {
		return
	}
	if *s == OptionalStateUnused {
		*s = OptionalStateRequired
	}
}

// MarkSet records that the value has been provided by the caller.
func (s *OptionalState) MarkSet() {
	if *s != OptionalStateUnused {
		*s = OptionalStateSet
	}
}

// IsReady reports whether a draw may proceed: either nothing needs this
// state, or it has been set.
func (s OptionalState) IsReady() bool { return s != OptionalStateRequired }

// indexFormatSize returns the byte width of one index in format.
func indexFormatSize(format gputypes.IndexFormat) uint64 {
	if format == gputypes.IndexFormatUint32 {
		return 4
	}
	return 2
}

// IndexState tracks the currently bound index buffer, the format it's
// interpreted under, and the draw-time index limit derived from both
// (spec: `limit = (end-start) >> shift(format)`).
type IndexState struct {
	buffer *Buffer
	format gputypes.IndexFormat
	offset uint64
	limit  uint32
	bound  bool
}

// Set records a SetIndexBuffer call and recomputes the limit.
func (s *IndexState) Set(buffer *Buffer, format gputypes.IndexFormat, offset uint64) {
	s.buffer, s.format, s.offset, s.bound = buffer, format, offset, true
	s.recomputeLimit()
}

// SetFormat updates the bound format without rebinding the buffer,
// used by SetPipeline's index-format rebind rule: switching pipelines
// can change the index format a currently-bound buffer is interpreted
// under, which changes its limit without a new SetIndexBuffer call.
func (s *IndexState) SetFormat(format gputypes.IndexFormat) {
	s.format = format
	s.recomputeLimit()
}

func (s *IndexState) recomputeLimit() {
	if !s.bound || s.buffer == nil || s.buffer.Size() < s.offset {
		s.limit = 0
		return
	}
	available := s.buffer.Size() - s.offset
	limit := available / indexFormatSize(s.format)
	if limit > uint64(noVertexLimit) {
		limit = uint64(noVertexLimit)
	}
	s.limit = uint32(limit)
}

// IsReady reports whether an index buffer has been bound.
func (s *IndexState) IsReady() bool { return s.bound }

// Buffer returns the bound index buffer, or nil.
func (s *IndexState) Buffer() *Buffer { return s.buffer }

// Format returns the index format currently in effect.
func (s *IndexState) Format() gputypes.IndexFormat { return s.format }

// Limit returns the number of indices `first_index+index_count` may not
// exceed, given the bound buffer's size, offset, and format.
func (s *IndexState) Limit() uint32 { return s.limit }

// vertexBufferState tracks one vertex buffer slot: the bound buffer
// (total_size derived from its size and the bind offset) plus the
// stride/step-mode the active pipeline's vertex layout assigned to the
// slot.
type vertexBufferState struct {
	buffer    *Buffer
	offset    uint64
	totalSize uint64
	stride    uint64
	rate      gputypes.VertexStepMode
	bound     bool
}

// VertexState tracks every vertex buffer slot, which slots the active
// pipeline's vertex layout requires, and the vertex/instance limits
// derived from every slot's (total_size, stride, rate).
type VertexState struct {
	slots         [MaxVertexBuffers]vertexBufferState
	inputMask     uint32
	vertexLimit   uint32
	instanceLimit uint32
}

// SetInputMask is called on SetPipeline: bit i sets means slot i is
// read by the new pipeline's vertex buffer layouts.
func (s *VertexState) SetInputMask(mask uint32) { s.inputMask = mask }

// SetStrides propagates vertex-stride state from a newly bound pipeline
// (spec "vertex-stride propagation"): for each slot below count, copy
// (stride, rate); every slot at or above count resets to (0, Vertex),
// matching the pipeline's own unused slots.
func (s *VertexState) SetStrides(strides [MaxVertexBuffers]uint64, rates [MaxVertexBuffers]gputypes.VertexStepMode, count int) {
	for i := 0; i < MaxVertexBuffers; i++ {
		if i < count {
			s.slots[i].stride = strides[i]
			s.slots[i].rate = rates[i]
		} else {
			s.slots[i].stride = 0
			s.slots[i].rate = gputypes.VertexStepModeVertex
		}
	}
	s.recomputeLimits()
}

// Set records a SetVertexBuffer call.
func (s *VertexState) Set(slot uint32, buffer *Buffer, offset uint64) {
	if slot >= MaxVertexBuffers {
		return
	}
	st := &s.slots[slot]
	st.buffer, st.offset, st.bound = buffer, offset, true
	if buffer != nil && buffer.Size() >= offset {
		st.totalSize = buffer.Size() - offset
	} else {
		st.totalSize = 0
	}
	s.recomputeLimits()
}

// recomputeLimits recomputes vertex_limit/instance_limit as the min,
// over every slot with stride>0, of total_size/stride, split by the
// slot's step rate, using noVertexLimit as "no constraint" when a rate
// has no contributing slots.
func (s *VertexState) recomputeLimits() {
	vertexLimit, instanceLimit := noVertexLimit, noVertexLimit
	for i := 0; i < MaxVertexBuffers; i++ {
		st := s.slots[i]
		if st.stride == 0 {
			continue
		}
		limit := st.totalSize / st.stride
		clamped := noVertexLimit
		if limit < uint64(noVertexLimit) {
			clamped = uint32(limit)
		}
		if st.rate == gputypes.VertexStepModeInstance {
			if clamped < instanceLimit {
				instanceLimit = clamped
			}
		} else if clamped < vertexLimit {
			vertexLimit = clamped
		}
	}
	s.vertexLimit = vertexLimit
	s.instanceLimit = instanceLimit
}

// VertexLimit returns the largest `first_vertex+vertex_count` a Draw
// may use without exceeding a bound per-vertex buffer's capacity.
func (s *VertexState) VertexLimit() uint32 { return s.vertexLimit }

// InstanceLimit returns the largest `first_instance+instance_count` a
// Draw/DrawIndexed may use without exceeding a bound per-instance
// buffer's capacity.
func (s *VertexState) InstanceLimit() uint32 { return s.instanceLimit }

// IsReady reports whether every vertex buffer slot the pipeline needs
// has been bound.
func (s *VertexState) IsReady() bool {
	for i := 0; i < MaxVertexBuffers; i++ {
		if s.inputMask&(1<<uint(i)) != 0 && !s.slots[i].bound {
			return false
		}
	}
	return true
}

// MissingSlot returns the lowest unsatisfied vertex buffer slot and
// true, or (0, false) if every required slot is bound.
func (s *VertexState) MissingSlot() (uint32, bool) {
	for i := 0; i < MaxVertexBuffers; i++ {
		if s.inputMask&(1<<uint(i)) != 0 && !s.slots[i].bound {
			return uint32(i), true
		}
	}
	return 0, false
}

// DrawState bundles every piece of dynamic state a draw call depends
// on, reset at BeginRenderPass and updated by SetPipeline/SetVertex
// Buffer/SetIndexBuffer/SetBlendConstant/SetStencilReference.
type DrawState struct {
	Vertex        VertexState
	Index         IndexState
	BlendConstant OptionalState
	StencilRef    OptionalState
	pipelineBound bool
}

// SetPipeline updates dynamic-state requirements for a newly bound
// pipeline: vertex input mask, vertex-stride propagation, the
// index-format rebind rule, and blend/stencil requirements.
func (d *DrawState) SetPipeline(p *RenderPipeline) {
	d.pipelineBound = p != nil
	if p == nil {
		return
	}
	d.Vertex.SetInputMask(p.VertexInputMask())
	d.Vertex.SetStrides(p.VertexStrides(), p.VertexStepModes(), p.VertexBufferCount())
	if d.Index.bound {
		d.Index.SetFormat(p.IndexFormat())
	}
	d.BlendConstant.Require(p.RequiresBlendConstant())
	d.StencilRef.Require(p.RequiresStencilReference())
}

// IsReadyToDraw reports whether every piece of required dynamic state
// has been provided for vertexCount/indexed draws. indexed selects
// whether the index buffer is part of the requirement. Range checks
// against vertex/instance/index limits are the caller's responsibility
// (CheckDrawRange/CheckDrawIndexedRange) since they need per-call
// vertex/index counts this method doesn't receive.
func (d *DrawState) IsReadyToDraw(indexed bool) error {
	if !d.pipelineBound {
		return newRenderPassError(RenderPassErrorMissingPipeline, "no render pipeline bound")
	}
	if indexed && !d.Index.IsReady() {
		return newRenderPassError(RenderPassErrorMissingIndexBuffer, "no index buffer bound")
	}
	if !d.Vertex.IsReady() {
		slot, _ := d.Vertex.MissingSlot()
		return &RenderPassError{Kind: RenderPassErrorMissingVertexBuffer, Slot: slot, Message: "required vertex buffer slot not bound"}
	}
	if !d.BlendConstant.IsReady() {
		return newRenderPassError(RenderPassErrorMissingBlendConstant, "pipeline requires a blend constant")
	}
	if !d.StencilRef.IsReady() {
		return newRenderPassError(RenderPassErrorMissingStencilReference, "pipeline requires a stencil reference")
	}
	return nil
}

// CheckDrawRange validates a non-indexed Draw's vertex/instance ranges
// against the current vertex/instance limits (spec §4.4).
func (d *DrawState) CheckDrawRange(firstVertex, vertexCount, firstInstance, instanceCount uint32) error {
	if uint64(firstVertex)+uint64(vertexCount) > uint64(d.Vertex.VertexLimit()) {
		return newRenderPassError(RenderPassErrorUsageConflict, "draw range [%d, %d) exceeds vertex limit %d", firstVertex, uint64(firstVertex)+uint64(vertexCount), d.Vertex.VertexLimit())
	}
	if uint64(firstInstance)+uint64(instanceCount) > uint64(d.Vertex.InstanceLimit()) {
		return newRenderPassError(RenderPassErrorUsageConflict, "instance range [%d, %d) exceeds instance limit %d", firstInstance, uint64(firstInstance)+uint64(instanceCount), d.Vertex.InstanceLimit())
	}
	return nil
}

// CheckDrawIndexedRange validates a DrawIndexed's index/instance ranges
// against the current index/instance limits (spec §4.4). base_vertex is
// deliberately not range-checked, matching the source's permissive
// behavior (spec §9 open question).
func (d *DrawState) CheckDrawIndexedRange(firstIndex, indexCount, firstInstance, instanceCount uint32) error {
	if uint64(firstIndex)+uint64(indexCount) > uint64(d.Index.Limit()) {
		return newRenderPassError(RenderPassErrorUsageConflict, "index range [%d, %d) exceeds index limit %d", firstIndex, uint64(firstIndex)+uint64(indexCount), d.Index.Limit())
	}
	if uint64(firstInstance)+uint64(instanceCount) > uint64(d.Vertex.InstanceLimit()) {
		return newRenderPassError(RenderPassErrorUsageConflict, "instance range [%d, %d) exceeds instance limit %d", firstInstance, uint64(firstInstance)+uint64(instanceCount), d.Vertex.InstanceLimit())
	}
	return nil
}
