package core

import "fmt"

// RenderPassErrorKind classifies why a render-pass command was
// rejected. Every kind is fatal to the pass: once raised, the pass (and
// the command buffer that owns it) is poisoned and every subsequent
// command is rejected without being interpreted.
type RenderPassErrorKind int

const (
	// RenderPassErrorInvalidAttachment indicates an attachment failed
	// the structural checks in AttachmentKeyBuilder (sample count,
	// extent, resolve-target rules, swap-chain exclusivity).
	RenderPassErrorInvalidAttachment RenderPassErrorKind = iota
	// RenderPassErrorIncompatiblePipeline indicates the bound pipeline's
	// RenderPassContext doesn't match the active pass's attachments.
	RenderPassErrorIncompatiblePipeline
	// RenderPassErrorMissingPipeline indicates a draw was issued with no
	// pipeline bound.
	RenderPassErrorMissingPipeline
	// RenderPassErrorMissingVertexBuffer indicates a draw referenced a
	// vertex buffer slot the pipeline requires but that wasn't bound.
	RenderPassErrorMissingVertexBuffer
	// RenderPassErrorMissingIndexBuffer indicates a DrawIndexed call
	// with no index buffer bound.
	RenderPassErrorMissingIndexBuffer
	// RenderPassErrorMissingBindGroup indicates a draw referenced a bind
	// group slot the pipeline layout requires but that wasn't bound.
	RenderPassErrorMissingBindGroup
	// RenderPassErrorBindGroupLayoutMismatch indicates a bind group was
	// set in a slot whose layout doesn't match the pipeline layout's
	// expectation for that slot.
	RenderPassErrorBindGroupLayoutMismatch
	// RenderPassErrorMissingBlendConstant indicates a pipeline requiring
	// BLEND_COLOR drew without SetBlendConstant having been called.
	RenderPassErrorMissingBlendConstant
	// RenderPassErrorMissingStencilReference indicates a pipeline
	// requiring STENCIL_REFERENCE drew without SetStencilReference.
	RenderPassErrorMissingStencilReference
	// RenderPassErrorUsageConflict indicates two commands in the same
	// pass used the same resource in incompatible ways.
	RenderPassErrorUsageConflict
	// RenderPassErrorOcclusionQuery indicates nested or unbalanced
	// occlusion query begin/end calls.
	RenderPassErrorOcclusionQuery
	// RenderPassErrorEncoderState indicates the command was issued after
	// the pass had already ended or the encoder had already errored.
	RenderPassErrorEncoderState
)

func (k RenderPassErrorKind) String() string {
	switch k {
	case RenderPassErrorInvalidAttachment:
		return "InvalidAttachment"
	case RenderPassErrorIncompatiblePipeline:
		return "IncompatiblePipeline"
	case RenderPassErrorMissingPipeline:
		return "MissingPipeline"
	case RenderPassErrorMissingVertexBuffer:
		return "MissingVertexBuffer"
	case RenderPassErrorMissingIndexBuffer:
		return "MissingIndexBuffer"
	case RenderPassErrorMissingBindGroup:
		return "MissingBindGroup"
	case RenderPassErrorBindGroupLayoutMismatch:
		return "BindGroupLayoutMismatch"
	case RenderPassErrorMissingBlendConstant:
		return "MissingBlendConstant"
	case RenderPassErrorMissingStencilReference:
		return "MissingStencilReference"
	case RenderPassErrorUsageConflict:
		return "UsageConflict"
	case RenderPassErrorOcclusionQuery:
		return "OcclusionQuery"
	case RenderPassErrorEncoderState:
		return "EncoderState"
	default:
		return "Unknown"
	}
}

// RenderPassError is the single error type the render-pass interpreter
// raises. Every variant is fatal: a render pass that encounters one
// stops interpreting commands and is recorded as errored for the
// remainder of its lifetime (including End).
type RenderPassError struct {
	Kind    RenderPassErrorKind
	Slot    uint32 // meaningful for vertex-buffer/bind-group errors
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RenderPassError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("render pass: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("render pass: %s", e.Kind)
}

// Unwrap returns the underlying cause, if any.
func (e *RenderPassError) Unwrap() error { return e.Cause }

func newRenderPassError(kind RenderPassErrorKind, format string, args ...any) *RenderPassError {
	return &RenderPassError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
