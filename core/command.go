package core

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core/track"
	"github.com/gogpu/wgpu/hal"
)

// ComputePassDescriptor describes how to create a compute pass.
type ComputePassDescriptor struct {
	// Label is an optional debug name for the compute pass.
	Label string

	// TimestampWrites are timestamp queries to write at pass boundaries (optional).
	TimestampWrites *ComputePassTimestampWrites
}

// ComputePassTimestampWrites describes timestamp query writes for a compute pass.
type ComputePassTimestampWrites struct {
	// QuerySet is the query set to write timestamps to.
	QuerySet QuerySetID

	// BeginningOfPassWriteIndex is the query index for pass start.
	// Use nil to skip.
	BeginningOfPassWriteIndex *uint32

	// EndOfPassWriteIndex is the query index for pass end.
	// Use nil to skip.
	EndOfPassWriteIndex *uint32
}

// =============================================================================
// HAL-Integrated Command Encoder (CORE-005)
// =============================================================================

// CommandEncoderStatus represents the current state of a command encoder.
//
// State machine transitions:
//
//	Recording -> (BeginRenderPass/BeginComputePass) -> Locked
//	Locked    -> (EndRenderPass/EndComputePass)     -> Recording
//	Recording -> Finish()                           -> Finished
//	Finished  -> (submitted to queue)               -> Consumed
//	Any state -> (error)                            -> Error
type CommandEncoderStatus int32

const (
	// CommandEncoderStatusRecording - ready to record commands.
	CommandEncoderStatusRecording CommandEncoderStatus = iota

	// CommandEncoderStatusLocked - a pass is in progress.
	CommandEncoderStatusLocked

	// CommandEncoderStatusFinished - encoding complete, ready for submit.
	CommandEncoderStatusFinished

	// CommandEncoderStatusError - an error occurred.
	CommandEncoderStatusError

	// CommandEncoderStatusConsumed - submitted to queue.
	CommandEncoderStatusConsumed
)

// String returns a human-readable representation of the status.
func (s CommandEncoderStatus) String() string {
	switch s {
	case CommandEncoderStatusRecording:
		return "Recording"
	case CommandEncoderStatusLocked:
		return "Locked"
	case CommandEncoderStatusFinished:
		return "Finished"
	case CommandEncoderStatusError:
		return "Error"
	case CommandEncoderStatusConsumed:
		return "Consumed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// CommandBufferMutable holds mutable state during encoding.
//
// This tracks resources used within a command buffer for validation
// and synchronization purposes.
type CommandBufferMutable struct {
	// pendingBufferBarriers stages buffer barriers produced by a render
	// pass's tracker merge until they're flushed to the HAL encoder.
	pendingBufferBarriers []hal.BufferBarrier

	// pendingTextureBarriers stages texture barriers produced by a
	// render pass's tracker merge until they're flushed to the HAL
	// encoder.
	pendingTextureBarriers []hal.TextureBarrier

	// usedSwapChain reports whether a swap-chain attachment has already
	// been used in an earlier render pass recorded against this command
	// buffer, per the initial-layout inference in AttachmentKeyBuilder
	// (spec §4.1).
	usedSwapChain bool

	// activePass is the current pass encoder (if any).
	// This is either *CoreRenderPassEncoder or *CoreComputePassEncoder.
	activePass any
}

// CoreCommandEncoder records GPU commands for submission.
//
// This is the HAL-integrated command encoder that bridges core command
// recording to HAL command encoders. The state machine ensures commands
// are recorded in the correct order and validates encoder state transitions.
//
// CoreCommandEncoder is thread-safe for concurrent access.
type CoreCommandEncoder struct {
	// raw is the HAL encoder wrapped for safe destruction.
	raw *Snatchable[hal.CommandEncoder]

	// device is the parent device.
	device *Device

	// status is the current encoder status (atomic for lock-free reads).
	status atomic.Int32

	// mu protects mutable state.
	mu sync.Mutex

	// mutable holds the mutable encoding state.
	mutable *CommandBufferMutable

	// error holds the error that caused the Error state.
	error error

	// label is the debug label for this encoder.
	label string
}

// CreateCommandEncoder creates a new command encoder on this device.
//
// The encoder is created in the Recording state, ready to record commands.
//
// Parameters:
//   - label: Debug label for the encoder.
//
// Returns the encoder and nil on success.
// Returns nil and an error if the device is destroyed or HAL creation fails.
func (d *Device) CreateCommandEncoder(label string) (*CoreCommandEncoder, error) {
	// 1. Check device validity
	if err := d.checkValid(); err != nil {
		return nil, err
	}

	// 2. Acquire snatch guard for HAL access
	guard := d.snatchLock.Read()
	defer guard.Release()

	halDevice := d.raw.Get(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	// 3. Create HAL command encoder
	halEncoder, err := (*halDevice).CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, &CreateCommandEncoderError{
			Kind:     CreateCommandEncoderErrorHAL,
			Label:    label,
			HALError: err,
		}
	}

	// 4. Begin encoding
	if err := halEncoder.BeginEncoding(label); err != nil {
		return nil, &CreateCommandEncoderError{
			Kind:     CreateCommandEncoderErrorHAL,
			Label:    label,
			HALError: fmt.Errorf("failed to begin encoding: %w", err),
		}
	}

	// 5. Create core encoder
	enc := &CoreCommandEncoder{
		raw:    NewSnatchable(halEncoder),
		device: d,
		mutable: &CommandBufferMutable{},
		label:   label,
	}
	enc.status.Store(int32(CommandEncoderStatusRecording))

	trackResource(uintptr(unsafe.Pointer(enc)), "CommandEncoder") //nolint:gosec // debug tracking uses pointer as unique ID
	return enc, nil
}

// RawEncoder returns the underlying HAL command encoder for direct HAL access.
// Requires the device's snatch lock to be held. Returns nil if the encoder
// has been snatched or the device is destroyed.
func (e *CoreCommandEncoder) RawEncoder() hal.CommandEncoder {
	guard := e.device.snatchLock.Read()
	defer guard.Release()
	halEncoder := e.raw.Get(guard)
	if halEncoder == nil {
		return nil
	}
	return *halEncoder
}

// Status returns the current encoder status.
func (e *CoreCommandEncoder) Status() CommandEncoderStatus {
	return CommandEncoderStatus(e.status.Load())
}

// Label returns the encoder's debug label.
func (e *CoreCommandEncoder) Label() string {
	return e.label
}

// Device returns the parent device.
func (e *CoreCommandEncoder) Device() *Device {
	return e.device
}

// Error returns the error that caused the Error state, or nil.
func (e *CoreCommandEncoder) Error() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.error
}

// BeginRenderPass begins a render pass.
//
// The encoder must be in the Recording state.
// After this call, the encoder transitions to the Locked state.
//
// Returns the render pass encoder and nil on success.
// Returns nil and an error if the encoder is not in Recording state.
func (e *CoreCommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) (*CoreRenderPassEncoder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Status() != CommandEncoderStatusRecording {
		return nil, e.statusError("begin render pass")
	}

	// Validate descriptor
	if desc == nil {
		err := fmt.Errorf("render pass descriptor is nil")
		e.setError(err)
		return nil, err
	}

	// Validate attachment structure (sample count, extent, resolve-target
	// rules, swap-chain exclusivity) before touching the HAL.
	passKey, fbKey, passCtx, usedSwapChain, err := buildAttachmentKey(desc, e.device.TextureTracker(), e.mutable.usedSwapChain)
	if err != nil {
		e.setError(err)
		return nil, err
	}
	if usedSwapChain {
		e.mutable.usedSwapChain = true
	}

	// Surface the structural keys through the device's render-pass object
	// cache: always computes the §4.2 subpass layout; backends without a
	// RenderPassBackend implementation simply get a nil Handle. The HAL's
	// own BeginRenderPass below still carries the full descriptor, so a
	// nil handle here never blocks recording.
	rp, rpErr := e.device.PassCache().GetOrCreateRenderPass(passKey)
	if rpErr != nil {
		e.setError(rpErr)
		return nil, rpErr
	}
	fbKey.RenderPass = rp.Handle
	if !usedSwapChain {
		// Swap-chain framebuffers bypass the cache: a fresh one is built
		// per pass and torn down at present time instead of memoized.
		if _, fbErr := e.device.PassCache().GetOrCreateFramebuffer(fbKey, rp); fbErr != nil {
			e.setError(fbErr)
			return nil, fbErr
		}
	}

	// Convert to HAL descriptor
	halDesc := e.convertRenderPassDescriptor(desc)

	// Get HAL encoder
	guard := e.device.snatchLock.Read()
	defer guard.Release()

	halEncoder := e.raw.Get(guard)
	if halEncoder == nil {
		err := ErrResourceDestroyed
		e.setError(err)
		return nil, err
	}

	// Begin HAL render pass
	halPass := (*halEncoder).BeginRenderPass(halDesc)

	// Transition to locked state
	e.status.Store(int32(CommandEncoderStatusLocked))

	pass := &CoreRenderPassEncoder{
		raw:            halPass,
		encoder:        e,
		device:         e.device,
		passCtx:        passCtx,
		bufferScope:    track.NewBufferUsageScope(),
		textureScope:   track.NewTextureUsageScope(),
		bufferByIndex:  make(map[track.TrackerIndex]*Buffer),
		textureByIndex: make(map[track.TrackerIndex]*Texture),
	}
	e.mutable.activePass = pass

	// Record each attachment's usage against the pass's texture scope
	// (§4.6): the render pass itself performs the transition into this
	// usage, which is why BeginRenderPass (rather than the first draw)
	// is where attachments enter tracking.
	for _, ca := range desc.ColorAttachments {
		if ca.View == nil {
			continue
		}
		if tex := ca.View.Texture(); tex != nil {
			if err := pass.recordTextureUsage(tex, track.TextureUsesColorTarget); err != nil {
				pass.fail(err)
			}
		}
		if ca.ResolveTarget != nil {
			if tex := ca.ResolveTarget.Texture(); tex != nil {
				if err := pass.recordTextureUsage(tex, track.TextureUsesColorTarget); err != nil {
					pass.fail(err)
				}
			}
		}
	}
	if ds := desc.DepthStencilAttachment; ds != nil && ds.View != nil {
		if tex := ds.View.Texture(); tex != nil {
			dsUsage := track.TextureUsesDepthStencilRead
			if !ds.DepthReadOnly || !ds.StencilReadOnly {
				dsUsage |= track.TextureUsesDepthStencilWrite
			}
			if err := pass.recordTextureUsage(tex, dsUsage); err != nil {
				pass.fail(err)
			}
		}
	}

	return pass, nil
}

// EndRenderPass ends the current render pass.
//
// The encoder must be in the Locked state with an active render pass.
// After this call, the encoder transitions back to the Recording state.
//
// This is called internally by CoreRenderPassEncoder.End().
func (e *CoreCommandEncoder) EndRenderPass(pass *CoreRenderPassEncoder) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Status() != CommandEncoderStatusLocked {
		return e.statusError("end render pass")
	}
	if e.mutable.activePass != pass {
		return fmt.Errorf("wrong pass being ended")
	}

	// End HAL render pass (already called by CoreRenderPassEncoder.End())

	e.mergePassUsage(pass)

	// Return to recording state
	e.status.Store(int32(CommandEncoderStatusRecording))
	e.mutable.activePass = nil

	return nil
}

// mergePassUsage folds a finished pass's buffer/texture usage scopes
// into the device-wide trackers (§4.6), staging whatever transitions
// come back as pending barriers and immediately flushing them to the
// HAL encoder. Submitting directly to the device tracker here, rather
// than first merging into a command-buffer-level root tracker, is a
// deliberate simplification: nothing else in this core accumulates
// usage across passes within one command buffer, so there is no
// intermediate scope to extend into.
func (e *CoreCommandEncoder) mergePassUsage(pass *CoreRenderPassEncoder) {
	if pass.bufferScope == nil && pass.textureScope == nil {
		return
	}

	guard := e.device.snatchLock.Read()
	defer guard.Release()

	if pass.bufferScope != nil {
		for _, t := range e.device.BufferTracker().Merge(pass.bufferScope) {
			if !t.Usage.NeedsBarrier() {
				continue
			}
			buf := pass.bufferByIndex[t.Index]
			if buf == nil {
				continue
			}
			if halBuf := buf.Raw(guard); halBuf != nil {
				e.mutable.pendingBufferBarriers = append(e.mutable.pendingBufferBarriers, t.IntoHAL(halBuf))
			}
		}
	}
	if pass.textureScope != nil {
		for _, t := range e.device.TextureTracker().Merge(pass.textureScope) {
			if !t.Usage.NeedsBarrier() {
				continue
			}
			tex := pass.textureByIndex[t.Index]
			if tex == nil {
				continue
			}
			if halTex := tex.Raw(guard); halTex != nil {
				e.mutable.pendingTextureBarriers = append(e.mutable.pendingTextureBarriers, t.IntoHAL(halTex))
			}
		}
	}

	if len(e.mutable.pendingBufferBarriers) == 0 && len(e.mutable.pendingTextureBarriers) == 0 {
		return
	}
	halEncoder := e.raw.Get(guard)
	if halEncoder == nil {
		return
	}
	if len(e.mutable.pendingBufferBarriers) > 0 {
		(*halEncoder).TransitionBuffers(e.mutable.pendingBufferBarriers)
		e.mutable.pendingBufferBarriers = nil
	}
	if len(e.mutable.pendingTextureBarriers) > 0 {
		(*halEncoder).TransitionTextures(e.mutable.pendingTextureBarriers)
		e.mutable.pendingTextureBarriers = nil
	}
}

// BeginComputePass begins a compute pass.
//
// The encoder must be in the Recording state.
// After this call, the encoder transitions to the Locked state.
//
// Returns the compute pass encoder and nil on success.
// Returns nil and an error if the encoder is not in Recording state.
func (e *CoreCommandEncoder) BeginComputePass(desc *CoreComputePassDescriptor) (*CoreComputePassEncoder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Status() != CommandEncoderStatusRecording {
		return nil, e.statusError("begin compute pass")
	}

	// Convert to HAL descriptor
	halDesc := &hal.ComputePassDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		// TimestampWrites conversion would go here
	}

	// Get HAL encoder
	guard := e.device.snatchLock.Read()
	defer guard.Release()

	halEncoder := e.raw.Get(guard)
	if halEncoder == nil {
		err := ErrResourceDestroyed
		e.setError(err)
		return nil, err
	}

	// Begin HAL compute pass
	halPass := (*halEncoder).BeginComputePass(halDesc)

	// Transition to locked state
	e.status.Store(int32(CommandEncoderStatusLocked))

	pass := &CoreComputePassEncoder{
		raw:     halPass,
		encoder: e,
		device:  e.device,
	}
	e.mutable.activePass = pass

	return pass, nil
}

// EndComputePass ends the current compute pass.
//
// The encoder must be in the Locked state with an active compute pass.
// After this call, the encoder transitions back to the Recording state.
//
// This is called internally by CoreComputePassEncoder.End().
func (e *CoreCommandEncoder) EndComputePass(pass *CoreComputePassEncoder) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Status() != CommandEncoderStatusLocked {
		return e.statusError("end compute pass")
	}
	if e.mutable.activePass != pass {
		return fmt.Errorf("wrong pass being ended")
	}

	// End HAL compute pass (already called by CoreComputePassEncoder.End())

	// Return to recording state
	e.status.Store(int32(CommandEncoderStatusRecording))
	e.mutable.activePass = nil

	return nil
}

// Finish completes encoding and returns a command buffer.
//
// The encoder must be in the Recording state (not in a pass).
// After this call, the encoder transitions to the Finished state.
//
// Returns the command buffer and nil on success.
// Returns nil and an error if the encoder is not in Recording state.
func (e *CoreCommandEncoder) Finish() (*CoreCommandBuffer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Status() != CommandEncoderStatusRecording {
		return nil, e.statusError("finish")
	}

	// Get HAL encoder
	guard := e.device.snatchLock.Read()
	defer guard.Release()

	halEncoder := e.raw.Get(guard)
	if halEncoder == nil {
		return nil, ErrResourceDestroyed
	}

	// End encoding
	halCmdBuffer, err := (*halEncoder).EndEncoding()
	if err != nil {
		e.setError(err)
		return nil, err
	}

	// Transition to finished
	e.status.Store(int32(CommandEncoderStatusFinished))

	untrackResource(uintptr(unsafe.Pointer(e))) //nolint:gosec // debug tracking uses pointer as unique ID

	return &CoreCommandBuffer{
		raw:     halCmdBuffer,
		device:  e.device,
		mutable: e.mutable,
		label:   e.label,
	}, nil
}

// MarkConsumed marks the encoder as consumed after submission.
//
// This is called by the queue after successful submission.
func (e *CoreCommandEncoder) MarkConsumed() {
	e.status.Store(int32(CommandEncoderStatusConsumed))
}

// setError transitions to error state.
func (e *CoreCommandEncoder) setError(err error) {
	e.error = err
	e.status.Store(int32(CommandEncoderStatusError))
}

// statusError returns an error for invalid status.
func (e *CoreCommandEncoder) statusError(operation string) error {
	return &EncoderStateError{
		Operation: operation,
		Status:    e.Status(),
	}
}

// convertRenderPassDescriptor converts a core descriptor to a HAL
// descriptor, resolving each attachment's texture view under the
// device's snatch lock.
func (e *CoreCommandEncoder) convertRenderPassDescriptor(desc *RenderPassDescriptor) *hal.RenderPassDescriptor {
	guard := e.device.snatchLock.Read()
	defer guard.Release()

	halDesc := &hal.RenderPassDescriptor{
		Label: desc.Label,
	}

	for _, ca := range desc.ColorAttachments {
		halCA := hal.RenderPassColorAttachment{
			LoadOp:     ca.LoadOp,
			StoreOp:    ca.StoreOp,
			ClearValue: ca.ClearValue,
		}
		if ca.View != nil {
			halCA.View = ca.View.Raw(guard)
		}
		if ca.ResolveTarget != nil {
			halCA.ResolveTarget = ca.ResolveTarget.Raw(guard)
		}
		halDesc.ColorAttachments = append(halDesc.ColorAttachments, halCA)
	}

	if desc.DepthStencilAttachment != nil {
		halDS := &hal.RenderPassDepthStencilAttachment{
			DepthLoadOp:       desc.DepthStencilAttachment.DepthLoadOp,
			DepthStoreOp:      desc.DepthStencilAttachment.DepthStoreOp,
			DepthClearValue:   desc.DepthStencilAttachment.DepthClearValue,
			DepthReadOnly:     desc.DepthStencilAttachment.DepthReadOnly,
			StencilLoadOp:     desc.DepthStencilAttachment.StencilLoadOp,
			StencilStoreOp:    desc.DepthStencilAttachment.StencilStoreOp,
			StencilClearValue: desc.DepthStencilAttachment.StencilClearValue,
			StencilReadOnly:   desc.DepthStencilAttachment.StencilReadOnly,
		}
		if desc.DepthStencilAttachment.View != nil {
			halDS.View = desc.DepthStencilAttachment.View.Raw(guard)
		}
		halDesc.DepthStencilAttachment = halDS
	}

	return halDesc
}

// buildAttachmentKey walks a render pass descriptor's attachments
// through AttachmentKeyBuilder, producing the structural key used to
// look up (or create) the backend render-pass/framebuffer objects and
// the pass context a bound pipeline must be compatible with.
func buildAttachmentKey(desc *RenderPassDescriptor, tracker *track.TextureTracker, swapChainUsedBefore bool) (RenderPassKey, FramebufferKey, RenderPassContext, bool, error) {
	b := NewAttachmentKeyBuilder(tracker, swapChainUsedBefore)
	var passCtx RenderPassContext

	for _, ca := range desc.ColorAttachments {
		b.AddColor(ca.View, ca.ResolveTarget, ca.LoadOp, ca.StoreOp)
		if ca.View != nil {
			passCtx.ColorFormats = append(passCtx.ColorFormats, ca.View.Format())
		}
	}
	if desc.DepthStencilAttachment != nil {
		ds := desc.DepthStencilAttachment
		b.SetDepthStencil(ds.View, ds.DepthLoadOp, ds.DepthStoreOp, ds.StencilLoadOp, ds.StencilStoreOp)
		if ds.View != nil {
			passCtx.HasDepthStencil = true
			passCtx.DepthStencilFormat = ds.View.Format()
		}
	}

	key, fbKey, err := b.Build()
	if err != nil {
		return RenderPassKey{}, FramebufferKey{}, RenderPassContext{}, false, err
	}
	if key.ColorCount > 0 {
		passCtx.SampleCount = key.Colors[0].SampleCount
	} else if key.HasDepthStencil {
		passCtx.SampleCount = key.DepthStencil.SampleCount
	}
	return key, fbKey, passCtx, b.SwapChainUsed(), nil
}

// =============================================================================
// Core Render Pass Encoder
// =============================================================================

// RenderPassDescriptor describes a render pass.
type RenderPassDescriptor struct {
	// Label is an optional debug name.
	Label string

	// ColorAttachments are the color render targets.
	ColorAttachments []RenderPassColorAttachment

	// DepthStencilAttachment is the depth/stencil target (optional).
	DepthStencilAttachment *RenderPassDepthStencilAttachment
}

// RenderPassColorAttachment describes a color attachment.
type RenderPassColorAttachment struct {
	// View is the texture view to render to.
	View *TextureView

	// ResolveTarget is the MSAA resolve target (optional).
	ResolveTarget *TextureView

	// LoadOp specifies what to do at pass start.
	LoadOp gputypes.LoadOp

	// StoreOp specifies what to do at pass end.
	StoreOp gputypes.StoreOp

	// ClearValue is the clear color (used if LoadOp is Clear).
	ClearValue gputypes.Color
}

// RenderPassDepthStencilAttachment describes a depth/stencil attachment.
type RenderPassDepthStencilAttachment struct {
	// View is the texture view to use.
	View *TextureView

	// DepthLoadOp specifies what to do with depth at pass start.
	DepthLoadOp gputypes.LoadOp

	// DepthStoreOp specifies what to do with depth at pass end.
	DepthStoreOp gputypes.StoreOp

	// DepthClearValue is the depth clear value.
	DepthClearValue float32

	// DepthReadOnly makes the depth aspect read-only.
	DepthReadOnly bool

	// StencilLoadOp specifies what to do with stencil at pass start.
	StencilLoadOp gputypes.LoadOp

	// StencilStoreOp specifies what to do with stencil at pass end.
	StencilStoreOp gputypes.StoreOp

	// StencilClearValue is the stencil clear value.
	StencilClearValue uint32

	// StencilReadOnly makes the stencil aspect read-only.
	StencilReadOnly bool
}

// CoreRenderPassEncoder records render commands within a pass.
//
// This is the HAL-integrated render pass encoder that bridges core
// render commands to HAL render pass encoder.
type CoreRenderPassEncoder struct {
	// raw is the HAL render pass encoder.
	raw hal.RenderPassEncoder

	// encoder is the parent command encoder.
	encoder *CoreCommandEncoder

	// device is the parent device.
	device *Device

	// pipeline is the currently bound render pipeline.
	pipeline *RenderPipeline

	// passCtx is the attachment shape this pass was begun with; a bound
	// pipeline's own RenderPassContext must be compatible with it.
	passCtx RenderPassContext

	// binder tracks bind group slot compatibility against the active
	// pipeline layout.
	binder Binder

	// drawState tracks vertex/index buffer and dynamic-state readiness
	// for the active pipeline.
	drawState DrawState

	// err holds the first validation error raised during this pass, if
	// any. Once set, every subsequent command is rejected without being
	// interpreted.
	err error

	// ended indicates whether End() has been called.
	ended bool

	// bufferScope and textureScope accumulate this pass's resource usage
	// (attachments, bound index/vertex buffers, bind-group resources) so
	// it can be merged into the device trackers at End(), producing the
	// barriers that transition from whatever usage those resources were
	// last in.
	bufferScope  *track.BufferUsageScope
	textureScope *track.TextureUsageScope

	// bufferByIndex and textureByIndex recover the concrete resource
	// behind a TrackerIndex a Merge reports a transition for, since the
	// tracker itself only deals in indices.
	bufferByIndex  map[track.TrackerIndex]*Buffer
	textureByIndex map[track.TrackerIndex]*Texture

	// occlusionQueryActive tracks whether a BeginOcclusionQuery is open,
	// so a nested or unbalanced begin/end is rejected.
	occlusionQueryActive bool
}

// Err returns the first validation error raised in this pass, or nil.
func (p *CoreRenderPassEncoder) Err() error { return p.err }

func (p *CoreRenderPassEncoder) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// recordBufferUsage folds buf's usage into the pass's buffer scope,
// asserting buf carries the required gputypes usage bit first. Returns
// the first conflicting-usage or missing-bit error, if any.
func (p *CoreRenderPassEncoder) recordBufferUsage(buf *Buffer, required gputypes.BufferUsage, usage track.BufferUses) error {
	if buf == nil || p.bufferScope == nil {
		return nil
	}
	if required != 0 && buf.Usage()&required == 0 {
		return NewValidationErrorf("RenderPass", "buffer", "buffer lacks the required usage bit %v", required)
	}
	if err := p.bufferScope.SetUsage(buf.TrackerIndex(), usage); err != nil {
		return err
	}
	p.bufferByIndex[buf.TrackerIndex()] = buf
	return nil
}

// recordTextureUsage folds tex's usage into the pass's texture scope.
func (p *CoreRenderPassEncoder) recordTextureUsage(tex *Texture, usage track.TextureUses) error {
	if tex == nil || p.textureScope == nil {
		return nil
	}
	if err := p.textureScope.SetUsage(tex.TrackerIndex(), usage); err != nil {
		return err
	}
	p.textureByIndex[tex.TrackerIndex()] = tex
	return nil
}

// RawPass returns the underlying HAL render pass encoder for direct HAL access.
func (p *CoreRenderPassEncoder) RawPass() hal.RenderPassEncoder {
	return p.raw
}

// SetPipeline sets the render pipeline.
func (p *CoreRenderPassEncoder) SetPipeline(pipeline *RenderPipeline) {
	if p.ended || p.err != nil {
		return
	}
	if pipeline == nil {
		p.fail(newRenderPassError(RenderPassErrorMissingPipeline, "SetPipeline called with a nil pipeline"))
		return
	}
	if !pipeline.PassContext().IsCompatible(p.passCtx) {
		p.fail(newRenderPassError(RenderPassErrorIncompatiblePipeline, "pipeline's attachment formats do not match the active render pass"))
		return
	}
	prevIndexFormat := p.drawState.Index.Format()
	prevIndexBound := p.drawState.Index.IsReady()

	p.pipeline = pipeline
	p.drawState.SetPipeline(pipeline)
	followUps := p.binder.ResetExpectations(pipeline.Layout())

	guard := p.device.snatchLock.Read()
	halPipeline := pipeline.Raw(guard)
	if p.raw != nil && halPipeline != nil {
		p.raw.SetPipeline(halPipeline)
	}
	for _, entry := range followUps {
		if p.raw == nil || entry.Group == nil {
			continue
		}
		halGroup := entry.Group.Raw(guard)
		if halGroup != nil {
			p.raw.SetBindGroup(entry.Slot, halGroup, entry.Offsets)
		}
	}
	// The index-format rebind rule: switching pipelines can change the
	// format a bound index buffer is read under. Re-issue the backend
	// bind so it picks up the new format.
	if prevIndexBound && p.raw != nil && p.drawState.Index.Format() != prevIndexFormat {
		if buf := p.drawState.Index.Buffer(); buf != nil {
			halBuffer := buf.Raw(guard)
			if halBuffer != nil {
				p.raw.SetIndexBuffer(halBuffer, p.drawState.Index.Format(), p.drawState.Index.offset)
			}
		}
	}
	guard.Release()
}

// SetBindGroup binds a bind group at index, with the given dynamic
// offsets into any dynamic-offset bindings it declares.
func (p *CoreRenderPassEncoder) SetBindGroup(index uint32, group *BindGroup, dynamicOffsets []uint32) error {
	if p.ended || p.err != nil {
		return p.err
	}
	_, followUps, err := p.binder.ProvideEntry(index, group, dynamicOffsets)
	if err != nil {
		p.fail(err)
		return err
	}
	if group != nil {
		for _, buf := range group.UsedBuffers() {
			if err := p.recordBufferUsage(buf, 0, track.BufferUsesUniform); err != nil {
				p.fail(err)
				return err
			}
		}
		for _, tex := range group.UsedTextures() {
			if err := p.recordTextureUsage(tex, track.TextureUsesSampled); err != nil {
				p.fail(err)
				return err
			}
		}
	}
	if p.raw != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		if group != nil {
			halGroup := group.Raw(guard)
			if halGroup != nil {
				p.raw.SetBindGroup(index, halGroup, dynamicOffsets)
			}
		}
		for _, entry := range followUps {
			if entry.Group == nil {
				continue
			}
			halGroup := entry.Group.Raw(guard)
			if halGroup != nil {
				p.raw.SetBindGroup(entry.Slot, halGroup, entry.Offsets)
			}
		}
	}
	return nil
}

// SetVertexBuffer sets a vertex buffer.
func (p *CoreRenderPassEncoder) SetVertexBuffer(slot uint32, buffer *Buffer, offset uint64) {
	if p.ended || p.err != nil {
		return
	}
	p.drawState.Vertex.Set(slot, buffer, offset)
	if buffer != nil {
		if err := p.recordBufferUsage(buffer, gputypes.BufferUsageVertex, track.BufferUsesVertex); err != nil {
			p.fail(err)
			return
		}
	}
	if p.raw != nil && buffer != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		halBuffer := buffer.Raw(guard)
		if halBuffer != nil {
			p.raw.SetVertexBuffer(slot, halBuffer, offset)
		}
	}
}

// SetIndexBuffer sets the index buffer.
func (p *CoreRenderPassEncoder) SetIndexBuffer(buffer *Buffer, format gputypes.IndexFormat, offset uint64) {
	if p.ended || p.err != nil {
		return
	}
	p.drawState.Index.Set(buffer, format, offset)
	if buffer != nil {
		if err := p.recordBufferUsage(buffer, gputypes.BufferUsageIndex, track.BufferUsesIndex); err != nil {
			p.fail(err)
			return
		}
	}
	if p.raw != nil && buffer != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		halBuffer := buffer.Raw(guard)
		if halBuffer != nil {
			p.raw.SetIndexBuffer(halBuffer, format, offset)
		}
	}
}

// clampToInt16 saturates v, rounded to the nearest integer, to the
// range a HAL viewport/scissor coordinate accepts: values below i16's
// range clamp to 0 (not i16::MIN — negative offsets aren't meaningful
// here), values above clamp to i16::MAX.
func clampToInt16(v float32) float32 {
	rounded := float32(math.Round(float64(v)))
	if rounded < 0 {
		return 0
	}
	if rounded > math.MaxInt16 {
		return math.MaxInt16
	}
	return rounded
}

func clampUintToInt16(v uint32) uint32 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return v
}

// SetViewport sets the viewport. Coordinates and extents are rounded
// and saturated to i16 range before reaching the HAL.
func (p *CoreRenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	if p.ended {
		return
	}
	if p.raw != nil {
		p.raw.SetViewport(clampToInt16(x), clampToInt16(y), clampToInt16(width), clampToInt16(height), minDepth, maxDepth)
	}
}

// SetScissorRect sets the scissor rectangle. Coordinates and extents
// are saturated to i16 range before reaching the HAL.
func (p *CoreRenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	if p.ended {
		return
	}
	if p.raw != nil {
		p.raw.SetScissorRect(clampUintToInt16(x), clampUintToInt16(y), clampUintToInt16(width), clampUintToInt16(height))
	}
}

// SetBlendConstant sets the blend constant color.
func (p *CoreRenderPassEncoder) SetBlendConstant(color *gputypes.Color) {
	if p.ended || p.err != nil {
		return
	}
	p.drawState.BlendConstant.MarkSet()
	if p.raw != nil {
		p.raw.SetBlendConstant(color)
	}
}

// SetStencilReference sets the stencil reference value.
func (p *CoreRenderPassEncoder) SetStencilReference(reference uint32) {
	if p.ended || p.err != nil {
		return
	}
	p.drawState.StencilRef.MarkSet()
	if p.raw != nil {
		p.raw.SetStencilReference(reference)
	}
}

// Draw draws primitives.
func (p *CoreRenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if p.ended || p.err != nil {
		return
	}
	if err := p.checkDrawReady(false); err != nil {
		return
	}
	if err := p.drawState.CheckDrawRange(firstVertex, vertexCount, firstInstance, instanceCount); err != nil {
		p.fail(err)
		return
	}
	if p.raw != nil {
		p.raw.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
	}
}

// DrawIndexed draws indexed primitives. baseVertex is not range-checked
// against the vertex limit: the source leaves it unvalidated since it
// only offsets indices read from the index buffer, it doesn't itself
// index into a vertex buffer.
func (p *CoreRenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	if p.ended || p.err != nil {
		return
	}
	if err := p.checkDrawReady(true); err != nil {
		return
	}
	if err := p.drawState.CheckDrawIndexedRange(firstIndex, indexCount, firstInstance, instanceCount); err != nil {
		p.fail(err)
		return
	}
	if p.raw != nil {
		p.raw.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
	}
}

// DrawIndirect draws primitives with GPU-generated parameters.
func (p *CoreRenderPassEncoder) DrawIndirect(buffer *Buffer, offset uint64) {
	if p.ended || p.err != nil {
		return
	}
	if err := p.checkDrawReady(false); err != nil {
		return
	}
	if p.raw != nil && buffer != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		halBuffer := buffer.Raw(guard)
		if halBuffer != nil {
			p.raw.DrawIndirect(halBuffer, offset)
		}
	}
}

// DrawIndexedIndirect draws indexed primitives with GPU-generated parameters.
func (p *CoreRenderPassEncoder) DrawIndexedIndirect(buffer *Buffer, offset uint64) {
	if p.ended || p.err != nil {
		return
	}
	if err := p.checkDrawReady(true); err != nil {
		return
	}
	if p.raw != nil && buffer != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		halBuffer := buffer.Raw(guard)
		if halBuffer != nil {
			p.raw.DrawIndexedIndirect(halBuffer, offset)
		}
	}
}

// checkDrawReady validates dynamic draw-call state (pipeline, vertex/
// index buffers, blend constant, stencil reference, bind groups) before
// a draw reaches the HAL. The first failure poisons the pass.
func (p *CoreRenderPassEncoder) checkDrawReady(indexed bool) error {
	if err := p.drawState.IsReadyToDraw(indexed); err != nil {
		p.fail(err)
		return err
	}
	if !p.binder.IsReady() {
		err := newRenderPassError(RenderPassErrorMissingBindGroup, "bind group slot(s) %#x unsatisfied for active pipeline layout", p.binder.InvalidMask())
		p.fail(err)
		return err
	}
	return nil
}

// End ends the render pass. If the pass recorded a validation error,
// that error is returned and the owning encoder is put into the Error
// state instead of Recording.
func (p *CoreRenderPassEncoder) End() error {
	if p.ended {
		return p.err
	}
	p.ended = true

	if p.raw != nil {
		p.raw.End()
	}

	if endErr := p.encoder.EndRenderPass(p); endErr != nil && p.err == nil {
		p.err = endErr
	}
	if p.err != nil {
		p.encoder.setError(p.err)
	}
	return p.err
}

// PushDebugGroup opens a named debug group, a no-op against backends
// that don't implement hal.DebugRenderPassEncoder.
func (p *CoreRenderPassEncoder) PushDebugGroup(label string) {
	if p.ended || p.err != nil {
		return
	}
	if dbg, ok := p.raw.(hal.DebugRenderPassEncoder); ok {
		dbg.PushDebugGroup(label)
	}
}

// PopDebugGroup closes the most recently opened debug group.
func (p *CoreRenderPassEncoder) PopDebugGroup() {
	if p.ended || p.err != nil {
		return
	}
	if dbg, ok := p.raw.(hal.DebugRenderPassEncoder); ok {
		dbg.PopDebugGroup()
	}
}

// InsertDebugMarker inserts a single labeled marker at the current
// point in the command stream.
func (p *CoreRenderPassEncoder) InsertDebugMarker(label string) {
	if p.ended || p.err != nil {
		return
	}
	if dbg, ok := p.raw.(hal.DebugRenderPassEncoder); ok {
		dbg.InsertDebugMarker(label)
	}
}

// BeginOcclusionQuery starts an occlusion query, fatal if one is
// already active.
func (p *CoreRenderPassEncoder) BeginOcclusionQuery(queryIndex uint32) {
	if p.ended || p.err != nil {
		return
	}
	if p.occlusionQueryActive {
		p.fail(newRenderPassError(RenderPassErrorOcclusionQuery, "occlusion query already active"))
		return
	}
	p.occlusionQueryActive = true
	if q, ok := p.raw.(hal.QueryRenderPassEncoder); ok {
		q.BeginOcclusionQuery(queryIndex)
	}
}

// EndOcclusionQuery ends the occlusion query started by the matching
// BeginOcclusionQuery, fatal if none is active.
func (p *CoreRenderPassEncoder) EndOcclusionQuery() {
	if p.ended || p.err != nil {
		return
	}
	if !p.occlusionQueryActive {
		p.fail(newRenderPassError(RenderPassErrorOcclusionQuery, "no occlusion query active"))
		return
	}
	p.occlusionQueryActive = false
	if q, ok := p.raw.(hal.QueryRenderPassEncoder); ok {
		q.EndOcclusionQuery()
	}
}

// =============================================================================
// Core Compute Pass Encoder
// =============================================================================

// CoreComputePassDescriptor describes a compute pass for HAL-integrated API.
type CoreComputePassDescriptor struct {
	// Label is an optional debug name.
	Label string
}

// CoreComputePassEncoder records compute commands within a pass.
//
// This is the HAL-integrated compute pass encoder that bridges core
// compute commands to HAL compute pass encoder.
type CoreComputePassEncoder struct {
	// raw is the HAL compute pass encoder.
	raw hal.ComputePassEncoder

	// encoder is the parent command encoder.
	encoder *CoreCommandEncoder

	// device is the parent device.
	device *Device

	// pipeline is the currently bound compute pipeline.
	pipeline *ComputePipeline

	// ended indicates whether End() has been called.
	ended bool
}

// RawPass returns the underlying HAL compute pass encoder for direct HAL access.
func (p *CoreComputePassEncoder) RawPass() hal.ComputePassEncoder {
	return p.raw
}

// SetPipeline sets the compute pipeline.
func (p *CoreComputePassEncoder) SetPipeline(pipeline *ComputePipeline) {
	if p.ended {
		return
	}
	p.pipeline = pipeline
	if pipeline == nil || p.device == nil {
		return
	}
	guard := p.device.snatchLock.Read()
	defer guard.Release()
	halPipeline := pipeline.Raw(guard)
	if p.raw != nil && halPipeline != nil {
		p.raw.SetPipeline(halPipeline)
	}
}

// SetBindGroup binds a bind group at index for compute dispatches.
func (p *CoreComputePassEncoder) SetBindGroup(index uint32, group *BindGroup, dynamicOffsets []uint32) {
	if p.ended || group == nil || p.device == nil {
		return
	}
	guard := p.device.snatchLock.Read()
	defer guard.Release()
	halGroup := group.Raw(guard)
	if p.raw != nil && halGroup != nil {
		p.raw.SetBindGroup(index, halGroup, dynamicOffsets)
	}
}

// Dispatch dispatches compute work.
func (p *CoreComputePassEncoder) Dispatch(x, y, z uint32) {
	if p.ended {
		return
	}
	if p.raw != nil {
		p.raw.Dispatch(x, y, z)
	}
}

// DispatchIndirect dispatches compute work with GPU-generated parameters.
func (p *CoreComputePassEncoder) DispatchIndirect(buffer *Buffer, offset uint64) {
	if p.ended {
		return
	}
	if p.raw != nil && buffer != nil {
		guard := p.device.snatchLock.Read()
		defer guard.Release()
		halBuffer := buffer.Raw(guard)
		if halBuffer != nil {
			p.raw.DispatchIndirect(halBuffer, offset)
		}
	}
}

// End ends the compute pass.
func (p *CoreComputePassEncoder) End() error {
	if p.ended {
		return nil
	}
	p.ended = true

	if p.raw != nil {
		p.raw.End()
	}

	return p.encoder.EndComputePass(p)
}

// =============================================================================
// Core Command Buffer
// =============================================================================

// CoreCommandBuffer is a finished command recording ready for submission.
//
// This is created by CoreCommandEncoder.Finish() and can be submitted
// to a queue for execution.
type CoreCommandBuffer struct {
	// raw is the HAL command buffer.
	raw hal.CommandBuffer

	// device is the parent device.
	device *Device

	// mutable holds the resource tracking state from encoding.
	mutable *CommandBufferMutable

	// label is the debug label.
	label string
}

// Raw returns the underlying HAL command buffer.
func (cb *CoreCommandBuffer) Raw() hal.CommandBuffer {
	return cb.raw
}

// Device returns the parent device.
func (cb *CoreCommandBuffer) Device() *Device {
	return cb.device
}

// Label returns the debug label.
func (cb *CoreCommandBuffer) Label() string {
	return cb.label
}

// =============================================================================
// ID-Based API (Backward Compatibility)
// =============================================================================

// ComputePassEncoder records compute commands within a compute pass.
// It wraps hal.ComputePassEncoder with validation and ID-based resource lookup.
type ComputePassEncoder struct {
	raw    hal.ComputePassEncoder
	device *Device
	ended  bool
}

// SetPipeline sets the active compute pipeline for subsequent dispatch calls.
// The pipeline must have been created on the same device as this encoder.
//
// Returns an error if the pipeline ID is invalid.
func (e *ComputePassEncoder) SetPipeline(pipeline ComputePipelineID) error {
	if e.ended {
		return fmt.Errorf("compute pass has already ended")
	}

	hub := GetGlobal().Hub()
	rawPipeline, err := hub.GetComputePipeline(pipeline)
	if err != nil {
		return fmt.Errorf("invalid compute pipeline: %w", err)
	}

	// Note: HAL integration pending. When core.ComputePipeline has HAL,
	// convert rawPipeline to hal.ComputePipeline and call e.raw.SetPipeline.
	_ = rawPipeline
	// e.raw.SetPipeline(halPipeline)

	return nil
}

// SetBindGroup sets a bind group for the given index.
// The bind group provides resources (buffers, textures, samplers) to shaders.
//
// Parameters:
//   - index: The bind group index (0, 1, 2, or 3).
//   - group: The bind group ID to bind.
//   - offsets: Dynamic offsets for dynamic uniform/storage buffers (can be nil).
//
// Returns an error if the bind group ID is invalid or if the encoder has ended.
func (e *ComputePassEncoder) SetBindGroup(index uint32, group BindGroupID, offsets []uint32) error {
	if e.ended {
		return fmt.Errorf("compute pass has already ended")
	}

	// WebGPU spec: max 4 bind groups (0-3)
	if index > 3 {
		return fmt.Errorf("bind group index %d exceeds maximum (3)", index)
	}

	hub := GetGlobal().Hub()
	rawGroup, err := hub.GetBindGroup(group)
	if err != nil {
		return fmt.Errorf("invalid bind group: %w", err)
	}

	// Note: HAL integration pending. When core.BindGroup has HAL,
	// convert rawGroup to hal.BindGroup and call e.raw.SetBindGroup.
	_ = rawGroup
	// e.raw.SetBindGroup(index, halGroup, offsets)

	return nil
}

// Dispatch dispatches compute work.
// This executes the compute shader with the specified number of workgroups.
//
// Parameters:
//   - x, y, z: The number of workgroups to dispatch in each dimension.
//
// Each workgroup runs the compute shader's workgroup_size threads.
// The total threads = x * y * z * workgroup_size.
//
// Note: This method does not return an error. Dispatch errors are deferred
// to command buffer submission time, matching the WebGPU error model.
func (e *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if e.ended {
		// Record error for deferred validation
		return
	}

	if e.raw != nil {
		e.raw.Dispatch(x, y, z)
	}
}

// DispatchIndirect dispatches compute work with GPU-generated parameters.
// The dispatch parameters are read from the specified buffer.
//
// Parameters:
//   - buffer: The buffer containing DispatchIndirectArgs at the given offset.
//   - offset: The byte offset into the buffer (must be 4-byte aligned).
//
// The buffer must contain the following structure at the offset:
//
//	struct DispatchIndirectArgs {
//	    x: u32,     // Number of workgroups in X
//	    y: u32,     // Number of workgroups in Y
//	    z: u32,     // Number of workgroups in Z
//	}
//
// Returns an error if the buffer ID is invalid or the offset is not aligned.
func (e *ComputePassEncoder) DispatchIndirect(buffer BufferID, offset uint64) error {
	if e.ended {
		return fmt.Errorf("compute pass has already ended")
	}

	// Indirect dispatch requires 4-byte alignment
	if offset%4 != 0 {
		return fmt.Errorf("indirect dispatch offset must be 4-byte aligned, got %d", offset)
	}

	hub := GetGlobal().Hub()
	rawBuffer, err := hub.GetBuffer(buffer)
	if err != nil {
		return fmt.Errorf("invalid buffer: %w", err)
	}

	// Note: HAL integration pending. When core.Buffer lookup returns HAL buffer,
	// convert rawBuffer to hal.Buffer and call e.raw.DispatchIndirect.
	_ = rawBuffer
	// e.raw.DispatchIndirect(halBuffer, offset)

	return nil
}

// End finishes the compute pass.
// After this call, the encoder cannot be used again.
// Any subsequent method calls will return errors.
func (e *ComputePassEncoder) End() {
	if e.ended {
		return
	}

	e.ended = true

	if e.raw != nil {
		e.raw.End()
	}
}

// CommandEncoderState tracks the state of a command encoder.
type CommandEncoderState int

const (
	// CommandEncoderStateRecording means the encoder is actively recording commands.
	CommandEncoderStateRecording CommandEncoderState = iota

	// CommandEncoderStateEnded means the encoder has finished and produced a command buffer.
	CommandEncoderStateEnded

	// CommandEncoderStateError means the encoder encountered an error.
	CommandEncoderStateError
)

// CommandEncoderImpl provides command encoder functionality.
// It wraps hal.CommandEncoder with validation and ID-based resource lookup.
type CommandEncoderImpl struct {
	raw    hal.CommandEncoder
	device *Device
	state  CommandEncoderState
	label  string
}

// BeginComputePass begins a new compute pass within this command encoder.
// The returned ComputePassEncoder is used to record compute commands.
//
// Parameters:
//   - desc: Optional descriptor with label and timestamp writes.
//     Pass nil for default settings.
//
// The compute pass must be ended with End() before:
//   - Beginning another pass (compute or render)
//   - Finishing the command encoder
//
// Returns the compute pass encoder and any error encountered.
func (e *CommandEncoderImpl) BeginComputePass(desc *ComputePassDescriptor) (*ComputePassEncoder, error) {
	if e.state != CommandEncoderStateRecording {
		return nil, fmt.Errorf("command encoder is not in recording state")
	}

	// Convert core descriptor to HAL descriptor
	halDesc := &hal.ComputePassDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label

		if desc.TimestampWrites != nil {
			// Note: QuerySet HAL integration pending.
			// Skipping timestamp writes until core.QuerySet has HAL.
			halDesc.TimestampWrites = nil
		}
	}

	// Begin the compute pass on the underlying HAL encoder
	var rawPass hal.ComputePassEncoder
	if e.raw != nil {
		rawPass = e.raw.BeginComputePass(halDesc)
	}

	return &ComputePassEncoder{
		raw:    rawPass,
		device: e.device,
		ended:  false,
	}, nil
}

// DeviceCreateCommandEncoder creates a new command encoder for recording GPU commands.
// This is the entry point for recording command buffers.
//
// Parameters:
//   - id: The device ID to create the encoder on.
//   - label: Optional debug label for the encoder.
//
// Returns the command encoder ID and any error encountered.
func DeviceCreateCommandEncoder(id DeviceID, label string) (CommandEncoderID, error) {
	hub := GetGlobal().Hub()

	// Verify the device exists
	_, err := hub.GetDevice(id)
	if err != nil {
		return CommandEncoderID{}, fmt.Errorf("invalid device: %w", err)
	}

	// Create a placeholder command encoder
	// In a full implementation, this would create the HAL command encoder
	encoder := CommandEncoder{}
	encoderID := hub.RegisterCommandEncoder(encoder)

	return encoderID, nil
}

// CommandEncoderFinish finishes recording and returns a command buffer.
// The command encoder cannot be used after this call.
//
// Parameters:
//   - id: The command encoder ID to finish.
//
// Returns the command buffer ID and any error encountered.
func CommandEncoderFinish(id CommandEncoderID) (CommandBufferID, error) {
	hub := GetGlobal().Hub()

	// Verify the encoder exists
	_, err := hub.GetCommandEncoder(id)
	if err != nil {
		return CommandBufferID{}, fmt.Errorf("invalid command encoder: %w", err)
	}

	// Note: This is the ID-based API. HAL integration is in CoreCommandEncoder.Finish().

	// Create a placeholder command buffer (ID-based API does not have HAL).
	cmdBuffer := CommandBuffer{}
	cmdBufferID := hub.RegisterCommandBuffer(cmdBuffer)

	// Unregister the encoder (it's consumed)
	_, _ = hub.UnregisterCommandEncoder(id)

	return cmdBufferID, nil
}
