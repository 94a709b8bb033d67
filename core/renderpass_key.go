package core

import (
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core/track"
)

// MaxColorAttachments is the largest number of simultaneous color
// attachments a render pass may declare.
const MaxColorAttachments = 8

// TextureLayout is the abstract image layout an attachment is in at the
// start and end of a render pass, independent of any backend's native
// layout enum. The object cache (§4.2) maps these onto whatever the
// concrete backend calls them.
type TextureLayout int

const (
	// TextureLayoutUndefined means the attachment's prior contents don't
	// need to be preserved — only valid as an initial layout, and only
	// for a swap-chain image on its first use in a command buffer.
	TextureLayoutUndefined TextureLayout = iota
	TextureLayoutColorAttachmentOptimal
	TextureLayoutDepthStencilAttachmentOptimal
	// TextureLayoutPresent is a swap-chain image's mandatory final
	// layout, and its initial layout on every use after the first.
	TextureLayoutPresent
)

// AttachmentKey is the structural description of a single render pass
// attachment slot: everything that determines backend object identity,
// independent of which concrete texture view fills the slot.
type AttachmentKey struct {
	Format        gputypes.TextureFormat
	SampleCount   uint32
	LoadOp        gputypes.LoadOp
	StoreOp       gputypes.StoreOp
	HasResolve    bool
	InitialLayout TextureLayout
	FinalLayout   TextureLayout
}

// RenderPassKey uniquely identifies a backend render-pass object by the
// structural shape of its attachments, independent of the specific
// texture views bound to them. Two BeginRenderPass calls with the same
// key can share one backend render-pass object.
type RenderPassKey struct {
	Colors          [MaxColorAttachments]AttachmentKey
	ColorCount      int
	HasDepthStencil bool
	DepthStencil    AttachmentKey
	StencilLoadOp   gputypes.LoadOp
	StencilStoreOp  gputypes.StoreOp
}

// FramebufferKey uniquely identifies a backend framebuffer object: the
// render pass it's compatible with, plus the concrete view identities
// and extent bound to each slot.
type FramebufferKey struct {
	RenderPass  any
	Colors      [MaxColorAttachments]uintptr
	Resolves    [MaxColorAttachments]uintptr
	ColorCount  int
	DepthStencil uintptr
	Width       uint32
	Height      uint32
}

// AttachmentKeyBuilder accumulates attachment descriptions from a
// RenderPassDescriptor, validating cross-attachment invariants and
// producing the RenderPassKey/FramebufferKey pair used to look up (or
// create) the backend's cached render-pass/framebuffer objects.
//
// The invariants mirror wgpu-core's attachment-compatibility checks:
// every attachment must agree on sample count and extent, a resolve
// target is only valid paired with a multisampled color attachment and
// must itself be single-sampled, and at most one attachment per pass may
// be a swap-chain (surface) texture.
type AttachmentKeyBuilder struct {
	pass RenderPassKey
	fb   FramebufferKey

	tracker             *track.TextureTracker
	swapChainUsedBefore bool
	usedSwapChain       bool

	sampleCount   uint32
	sampleCountOK bool
	width, height uint32
	extentOK      bool
	sawSwapChain  bool

	err error
}

// NewAttachmentKeyBuilder returns an empty builder. tracker is the
// device-wide texture tracker consulted to infer each attachment's
// initial layout (§4.1); swapChainUsedBefore reports whether the owning
// command buffer has already used a swap-chain image in an earlier pass,
// since a swap-chain attachment's initial layout is Undefined only on
// its first use in the command buffer and Present afterward.
func NewAttachmentKeyBuilder(tracker *track.TextureTracker, swapChainUsedBefore bool) *AttachmentKeyBuilder {
	return &AttachmentKeyBuilder{tracker: tracker, swapChainUsedBefore: swapChainUsedBefore}
}

// SwapChainUsed reports whether a swap-chain attachment was folded into
// this render pass, so the owning command buffer can update its own
// "used before" state for the next pass it records.
func (b *AttachmentKeyBuilder) SwapChainUsed() bool { return b.usedSwapChain }

// viewInfo is the subset of a TextureView's properties the key builder
// needs; kept separate from *TextureView so tests can exercise the
// builder without constructing real HAL resources.
type viewInfo struct {
	ptr          uintptr
	format       gputypes.TextureFormat
	sampleCount  uint32
	width        uint32
	height       uint32
	isSwapChain  bool
	hasTexture   bool
	outputUsage  bool
	trackerIndex track.TrackerIndex
}

func viewOf(v *TextureView) viewInfo {
	if v == nil {
		return viewInfo{}
	}
	info := viewInfo{ptr: uintptr(unsafe.Pointer(v)), format: v.Format(), isSwapChain: v.IsSurfaceView()}
	if t := v.Texture(); t != nil {
		info.sampleCount = t.SampleCount()
		size := t.Size()
		info.width, info.height = size.Width, size.Height
		info.hasTexture = true
		info.trackerIndex = t.TrackerIndex()
		info.outputUsage = t.Usage()&gputypes.TextureUsageRenderAttachment != 0
	}
	return info
}

// colorLayouts derives the initial/final layout pair for one color
// attachment view (spec §4.1): a swap-chain image's initial layout is
// Undefined on first use in the command buffer and Present otherwise,
// with a final layout of Present always; a native color attachment's
// initial layout comes from the tracker's last-known usage when
// present, defaulting to ColorAttachmentOptimal, with a final layout of
// ColorAttachmentOptimal always.
func (b *AttachmentKeyBuilder) colorLayouts(vi viewInfo) (initial, final TextureLayout) {
	if vi.isSwapChain {
		b.usedSwapChain = true
		if b.swapChainUsedBefore {
			return TextureLayoutPresent, TextureLayoutPresent
		}
		return TextureLayoutUndefined, TextureLayoutPresent
	}
	if b.tracker != nil {
		if _, ok := b.tracker.ConsistentUsage(vi.trackerIndex); ok {
			return TextureLayoutColorAttachmentOptimal, TextureLayoutColorAttachmentOptimal
		}
	}
	return TextureLayoutColorAttachmentOptimal, TextureLayoutColorAttachmentOptimal
}

func (b *AttachmentKeyBuilder) depthStencilLayouts(vi viewInfo) (initial, final TextureLayout) {
	if b.tracker != nil {
		if _, ok := b.tracker.ConsistentUsage(vi.trackerIndex); ok {
			return TextureLayoutDepthStencilAttachmentOptimal, TextureLayoutDepthStencilAttachmentOptimal
		}
	}
	return TextureLayoutDepthStencilAttachmentOptimal, TextureLayoutDepthStencilAttachmentOptimal
}

func (b *AttachmentKeyBuilder) checkOutputAttachment(vi viewInfo, field string) bool {
	if !vi.hasTexture {
		return true
	}
	if !vi.outputUsage {
		b.err = NewValidationErrorf("RenderPass", field, "attachment texture lacks the RENDER_ATTACHMENT usage bit")
		return false
	}
	return true
}

// AddColor folds one color attachment into the key under construction.
func (b *AttachmentKeyBuilder) AddColor(view, resolve *TextureView, loadOp gputypes.LoadOp, storeOp gputypes.StoreOp) {
	if b.err != nil {
		return
	}
	if b.pass.ColorCount >= MaxColorAttachments {
		b.err = NewValidationErrorf("RenderPass", "colorAttachments", "too many color attachments (max %d)", MaxColorAttachments)
		return
	}
	vi := viewOf(view)
	if !b.checkSampleCount(vi.sampleCount) || !b.checkExtent(vi.width, vi.height) {
		return
	}
	if !b.checkOutputAttachment(vi, "colorAttachments") {
		return
	}
	if vi.isSwapChain {
		if b.sawSwapChain {
			b.err = NewValidationError("RenderPass", "colorAttachments", "at most one swap-chain attachment is allowed per render pass")
			return
		}
		b.sawSwapChain = true
	}

	hasResolve := resolve != nil
	if hasResolve {
		ri := viewOf(resolve)
		if vi.sampleCount <= 1 {
			b.err = NewValidationError("RenderPass", "resolveTarget", "resolve target requires a multisampled color attachment")
			return
		}
		if ri.sampleCount > 1 {
			b.err = NewValidationError("RenderPass", "resolveTarget", "resolve target must be single-sampled")
			return
		}
		if !b.checkExtent(ri.width, ri.height) {
			return
		}
		if !b.checkOutputAttachment(ri, "resolveTarget") {
			return
		}
	}

	initial, final := b.colorLayouts(vi)

	idx := b.pass.ColorCount
	b.pass.Colors[idx] = AttachmentKey{
		Format: vi.format, SampleCount: vi.sampleCount, LoadOp: loadOp, StoreOp: storeOp, HasResolve: hasResolve,
		InitialLayout: initial, FinalLayout: final,
	}
	b.fb.Colors[idx] = vi.ptr
	if hasResolve {
		b.fb.Resolves[idx] = viewOf(resolve).ptr
	}
	b.pass.ColorCount++
	b.fb.ColorCount++
}

// SetDepthStencil folds the depth/stencil attachment into the key under
// construction. Call at most once.
func (b *AttachmentKeyBuilder) SetDepthStencil(view *TextureView, depthLoad gputypes.LoadOp, depthStore gputypes.StoreOp, stencilLoad gputypes.LoadOp, stencilStore gputypes.StoreOp) {
	if b.err != nil {
		return
	}
	vi := viewOf(view)
	if !b.checkSampleCount(vi.sampleCount) || !b.checkExtent(vi.width, vi.height) {
		return
	}
	if !b.checkOutputAttachment(vi, "depthStencilAttachment") {
		return
	}
	initial, final := b.depthStencilLayouts(vi)
	b.pass.HasDepthStencil = true
	b.pass.DepthStencil = AttachmentKey{
		Format: vi.format, SampleCount: vi.sampleCount, LoadOp: depthLoad, StoreOp: depthStore,
		InitialLayout: initial, FinalLayout: final,
	}
	b.pass.StencilLoadOp = stencilLoad
	b.pass.StencilStoreOp = stencilStore
	b.fb.DepthStencil = vi.ptr
}

func (b *AttachmentKeyBuilder) checkSampleCount(count uint32) bool {
	if count == 0 {
		count = 1
	}
	if !b.sampleCountOK {
		b.sampleCount = count
		b.sampleCountOK = true
		return true
	}
	if b.sampleCount != count {
		b.err = NewValidationErrorf("RenderPass", "sampleCount", "attachment sample count %d does not match pass sample count %d", count, b.sampleCount)
		return false
	}
	return true
}

func (b *AttachmentKeyBuilder) checkExtent(width, height uint32) bool {
	if !b.extentOK {
		b.width, b.height = width, height
		b.extentOK = true
		b.fb.Width, b.fb.Height = width, height
		return true
	}
	if b.width != width || b.height != height {
		b.err = NewValidationErrorf("RenderPass", "extent", "attachment extent %dx%d does not match pass extent %dx%d", width, height, b.width, b.height)
		return false
	}
	return true
}

// Build finalizes the keys, or returns the first validation error
// encountered while accumulating attachments.
func (b *AttachmentKeyBuilder) Build() (RenderPassKey, FramebufferKey, error) {
	if b.err != nil {
		return RenderPassKey{}, FramebufferKey{}, b.err
	}
	if b.pass.ColorCount == 0 && !b.pass.HasDepthStencil {
		return RenderPassKey{}, FramebufferKey{}, NewValidationError("RenderPass", "colorAttachments", "render pass must have at least one attachment")
	}
	return b.pass, b.fb, nil
}
