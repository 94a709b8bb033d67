package core

import "sync"

// AttachmentUnused marks a subpass attachment reference slot as absent,
// mirroring VK_ATTACHMENT_UNUSED: the subpass has no resolve target (or
// no depth/stencil target) at that position.
const AttachmentUnused = ^uint32(0)

// AttachmentRef is a subpass's reference to one attachment in the
// backend's flat attachment array: its index and the layout it must be
// in for this subpass.
type AttachmentRef struct {
	Index  uint32
	Layout TextureLayout
}

// SubpassDescriptor is the backend-agnostic result of §4.2's subpass
// construction: color attachment references in slot order, a parallel
// resolve reference per color slot (AttachmentUnused when that slot has
// no resolve target), and the depth-stencil reference, always placed
// after every color/resolve attachment.
type SubpassDescriptor struct {
	ColorRefs       [MaxColorAttachments]AttachmentRef
	ResolveRefs     [MaxColorAttachments]AttachmentRef
	ColorCount      int
	DepthStencilRef AttachmentRef
	HasDepthStencil bool
	AttachmentCount uint32
}

// BuildSubpass walks a RenderPassKey's color attachments in order,
// assigning each a flat attachment index (incrementing an
// attachment_index counter as it goes), assigning its resolve target the
// next index when HasResolve is set or AttachmentUnused otherwise, and
// finally placing the depth-stencil attachment — if any — at the last
// index. This is the single-subpass layout every Vulkan-style render
// pass object needs, and is also what a dynamic-rendering backend's
// per-attachment layout list is built from.
func BuildSubpass(key RenderPassKey) SubpassDescriptor {
	var sub SubpassDescriptor
	var idx uint32

	for i := 0; i < key.ColorCount; i++ {
		sub.ColorRefs[i] = AttachmentRef{Index: idx, Layout: key.Colors[i].InitialLayout}
		idx++
		if key.Colors[i].HasResolve {
			sub.ResolveRefs[i] = AttachmentRef{Index: idx, Layout: TextureLayoutColorAttachmentOptimal}
			idx++
		} else {
			sub.ResolveRefs[i] = AttachmentRef{Index: AttachmentUnused}
		}
	}
	sub.ColorCount = key.ColorCount

	if key.HasDepthStencil {
		sub.DepthStencilRef = AttachmentRef{Index: idx, Layout: key.DepthStencil.InitialLayout}
		sub.HasDepthStencil = true
		idx++
	}

	sub.AttachmentCount = idx
	return sub
}

// RenderPassBackend is an optional capability a hal.Device may implement
// to back render-pass/framebuffer objects with real backend resources
// (a Vulkan VkRenderPass/VkFramebuffer, say). Backends built on dynamic
// rendering (Metal, DX12, a software rasterizer) have no need for a
// persistent render-pass object and simply don't implement it;
// RenderObjectCache still computes and caches the structural
// SubpassDescriptor every backend's own per-pass setup is built from,
// it just has no opaque backend handle to go with it.
type RenderPassBackend interface {
	CreateRenderPass(key RenderPassKey, subpass SubpassDescriptor) (any, error)
	CreateFramebuffer(key FramebufferKey, renderPass any) (any, error)
	DestroyRenderPass(renderPass any)
	DestroyFramebuffer(framebuffer any)
}

// RenderPassObject is what RenderObjectCache caches per RenderPassKey:
// the computed subpass layout, plus whatever opaque handle the bound
// backend created for it (nil if none is bound).
type RenderPassObject struct {
	Subpass SubpassDescriptor
	Handle  any
}

// RenderObjectCache memoizes backend render-pass and framebuffer objects
// by their structural key, so repeated render passes over the same
// attachment shape reuse one backend object instead of paying creation
// cost every BeginRenderPass. Double-checked locking keeps the common
// cache-hit path to a single read lock.
type RenderObjectCache struct {
	backend RenderPassBackend

	mu           sync.RWMutex
	renderPasses map[RenderPassKey]*RenderPassObject
	framebuffers map[FramebufferKey]any
}

// NewRenderObjectCache returns an empty cache. Bind attaches to a
// backend device.
func NewRenderObjectCache() *RenderObjectCache {
	return &RenderObjectCache{
		renderPasses: make(map[RenderPassKey]*RenderPassObject),
		framebuffers: make(map[FramebufferKey]any),
	}
}

// Bind attaches the cache to a HAL device, type-asserting it for the
// optional RenderPassBackend capability. Safe to call with a device that
// doesn't implement it; CreateRenderPass/CreateFramebuffer are then
// simply never called, and every cached RenderPassObject carries a nil
// Handle.
func (c *RenderObjectCache) Bind(device any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backend, _ = device.(RenderPassBackend)
}

// GetOrCreateRenderPass returns the cached render-pass object for key,
// computing its SubpassDescriptor (§4.2) and, if a backend is bound,
// creating the backend handle, on a cache miss.
func (c *RenderObjectCache) GetOrCreateRenderPass(key RenderPassKey) (*RenderPassObject, error) {
	c.mu.RLock()
	if rp, ok := c.renderPasses[key]; ok {
		c.mu.RUnlock()
		return rp, nil
	}
	backend := c.backend
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if rp, ok := c.renderPasses[key]; ok {
		return rp, nil
	}

	obj := &RenderPassObject{Subpass: BuildSubpass(key)}
	if backend != nil {
		handle, err := backend.CreateRenderPass(key, obj.Subpass)
		if err != nil {
			return nil, err
		}
		obj.Handle = handle
	}
	c.renderPasses[key] = obj
	return obj, nil
}

// GetOrCreateFramebuffer returns the cached framebuffer object for key,
// creating it against renderPass via the bound backend on a cache miss.
// Returns (nil, nil) if no backend is bound.
func (c *RenderObjectCache) GetOrCreateFramebuffer(key FramebufferKey, renderPass *RenderPassObject) (any, error) {
	c.mu.RLock()
	if fb, ok := c.framebuffers[key]; ok {
		c.mu.RUnlock()
		return fb, nil
	}
	backend := c.backend
	c.mu.RUnlock()

	if backend == nil {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if fb, ok := c.framebuffers[key]; ok {
		return fb, nil
	}
	var handle any
	if renderPass != nil {
		handle = renderPass.Handle
	}
	fb, err := backend.CreateFramebuffer(key, handle)
	if err != nil {
		return nil, err
	}
	c.framebuffers[key] = fb
	return fb, nil
}

// InvalidateFramebuffersWithView drops every cached framebuffer whose
// key references viewPtr, e.g. when a swap-chain image is recreated.
func (c *RenderObjectCache) InvalidateFramebuffersWithView(viewPtr uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, fb := range c.framebuffers {
		if key.DepthStencil == viewPtr || containsPtr(key.Colors[:key.ColorCount], viewPtr) || containsPtr(key.Resolves[:key.ColorCount], viewPtr) {
			if c.backend != nil {
				c.backend.DestroyFramebuffer(fb)
			}
			delete(c.framebuffers, key)
		}
	}
}

func containsPtr(ptrs []uintptr, target uintptr) bool {
	for _, p := range ptrs {
		if p == target {
			return true
		}
	}
	return false
}

// Destroy releases every cached backend object.
func (c *RenderObjectCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.backend != nil {
		for _, fb := range c.framebuffers {
			c.backend.DestroyFramebuffer(fb)
		}
		for _, rp := range c.renderPasses {
			if rp.Handle != nil {
				c.backend.DestroyRenderPass(rp.Handle)
			}
		}
	}
	c.framebuffers = nil
	c.renderPasses = nil
}
