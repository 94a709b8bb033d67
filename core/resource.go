package core

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core/track"
	"github.com/gogpu/wgpu/hal"
)

// Adapter represents a physical GPU adapter.
type Adapter struct {
	// Info contains information about the adapter.
	Info gputypes.AdapterInfo
	// Features contains the features supported by the adapter.
	Features gputypes.Features
	// Limits contains the resource limits of the adapter.
	Limits gputypes.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend gputypes.Backend

	// Raw is the underlying HAL adapter, if this adapter was opened
	// against a real backend rather than registered as an ID-only stub.
	Raw hal.Adapter
}

// Device represents a logical GPU device.
//
// Device carries two parallel representations that coexist during the
// transition described in the package docs: the legacy ID-addressed
// fields (Adapter, Queue) used by the Hub-based free functions, and the
// HAL-integrated fields (raw, snatchLock) used by CoreCommandEncoder and
// the render-pass interpreter. NewDevice populates both.
type Device struct {
	// Adapter is the adapter this device was created from.
	Adapter AdapterID
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features gputypes.Features
	// Limits contains the resource limits of this device.
	Limits gputypes.Limits
	// Queue is the device's default queue.
	Queue QueueID

	// raw holds the HAL device handle. It is snatched on device loss or
	// explicit Destroy, after which every dependent resource must treat
	// the device as gone.
	raw *Snatchable[hal.Device]

	// snatchLock orders access to raw and to every HAL handle reachable
	// from resources owned by this device. See the snatch pattern
	// documented in snatch.go.
	snatchLock *SnatchLock

	// trackers allocates the dense TrackerIndex space shared by every
	// resource created on this device.
	trackers *track.TrackerIndexAllocators

	// textureTracker and bufferTracker hold the device-wide view of every
	// resource's last-known usage. Command buffers build up a per-pass
	// BufferUsageScope/TextureUsageScope as they record, then Merge it in
	// here at submit time, which both updates device state and yields the
	// barriers needed to transition from the old usage.
	textureTracker *track.TextureTracker
	bufferTracker  *track.BufferTracker

	// passCache caches render passes and framebuffers keyed by their
	// structural descriptors, amortizing backend object creation across
	// render passes with identical attachment layouts.
	passCache *RenderObjectCache

	// adapterObj is the physical adapter this device was opened from,
	// for HAL-path devices constructed directly via NewDevice rather
	// than through the Hub's ID registry.
	adapterObj *Adapter

	// associatedQueue caches the HAL-path device's default queue object.
	associatedQueue *Queue

	destroyed atomic.Bool
	lost      atomic.Bool
}

// NewDevice wraps an opened HAL device, ready to record command buffers
// and render passes against it.
func NewDevice(raw hal.Device, adapter *Adapter, features gputypes.Features, limits gputypes.Limits, label string) *Device {
	d := &Device{
		Label:      label,
		Features:   features,
		Limits:     limits,
		raw:            NewSnatchable(raw),
		snatchLock:     NewSnatchLock(),
		trackers:       track.NewTrackerIndexAllocators(),
		textureTracker: track.NewTextureTracker(),
		bufferTracker:  track.NewBufferTracker(),
		passCache:      NewRenderObjectCache(),
		adapterObj:     adapter,
	}
	d.passCache.Bind(raw)
	return d
}

// HasHAL reports whether the device has a live HAL handle.
func (d *Device) HasHAL() bool {
	return d.raw != nil && !d.raw.IsSnatched() && !d.destroyed.Load()
}

// IsValid reports whether the device has not been destroyed or lost.
func (d *Device) IsValid() bool {
	return !d.destroyed.Load() && !d.lost.Load()
}

// Raw returns the underlying HAL device under guard, or nil if the
// device has been destroyed.
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	return d.HALDevice(guard)
}

// Destroy releases the device's HAL handle. Safe to call more than once.
func (d *Device) Destroy() {
	if d.destroyed.Swap(true) {
		return
	}
	if d.raw == nil {
		return
	}
	guard := d.snatchLock.Write()
	defer guard.Release()
	raw := d.raw.Snatch(guard)
	if raw == nil {
		return
	}
	(*raw).Destroy()
}

// AssociatedQueue returns the device's default queue, or nil if none
// has been set.
func (d *Device) AssociatedQueue() *Queue {
	return d.associatedQueue
}

// SetAssociatedQueue attaches the device's default queue.
func (d *Device) SetAssociatedQueue(q *Queue) {
	d.associatedQueue = q
}

// checkValid returns ErrDeviceLost if the device has been lost or
// destroyed.
func (d *Device) checkValid() error {
	if d == nil || d.destroyed.Load() {
		return ErrDeviceDestroyed
	}
	if d.lost.Load() {
		return ErrDeviceLost
	}
	return nil
}

// SnatchLock returns the lock guarding every HAL handle owned by this
// device's resources.
func (d *Device) SnatchLock() *SnatchLock {
	return d.snatchLock
}

// Trackers returns the device's dense tracker-index allocators, used to
// assign each resource a TrackerIndex for bitset-based usage tracking.
func (d *Device) Trackers() *track.TrackerIndexAllocators {
	return d.trackers
}

// PassCache returns the device's render-pass/framebuffer object cache.
func (d *Device) PassCache() *RenderObjectCache {
	return d.passCache
}

// TextureTracker returns the device-wide texture usage tracker.
func (d *Device) TextureTracker() *track.TextureTracker {
	return d.textureTracker
}

// BufferTracker returns the device-wide buffer usage tracker.
func (d *Device) BufferTracker() *track.BufferTracker {
	return d.bufferTracker
}

// HALDevice returns the underlying HAL device, or nil if it has been
// snatched (lost or destroyed). Callers must hold guard for the duration
// of any call made through the returned handle.
func (d *Device) HALDevice(guard *SnatchGuard) hal.Device {
	ptr := d.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Lose marks the device as lost and snatches its HAL handle. Resources
// created on the device observe their own HAL handles as gone on their
// next access through Raw/HALDevice.
func (d *Device) Lose() {
	d.lost.Store(true)
	guard := d.snatchLock.Write()
	defer guard.Release()
	d.raw.Snatch(guard)
}

// Queue represents a command queue for a device.
type Queue struct {
	// Device is the device this queue belongs to.
	Device DeviceID
	// Label is a debug label for the queue.
	Label string

	raw *Snatchable[hal.Queue]
}

// NewQueue wraps an opened HAL queue.
func NewQueue(raw hal.Queue, device DeviceID, label string) *Queue {
	return &Queue{Device: device, Label: label, raw: NewSnatchable(raw)}
}

// Raw returns the underlying HAL queue, or nil if snatched.
func (q *Queue) Raw(guard *SnatchGuard) hal.Queue {
	ptr := q.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// resourceBase holds the fields shared by every HAL-backed resource:
// the device that owns it, a dense tracker index, and a destroyed flag
// guarded by the device's snatch lock.
type resourceBase struct {
	device       *Device
	label        string
	trackerIndex track.TrackerIndex
	destroyed    atomic.Bool
}

// Device returns the device that owns this resource, or nil for a
// resource constructed without HAL integration.
func (r *resourceBase) Device() *Device { return r.device }

// TrackerIndex is the dense index type used to index into resource
// tracking bitsets. It aliases the tracker package's type so callers
// outside core never need to import it directly.
type TrackerIndex = track.TrackerIndex

// InvalidTrackerIndex marks a resource with no assigned tracker slot.
const InvalidTrackerIndex = track.InvalidTrackerIndex

// BufferMapState describes where a buffer sits in the mapAsync state
// machine.
type BufferMapState int32

const (
	BufferMapStateIdle BufferMapState = iota
	BufferMapStatePending
	BufferMapStateMapped
)

const bufferInitChunkSize = 4096

// BufferInitTracker records, at chunk granularity, which regions of a
// buffer have been written. Buffers must be lazily zero-initialized
// before any range that hasn't been written is read, so each chunk
// starts uninitialized until a write (or explicit clear) covers it.
//
// A nil *BufferInitTracker behaves as fully initialized, so callers
// can safely call IsInitialized/MarkInitialized on a buffer that
// opted out of init tracking (e.g. host-visible buffers mapped at
// creation).
type BufferInitTracker struct {
	mu          sync.Mutex
	initialized []bool
}

// NewBufferInitTracker allocates a tracker covering size bytes, with
// every chunk starting uninitialized.
func NewBufferInitTracker(size uint64) *BufferInitTracker {
	numChunks := (size + bufferInitChunkSize - 1) / bufferInitChunkSize
	return &BufferInitTracker{initialized: make([]bool, numChunks)}
}

func (t *BufferInitTracker) chunkRange(offset, size uint64) (start, end uint64) {
	start = offset / bufferInitChunkSize
	end = (offset + size - 1) / bufferInitChunkSize
	return start, end
}

// IsInitialized reports whether every chunk touching [offset, offset+size)
// has been marked initialized.
func (t *BufferInitTracker) IsInitialized(offset, size uint64) bool {
	if t == nil || size == 0 {
		return true
	}
	start, end := t.chunkRange(offset, size)
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := start; i <= end && i < uint64(len(t.initialized)); i++ {
		if !t.initialized[i] {
			return false
		}
	}
	return true
}

// MarkInitialized marks every chunk touching [offset, offset+size) as
// initialized.
func (t *BufferInitTracker) MarkInitialized(offset, size uint64) {
	if t == nil || size == 0 {
		return
	}
	start, end := t.chunkRange(offset, size)
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := start; i <= end && i < uint64(len(t.initialized)); i++ {
		t.initialized[i] = true
	}
}

// BufferTrackingData exposes a buffer's dense tracker index to the
// usage-tracking system.
type BufferTrackingData struct {
	index TrackerIndex
}

// Index returns the tracker index assigned to the buffer.
func (td *BufferTrackingData) Index() TrackerIndex { return td.index }

// Buffer represents a GPU buffer.
type Buffer struct {
	resourceBase
	size        uint64
	usage       gputypes.BufferUsage
	raw         *Snatchable[hal.Buffer]
	mapState    atomic.Int32
	initTracker *BufferInitTracker
}

// NewBuffer wraps a HAL buffer created on device.
func NewBuffer(device *Device, raw hal.Buffer, desc *hal.BufferDescriptor, index track.TrackerIndex) *Buffer {
	label := ""
	if desc != nil {
		label = desc.Label
	}
	size := uint64(0)
	usage := gputypes.BufferUsage(0)
	if desc != nil {
		size = desc.Size
		usage = desc.Usage
	}
	return &Buffer{
		resourceBase: resourceBase{device: device, label: label, trackerIndex: index},
		size:         size,
		usage:        usage,
		raw:          NewSnatchable(raw),
		initTracker:  NewBufferInitTracker(size),
	}
}

// Size returns the buffer's size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// IsDestroyed reports whether the buffer has no live HAL handle, either
// because it was never given one or because Destroy has run.
func (b *Buffer) IsDestroyed() bool { return !b.HasHAL() }

// MapState returns the buffer's current position in the mapAsync state
// machine.
func (b *Buffer) MapState() BufferMapState { return BufferMapState(b.mapState.Load()) }

// SetMapState transitions the buffer's mapAsync state.
func (b *Buffer) SetMapState(s BufferMapState) { b.mapState.Store(int32(s)) }

// TrackingData returns the buffer's tracker-index wrapper for the
// usage-tracking system.
func (b *Buffer) TrackingData() *BufferTrackingData {
	return &BufferTrackingData{index: b.trackerIndex}
}

// IsInitialized reports whether [offset, offset+size) has been fully
// written. A buffer with no init tracker (constructed without HAL
// integration) is always considered initialized.
func (b *Buffer) IsInitialized(offset, size uint64) bool {
	return b.initTracker.IsInitialized(offset, size)
}

// MarkInitialized records [offset, offset+size) as written.
func (b *Buffer) MarkInitialized(offset, size uint64) {
	b.initTracker.MarkInitialized(offset, size)
}

// TrackerIndex returns the dense index assigned to this buffer for
// usage-state bitset tracking.
func (b *Buffer) TrackerIndex() track.TrackerIndex { return b.trackerIndex }

// HasHAL reports whether the buffer still has a live HAL handle.
func (b *Buffer) HasHAL() bool {
	return b.raw != nil && !b.raw.IsSnatched() && !b.destroyed.Load()
}

// Raw returns the underlying HAL buffer under guard, or nil if the
// buffer has been destroyed or its device lost.
func (b *Buffer) Raw(guard *SnatchGuard) hal.Buffer {
	if b.raw == nil {
		return nil
	}
	ptr := b.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the buffer's HAL handle. Safe to call more than once.
func (b *Buffer) Destroy() {
	if b.destroyed.Swap(true) {
		return
	}
	if b.device == nil || b.raw == nil {
		return
	}
	guard := b.device.snatchLock.Write()
	defer guard.Release()
	raw := b.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := b.device.snatchLock.Read()
	halDevice := b.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyBuffer(*raw)
	}
}

// Texture represents a GPU texture.
type Texture struct {
	resourceBase
	desc hal.TextureDescriptor
	raw  *Snatchable[hal.Texture]
}

// NewTexture wraps a HAL texture created on device.
func NewTexture(device *Device, raw hal.Texture, desc *hal.TextureDescriptor, index track.TrackerIndex) *Texture {
	label := ""
	var d hal.TextureDescriptor
	if desc != nil {
		label = desc.Label
		d = *desc
	}
	return &Texture{
		resourceBase: resourceBase{device: device, label: label, trackerIndex: index},
		desc:         d,
		raw:          NewSnatchable(raw),
	}
}

// Format returns the texture's pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.desc.Format }

// Usage returns the texture's usage flags.
func (t *Texture) Usage() gputypes.TextureUsage { return t.desc.Usage }

// Size returns the texture's extent.
func (t *Texture) Size() hal.Extent3D { return t.desc.Size }

// SampleCount returns the texture's multisample count.
func (t *Texture) SampleCount() uint32 { return t.desc.SampleCount }

// Label returns the texture's debug label.
func (t *Texture) Label() string { return t.label }

// TrackerIndex returns the dense index assigned to this texture.
func (t *Texture) TrackerIndex() track.TrackerIndex { return t.trackerIndex }

// Raw returns the underlying HAL texture under guard, or nil if
// destroyed.
func (t *Texture) Raw(guard *SnatchGuard) hal.Texture {
	if t.raw == nil {
		return nil
	}
	ptr := t.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the texture's HAL handle. Safe to call more than once.
func (t *Texture) Destroy() {
	if t.destroyed.Swap(true) {
		return
	}
	if t.device == nil || t.raw == nil {
		return
	}
	guard := t.device.snatchLock.Write()
	defer guard.Release()
	raw := t.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := t.device.snatchLock.Read()
	halDevice := t.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyTexture(*raw)
	}
}

// TextureView represents a view into a texture.
type TextureView struct {
	resourceBase
	parent *Texture
	desc   hal.TextureViewDescriptor
	raw    *Snatchable[hal.TextureView]

	// isSurfaceView marks a view created over a swap-chain-acquired
	// texture. At most one such view may be attached to a render pass,
	// and a pass that touches one commits to presenting it on End.
	isSurfaceView bool
}

// NewTextureView wraps a HAL texture view.
func NewTextureView(device *Device, parent *Texture, raw hal.TextureView, desc *hal.TextureViewDescriptor) *TextureView {
	label := ""
	var d hal.TextureViewDescriptor
	if desc != nil {
		label = desc.Label
		d = *desc
	}
	return &TextureView{
		resourceBase: resourceBase{device: device, label: label},
		parent:       parent,
		desc:         d,
		raw:          NewSnatchable(raw),
	}
}

// NewSurfaceTextureView wraps a HAL texture view acquired from a
// swap chain, marking it for the single-swap-chain-per-pass check.
func NewSurfaceTextureView(device *Device, parent *Texture, raw hal.TextureView, desc *hal.TextureViewDescriptor) *TextureView {
	v := NewTextureView(device, parent, raw, desc)
	v.isSurfaceView = true
	return v
}

// IsSurfaceView reports whether this view was acquired from a swap
// chain.
func (v *TextureView) IsSurfaceView() bool { return v.isSurfaceView }

// Texture returns the texture this view was created from.
func (v *TextureView) Texture() *Texture { return v.parent }

// Format returns the effective format of the view, falling back to the
// parent texture's format when the descriptor didn't override it.
func (v *TextureView) Format() gputypes.TextureFormat {
	if v.desc.Format != 0 {
		return v.desc.Format
	}
	if v.parent != nil {
		return v.parent.Format()
	}
	return 0
}

// Label returns the view's debug label.
func (v *TextureView) Label() string { return v.label }

// Raw returns the underlying HAL texture view under guard, or nil if
// destroyed.
func (v *TextureView) Raw(guard *SnatchGuard) hal.TextureView {
	if v.raw == nil {
		return nil
	}
	ptr := v.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the view's HAL handle. Safe to call more than once.
func (v *TextureView) Destroy() {
	if v.destroyed.Swap(true) {
		return
	}
	if v.device == nil || v.raw == nil {
		return
	}
	guard := v.device.snatchLock.Write()
	defer guard.Release()
	raw := v.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := v.device.snatchLock.Read()
	halDevice := v.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyTextureView(*raw)
	}
}

// Sampler represents a texture sampler.
type Sampler struct {
	resourceBase
	raw *Snatchable[hal.Sampler]
}

// BindGroupLayout represents the layout of a bind group.
type BindGroupLayout struct {
	resourceBase
	entries []gputypes.BindGroupLayoutEntry
	raw     *Snatchable[hal.BindGroupLayout]
}

// Entries returns the layout's binding entries, in declared order.
func (l *BindGroupLayout) Entries() []gputypes.BindGroupLayoutEntry { return l.entries }

// Raw returns the underlying HAL bind group layout under guard, or nil.
func (l *BindGroupLayout) Raw(guard *SnatchGuard) hal.BindGroupLayout {
	if l == nil || l.raw == nil {
		return nil
	}
	ptr := l.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the layout's HAL handle. Safe to call more than once.
func (l *BindGroupLayout) Destroy() {
	if l.destroyed.Swap(true) {
		return
	}
	if l.device == nil || l.raw == nil {
		return
	}
	guard := l.device.snatchLock.Write()
	defer guard.Release()
	raw := l.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := l.device.snatchLock.Read()
	halDevice := l.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyBindGroupLayout(*raw)
	}
}

// PipelineLayout represents the layout of a pipeline.
type PipelineLayout struct {
	resourceBase
	bindGroupLayouts []*BindGroupLayout
	raw              *Snatchable[hal.PipelineLayout]
}

// BindGroupLayouts returns the bind group layouts this pipeline layout
// expects, indexed by bind group slot.
func (l *PipelineLayout) BindGroupLayouts() []*BindGroupLayout {
	if l == nil {
		return nil
	}
	return l.bindGroupLayouts
}

// Raw returns the underlying HAL pipeline layout under guard, or nil.
func (l *PipelineLayout) Raw(guard *SnatchGuard) hal.PipelineLayout {
	if l == nil || l.raw == nil {
		return nil
	}
	ptr := l.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Destroy releases the pipeline layout's HAL handle. Safe to call more
// than once.
func (l *PipelineLayout) Destroy() {
	if l.destroyed.Swap(true) {
		return
	}
	if l.device == nil || l.raw == nil {
		return
	}
	guard := l.device.snatchLock.Write()
	defer guard.Release()
	raw := l.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := l.device.snatchLock.Read()
	halDevice := l.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyPipelineLayout(*raw)
	}
}

// BindGroup represents a collection of resources bound together.
type BindGroup struct {
	resourceBase
	layout *BindGroupLayout
	used   usedResources
	raw    *Snatchable[hal.BindGroup]
}

// usedResources records the concrete buffers/textures a bind group
// references, so the render-pass tracker can fold their usage into the
// pass-wide usage scope when the bind group is bound.
type usedResources struct {
	buffers  []*Buffer
	textures []*Texture
}

// Raw returns the underlying HAL bind group under guard, or nil.
func (g *BindGroup) Raw(guard *SnatchGuard) hal.BindGroup {
	if g == nil || g.raw == nil {
		return nil
	}
	ptr := g.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Layout returns the layout this bind group was created against.
func (g *BindGroup) Layout() *BindGroupLayout { return g.layout }

// UsedBuffers returns the buffers this bind group references, so a
// render pass can fold their usage into its usage scope when the group
// is bound.
func (g *BindGroup) UsedBuffers() []*Buffer { return g.used.buffers }

// UsedTextures returns the textures this bind group references, so a
// render pass can fold their usage into its usage scope when the group
// is bound.
func (g *BindGroup) UsedTextures() []*Texture { return g.used.textures }

// Destroy releases the bind group's HAL handle. Safe to call more than
// once.
func (g *BindGroup) Destroy() {
	if g.destroyed.Swap(true) {
		return
	}
	if g.device == nil || g.raw == nil {
		return
	}
	guard := g.device.snatchLock.Write()
	defer guard.Release()
	raw := g.raw.Snatch(guard)
	if raw == nil {
		return
	}
	devGuard := g.device.snatchLock.Read()
	halDevice := g.device.HALDevice(devGuard)
	devGuard.Release()
	if halDevice != nil {
		halDevice.DestroyBindGroup(*raw)
	}
}

// ShaderModule represents a compiled shader module.
type ShaderModule struct {
	resourceBase
	raw *Snatchable[hal.ShaderModule]
}

// CommandEncoder represents a command encoder (legacy ID-based API).
type CommandEncoder struct{}

// CommandBuffer represents a recorded command buffer (legacy ID-based
// API).
type CommandBuffer struct{}

// QuerySet represents a set of occlusion, timestamp, or pipeline
// statistics queries.
type QuerySet struct {
	resourceBase
	kind  hal.QueryType
	count uint32

	// active tracks, per query index, whether BeginOcclusionQuery has
	// been issued without a matching EndOcclusionQuery. Declared here
	// rather than on the render-pass interpreter so a query's busy state
	// survives across passes within the same command buffer, matching
	// how wgpu-core tracks query availability on the QuerySet itself.
	mu     sync.Mutex
	active map[uint32]bool

	raw *Snatchable[hal.QuerySet]
}

// NewQuerySet wraps a HAL query set.
func NewQuerySet(device *Device, raw hal.QuerySet, kind hal.QueryType, count uint32) *QuerySet {
	return &QuerySet{
		resourceBase: resourceBase{device: device},
		kind:         kind,
		count:        count,
		active:       make(map[uint32]bool),
		raw:          NewSnatchable(raw),
	}
}

// Count returns the number of queries in the set.
func (q *QuerySet) Count() uint32 { return q.count }

// Raw returns the underlying HAL query set under guard, or nil.
func (q *QuerySet) Raw(guard *SnatchGuard) hal.QuerySet {
	if q == nil || q.raw == nil {
		return nil
	}
	ptr := q.raw.Get(guard)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// BeginQuery marks query index as active, returning an error if it is
// already active or out of range.
func (q *QuerySet) BeginQuery(index uint32) error {
	if index >= q.count {
		return NewValidationErrorf("QuerySet", "index", "query index %d out of range (count %d)", index, q.count)
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.active[index] {
		return NewValidationErrorf("QuerySet", "index", "query index %d already active", index)
	}
	q.active[index] = true
	return nil
}

// EndQuery clears the active flag for index, returning an error if it
// was not active.
func (q *QuerySet) EndQuery(index uint32) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.active[index] {
		return NewValidationErrorf("QuerySet", "index", "query index %d not active", index)
	}
	q.active[index] = false
	return nil
}

// Surface represents a rendering surface.
type Surface struct{}
