package track

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TextureUses represents internal texture usage states for tracking.
// Tracked at whole-texture granularity: every mip level and array layer
// of a texture shares one state. wgpu-core tracks per-subresource ranges;
// this core simplifies to whole-resource tracking, which is sufficient
// for the render-pass attachment and sampled-texture cases this
// component validates, and is documented as a deliberate simplification.
type TextureUses uint32

// Texture usage flags for state tracking.
const (
	TextureUsesNone             TextureUses = 0
	TextureUsesCopySrc          TextureUses = 1 << 0
	TextureUsesCopyDst          TextureUses = 1 << 1
	TextureUsesSampled          TextureUses = 1 << 2 // Bound as a sampled/texture-binding resource
	TextureUsesStorageRead      TextureUses = 1 << 3
	TextureUsesStorageWrite     TextureUses = 1 << 4
	TextureUsesColorTarget      TextureUses = 1 << 5 // Bound as a render pass color attachment
	TextureUsesDepthStencilRead TextureUses = 1 << 6
	TextureUsesDepthStencilWrite TextureUses = 1 << 7
	TextureUsesPresent          TextureUses = 1 << 8 // Swap-chain presentation layout
)

// IsReadOnly returns true if the usage contains only read-only
// operations.
func (u TextureUses) IsReadOnly() bool {
	writeUsages := TextureUsesCopyDst | TextureUsesStorageWrite | TextureUsesColorTarget | TextureUsesDepthStencilWrite
	return u&writeUsages == 0
}

// IsEmpty returns true if no usage flags are set.
func (u TextureUses) IsEmpty() bool {
	return u == TextureUsesNone
}

// Contains returns true if all flags in other are present in u.
func (u TextureUses) Contains(other TextureUses) bool {
	return u&other == other
}

// IsCompatible returns true if two usages can coexist without a
// barrier. Read-only usages are compatible with each other; a
// depth-stencil read-only attachment is compatible with sampling the
// same texture (read-only + read-only), matching wgpu-core's
// DEPTH_STENCIL_READ / SAMPLED compatibility.
func (u TextureUses) IsCompatible(other TextureUses) bool {
	if u.IsEmpty() || other.IsEmpty() {
		return true
	}
	if u.IsReadOnly() && other.IsReadOnly() {
		return true
	}
	return u == other
}

// ToTextureUsage converts internal uses to gputypes.TextureUsage, the
// type hal.TextureUsageTransition and hal.TextureDescriptor expect.
func (u TextureUses) ToTextureUsage() gputypes.TextureUsage {
	var result gputypes.TextureUsage
	if u&TextureUsesCopySrc != 0 {
		result |= gputypes.TextureUsageCopySrc
	}
	if u&TextureUsesCopyDst != 0 {
		result |= gputypes.TextureUsageCopyDst
	}
	if u&TextureUsesSampled != 0 {
		result |= gputypes.TextureUsageTextureBinding
	}
	if u&(TextureUsesStorageRead|TextureUsesStorageWrite) != 0 {
		result |= gputypes.TextureUsageStorageBinding
	}
	if u&(TextureUsesColorTarget|TextureUsesDepthStencilRead|TextureUsesDepthStencilWrite) != 0 {
		result |= gputypes.TextureUsageRenderAttachment
	}
	return result
}

// TextureState holds the tracked state for a single texture.
type TextureState struct {
	usage TextureUses
}

// Usage returns the current usage.
func (s TextureState) Usage() TextureUses { return s.usage }

// TextureTracker tracks texture usage states for a device, mirroring
// BufferTracker's role for buffers.
type TextureTracker struct {
	states   []TextureState
	metadata ResourceMetadata
}

// NewTextureTracker creates a new texture tracker.
func NewTextureTracker() *TextureTracker {
	return &TextureTracker{
		states:   make([]TextureState, 0, 64),
		metadata: NewResourceMetadata(),
	}
}

// InsertSingle tracks a new texture with initial usage.
func (t *TextureTracker) InsertSingle(index TrackerIndex, usage TextureUses) {
	t.ensureSize(int(index) + 1)
	t.states[index] = TextureState{usage: usage}
	t.metadata.SetOwned(index, true)
}

// Remove stops tracking a texture.
func (t *TextureTracker) Remove(index TrackerIndex) {
	if int(index) < len(t.states) {
		t.states[index] = TextureState{}
		t.metadata.SetOwned(index, false)
	}
}

// GetUsage returns the current usage of a texture.
func (t *TextureTracker) GetUsage(index TrackerIndex) TextureUses {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		return t.states[index].usage
	}
	return TextureUsesNone
}

// IsTracked returns true if the texture is being tracked.
func (t *TextureTracker) IsTracked(index TrackerIndex) bool {
	return int(index) < len(t.states) && t.metadata.IsOwned(index)
}

// ConsistentUsage returns the texture's last device-known usage and true,
// or (TextureUsesNone, false) if the texture has never been tracked.
// Since this tracker holds one state per whole resource rather than a
// per-subresource map, "consistent" is automatic: there is only ever one
// usage to report.
func (t *TextureTracker) ConsistentUsage(index TrackerIndex) (TextureUses, bool) {
	if !t.IsTracked(index) {
		return TextureUsesNone, false
	}
	return t.states[index].usage, true
}

// Size returns the number of tracked textures.
func (t *TextureTracker) Size() int { return t.metadata.Count() }

func (t *TextureTracker) ensureSize(size int) {
	for len(t.states) < size {
		t.states = append(t.states, TextureState{})
	}
}

// Merge merges usage from scope into tracker, returning the transitions
// that need barriers, called during queue submit.
func (t *TextureTracker) Merge(scope *TextureUsageScope) []PendingTextureTransition {
	var transitions []PendingTextureTransition

	for i := range scope.states {
		if i < 0 || i > int(^TrackerIndex(0)-1) {
			continue
		}
		index := TrackerIndex(i)
		if !scope.metadata.IsOwned(index) {
			continue
		}

		newUsage := scope.states[i].usage
		oldUsage := t.GetUsage(index)

		if !t.IsTracked(index) {
			t.InsertSingle(index, newUsage)
			continue
		}

		if !oldUsage.IsCompatible(newUsage) || oldUsage != newUsage {
			transitions = append(transitions, PendingTextureTransition{
				Index: index,
				Usage: TextureStateTransition{From: oldUsage, To: newUsage},
			})
			t.states[index].usage = newUsage
		}
	}

	return transitions
}

// TextureUsageScope tracks texture usage within a command buffer or
// pass.
type TextureUsageScope struct {
	states   []TextureState
	metadata ResourceMetadata
}

// NewTextureUsageScope creates a new usage scope.
func NewTextureUsageScope() *TextureUsageScope {
	return &TextureUsageScope{
		states:   make([]TextureState, 0, 32),
		metadata: NewResourceMetadata(),
	}
}

// SetUsage sets the usage for a texture in this scope. Returns an error
// if the texture already has an incompatible usage recorded in this
// scope — the render-pass/command-buffer-local conflict check.
func (s *TextureUsageScope) SetUsage(index TrackerIndex, usage TextureUses) error {
	s.ensureSize(int(index) + 1)

	if s.metadata.IsOwned(index) {
		existing := s.states[index].usage
		if !existing.IsCompatible(usage) {
			return &TextureUsageConflictError{Index: index, Existing: existing, New: usage}
		}
		s.states[index].usage = existing | usage
	} else {
		s.states[index] = TextureState{usage: usage}
		s.metadata.SetOwned(index, true)
	}

	return nil
}

// GetUsage returns the current usage in this scope.
func (s *TextureUsageScope) GetUsage(index TrackerIndex) TextureUses {
	if int(index) < len(s.states) && s.metadata.IsOwned(index) {
		return s.states[index].usage
	}
	return TextureUsesNone
}

// IsUsed returns true if the texture is used in this scope.
func (s *TextureUsageScope) IsUsed(index TrackerIndex) bool {
	return int(index) < len(s.states) && s.metadata.IsOwned(index)
}

// Clear resets the scope for reuse.
func (s *TextureUsageScope) Clear() {
	s.states = s.states[:0]
	s.metadata.Clear()
}

func (s *TextureUsageScope) ensureSize(size int) {
	for len(s.states) < size {
		s.states = append(s.states, TextureState{})
	}
}

// PendingTextureTransition represents a texture state transition that
// needs a barrier.
type PendingTextureTransition struct {
	Index TrackerIndex
	Usage TextureStateTransition
}

// TextureStateTransition represents a from->to state change.
type TextureStateTransition struct {
	From TextureUses
	To   TextureUses
}

// NeedsBarrier returns true if this transition requires a barrier.
func (t TextureStateTransition) NeedsBarrier() bool {
	if t.From == t.To {
		return false
	}
	if t.From.IsReadOnly() && t.To.IsReadOnly() {
		return false
	}
	return true
}

// IntoHAL converts a pending transition to a HAL texture barrier
// covering the whole resource (all aspects, all mips, all layers).
func (p PendingTextureTransition) IntoHAL(texture hal.Texture) hal.TextureBarrier {
	return hal.TextureBarrier{
		Texture: texture,
		Range: hal.TextureRange{
			Aspect:          gputypes.TextureAspectAll,
			BaseMipLevel:    0,
			MipLevelCount:   0,
			BaseArrayLayer:  0,
			ArrayLayerCount: 0,
		},
		Usage: hal.TextureUsageTransition{
			OldUsage: p.Usage.From.ToTextureUsage(),
			NewUsage: p.Usage.To.ToTextureUsage(),
		},
	}
}

// TextureUsageConflictError is returned when incompatible texture
// usages are detected within one usage scope.
type TextureUsageConflictError struct {
	Index    TrackerIndex
	Existing TextureUses
	New      TextureUses
}

// Error implements the error interface.
func (e *TextureUsageConflictError) Error() string {
	return "texture usage conflict: incompatible usages in same scope"
}
