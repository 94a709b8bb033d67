package core

// MaxBindGroups is the largest bind group index a pipeline layout may
// declare a slot for.
const MaxBindGroups = 4

// BindGroupEntry pairs a bind group with the dynamic offsets it was
// bound with, used to describe the "follow-up" rebinds ResetExpectations
// and ProvideEntry hand back to the command interpreter.
type BindGroupEntry struct {
	Slot    uint32
	Group   *BindGroup
	Offsets []uint32
}

// Binder tracks which bind groups are currently bound against which
// slots, and whether each bound group's layout matches what the active
// pipeline layout expects for that slot. A draw call is only valid once
// InvalidMask is zero.
//
// Slots form a "valid prefix": the backend only has slots 0..validPrefix
// actually bound under the current pipeline layout. A bind group slot
// beyond the prefix — because a pipeline switch broke compatibility
// there, or because the client hasn't supplied it yet — requires an
// explicit SetBindGroup before it (and the prefix) can extend again.
type Binder struct {
	groups          [MaxBindGroups]*BindGroup
	dynamicOffsets  [MaxBindGroups][]uint32
	expectedLayouts [MaxBindGroups]*BindGroupLayout
	expectedCount   int
	invalidMask     uint32
	validPrefix     int
	layout          *PipelineLayout
}

// ResetExpectations is called on SetPipeline: it records the bind group
// layouts the new pipeline layout expects at each slot and walks the
// previously-bound groups from slot 0, extending the valid prefix for as
// long as each slot's bound group still matches its new expected layout
// (spec §4.3's Match/Mismatch walk). Every slot in the surviving prefix
// must still be re-issued to the backend, since most APIs invalidate
// bound descriptor sets on a pipeline-layout change; the return value is
// that re-issue list. Slots beyond the break point are cleared — the
// client must call SetBindGroup again before they can be used.
func (b *Binder) ResetExpectations(layout *PipelineLayout) []BindGroupEntry {
	var newExpected [MaxBindGroups]*BindGroupLayout
	var layouts []*BindGroupLayout
	if layout != nil {
		layouts = layout.BindGroupLayouts()
	}
	for i, l := range layouts {
		if i >= MaxBindGroups {
			break
		}
		newExpected[i] = l
	}
	b.expectedLayouts = newExpected
	b.expectedCount = len(layouts)
	b.layout = layout

	var followUps []BindGroupEntry
	prefix := 0
	for prefix < MaxBindGroups {
		expected := newExpected[prefix]
		if expected == nil {
			break
		}
		bound := b.groups[prefix]
		if bound == nil || bound.Layout() != expected {
			break
		}
		followUps = append(followUps, BindGroupEntry{Slot: uint32(prefix), Group: bound, Offsets: b.dynamicOffsets[prefix]})
		prefix++
	}
	b.validPrefix = prefix
	for i := prefix; i < MaxBindGroups; i++ {
		b.groups[i] = nil
		b.dynamicOffsets[i] = nil
	}

	b.recompute()
	return followUps
}

// ProvideEntry records that group (with the given dynamic offsets) is
// now bound at slot. When this extends the valid prefix — slot ==
// validPrefix and the group satisfies the pipeline layout's expectation
// there — it also walks forward over any already-bound, already-matching
// slots that become reachable as a result, returning the pipeline layout
// and those slots as follow-ups: the command interpreter must re-issue a
// backend SetBindGroup for each, since their own binding call predates
// the prefix reaching them (spec §4.3 "follow_ups").
func (b *Binder) ProvideEntry(slot uint32, group *BindGroup, dynamicOffsets []uint32) (*PipelineLayout, []BindGroupEntry, error) {
	if slot >= MaxBindGroups {
		return nil, nil, newRenderPassError(RenderPassErrorMissingBindGroup, "bind group slot %d exceeds maximum of %d", slot, MaxBindGroups)
	}
	idx := int(slot)
	b.groups[idx] = group
	b.dynamicOffsets[idx] = dynamicOffsets

	if idx < b.validPrefix {
		if group != nil && b.expectedLayouts[idx] != nil && group.Layout() == b.expectedLayouts[idx] {
			b.recompute()
			return nil, nil, nil
		}
		b.validPrefix = idx
		for i := idx + 1; i < MaxBindGroups; i++ {
			b.groups[i] = nil
			b.dynamicOffsets[i] = nil
		}
		b.recompute()
		return nil, nil, nil
	}

	if idx != b.validPrefix {
		// A gap: this slot can't rejoin the bound prefix until the slots
		// below it are resupplied.
		b.recompute()
		return nil, nil, nil
	}

	expected := b.expectedLayouts[idx]
	if expected == nil || group == nil || group.Layout() != expected {
		b.recompute()
		return nil, nil, nil
	}

	var followUps []BindGroupEntry
	b.validPrefix = idx + 1
	for b.validPrefix < MaxBindGroups {
		nextExpected := b.expectedLayouts[b.validPrefix]
		if nextExpected == nil {
			break
		}
		nextBound := b.groups[b.validPrefix]
		if nextBound == nil || nextBound.Layout() != nextExpected {
			break
		}
		followUps = append(followUps, BindGroupEntry{Slot: uint32(b.validPrefix), Group: nextBound, Offsets: b.dynamicOffsets[b.validPrefix]})
		b.validPrefix++
	}

	b.recompute()
	return b.layout, followUps, nil
}

func (b *Binder) recompute() {
	var mask uint32
	for i := 0; i < MaxBindGroups; i++ {
		expected := b.expectedLayouts[i]
		if expected == nil {
			continue
		}
		bound := b.groups[i]
		if bound == nil || bound.Layout() != expected {
			mask |= 1 << uint(i)
		}
	}
	b.invalidMask = mask
}

// InvalidMask returns a bitmask with bit i set when slot i is required
// by the pipeline layout but unsatisfied (unbound, or bound to a group
// whose layout doesn't match).
func (b *Binder) InvalidMask() uint32 { return b.invalidMask }

// IsReady reports whether every required slot is satisfied.
func (b *Binder) IsReady() bool { return b.invalidMask == 0 }

// BoundGroups returns the groups bound at each expected slot, used by
// the render-pass tracker to fold bind group resource usage into the
// pass-wide usage scope.
func (b *Binder) BoundGroups() []*BindGroup {
	groups := make([]*BindGroup, 0, b.expectedCount)
	for i := 0; i < b.expectedCount && i < MaxBindGroups; i++ {
		if b.groups[i] != nil {
			groups = append(groups, b.groups[i])
		}
	}
	return groups
}
