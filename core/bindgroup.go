package core

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CreateBindGroupLayout creates a bind group layout describing the
// resource bindings a shader stage expects at one slot.
func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (*BindGroupLayout, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	raw, err := halDevice.CreateBindGroupLayout(desc)
	if err != nil {
		return nil, err
	}

	index := d.trackers.BindGroupLayouts.Alloc()
	label := ""
	var entries []gputypes.BindGroupLayoutEntry
	if desc != nil {
		label = desc.Label
		entries = desc.Entries
	}
	return &BindGroupLayout{
		resourceBase: resourceBase{device: d, label: label, trackerIndex: index},
		entries:      entries,
		raw:          NewSnatchable(raw),
	}, nil
}

// CreatePipelineLayout creates a pipeline layout from a set of bind
// group layouts, in slot order.
func (d *Device) CreatePipelineLayout(label string, bindGroupLayouts []*BindGroupLayout) (*PipelineLayout, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	halLayouts := make([]hal.BindGroupLayout, 0, len(bindGroupLayouts))
	for _, l := range bindGroupLayouts {
		if l == nil {
			continue
		}
		if halLayout := l.Raw(guard); halLayout != nil {
			halLayouts = append(halLayouts, halLayout)
		}
	}

	raw, err := halDevice.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label,
		BindGroupLayouts: halLayouts,
	})
	if err != nil {
		return nil, err
	}

	index := d.trackers.BindGroups.Alloc()
	return &PipelineLayout{
		resourceBase:     resourceBase{device: d, label: label, trackerIndex: index},
		bindGroupLayouts: bindGroupLayouts,
		raw:              NewSnatchable(raw),
	}, nil
}

// CreateBindGroup binds a set of concrete resources to a bind group
// layout. usedBuffers/usedTextures record which resources this group
// references, so the render-pass tracker can fold them into the
// pass-wide usage scope when the group is bound.
func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor, layout *BindGroupLayout, usedBuffers []*Buffer, usedTextures []*Texture) (*BindGroup, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	raw, err := halDevice.CreateBindGroup(desc)
	if err != nil {
		return nil, err
	}

	index := d.trackers.BindGroups.Alloc()
	label := ""
	if desc != nil {
		label = desc.Label
	}
	return &BindGroup{
		resourceBase: resourceBase{device: d, label: label, trackerIndex: index},
		layout:       layout,
		used:         usedResources{buffers: usedBuffers, textures: usedTextures},
		raw:          NewSnatchable(raw),
	}, nil
}
