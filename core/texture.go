package core

import "github.com/gogpu/wgpu/hal"

// CreateTexture creates a texture on the device, allocating a tracker
// index for usage tracking.
func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (*Texture, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	raw, err := halDevice.CreateTexture(desc)
	if err != nil {
		return nil, err
	}

	index := d.trackers.Textures.Alloc()
	return NewTexture(d, raw, desc, index), nil
}

// CreateTextureView creates a view into an existing texture.
func (d *Device) CreateTextureView(texture *Texture, desc *hal.TextureViewDescriptor) (*TextureView, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if texture == nil {
		return nil, NewValidationError("TextureView", "texture", "CreateTextureView called with a nil texture")
	}

	guard := d.snatchLock.Read()
	defer guard.Release()
	halDevice := d.HALDevice(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}
	halTexture := texture.Raw(guard)
	if halTexture == nil {
		return nil, ErrResourceDestroyed
	}

	raw, err := halDevice.CreateTextureView(halTexture, desc)
	if err != nil {
		return nil, err
	}

	return NewTextureView(d, texture, raw, desc), nil
}
