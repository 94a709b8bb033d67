package wgpu

import (
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/hal"
)

// Texture represents a GPU texture.
type Texture struct {
	core     *core.Texture
	device   *Device
	format   TextureFormat
	released bool
}

// Format returns the texture format.
func (t *Texture) Format() TextureFormat { return t.format }

// Release destroys the texture.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.core.Destroy()
}

// coreTexture returns the underlying core.Texture.
func (t *Texture) coreTexture() *core.Texture { return t.core }

// halTexture returns the underlying HAL texture, or nil if destroyed or
// not backed by HAL.
func (t *Texture) halTexture() hal.Texture {
	if t.core == nil || t.device == nil {
		return nil
	}
	guard := t.device.core.SnatchLock().Read()
	defer guard.Release()
	return t.core.Raw(guard)
}

// TextureView represents a view into a texture.
type TextureView struct {
	core     *core.TextureView
	device   *Device
	texture  *Texture
	released bool
}

// Release destroys the texture view.
func (v *TextureView) Release() {
	if v.released {
		return
	}
	v.released = true
	v.core.Destroy()
}

// coreTextureView returns the underlying core.TextureView.
func (v *TextureView) coreTextureView() *core.TextureView { return v.core }

// halTextureView returns the underlying HAL texture view, or nil if
// destroyed or not backed by HAL.
func (v *TextureView) halTextureView() hal.TextureView {
	if v.core == nil || v.device == nil {
		return nil
	}
	guard := v.device.core.SnatchLock().Read()
	defer guard.Release()
	return v.core.Raw(guard)
}
