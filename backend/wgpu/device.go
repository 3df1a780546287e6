package wgpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/render"
)

// submitTimeout bounds how long a waiting Submit blocks on the GPU.
const submitTimeout = 5 * time.Second

// Device implements render.Device over a HAL device and queue.
//
// A Device either owns its HAL objects (created via Backend.CreateDevice)
// or borrows them from a host application (created via FromProvider).
// Borrowed devices never destroy the underlying HAL device.
type Device struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	owned bool
	name  string

	removed   error
	destroyed bool
}

// Compile-time interface check.
var _ render.Device = (*Device)(nil)

// texture implements render.Texture over a HAL texture.
type texture struct {
	dev       *Device
	hal       hal.Texture
	desc      render.TextureDescriptor
	mu        sync.Mutex
	destroyed bool
}

func (t *texture) Width() uint32                  { return t.desc.Width }
func (t *texture) Height() uint32                 { return t.desc.Height }
func (t *texture) Format() gputypes.TextureFormat { return t.desc.Format }

func (t *texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.device.DestroyTexture(t.hal)
}

// textureView implements render.TextureView over a HAL texture view.
type textureView struct {
	dev       *Device
	tex       *texture
	hal       hal.TextureView
	mu        sync.Mutex
	destroyed bool
}

func (v *textureView) Texture() render.Texture { return v.tex }

func (v *textureView) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.dev.device.DestroyTextureView(v.hal)
}

// commandList implements render.CommandList over a HAL command buffer.
type commandList struct {
	label string
	buf   hal.CommandBuffer
}

func (c *commandList) Label() string { return c.label }

// recorder implements render.Recorder over a HAL command encoder.
type recorder struct {
	dev     *Device
	label   string
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
}

// BeginPass starts a render pass clearing the color attachment. The depth
// attachment, when present, is cleared and discarded at pass end; the
// engine records one pass per frame and never reads depth back.
func (r *recorder) BeginPass(color, depth render.TextureView, clearColor gputypes.Color) error {
	cv, ok := color.(*textureView)
	if !ok {
		return fmt.Errorf("wgpu: foreign color view %T", color)
	}
	desc := &hal.RenderPassDescriptor{
		Label: r.label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       cv.hal,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clearColor,
		}},
	}
	if depth != nil {
		dv, ok := depth.(*textureView)
		if !ok {
			return fmt.Errorf("wgpu: foreign depth view %T", depth)
		}
		desc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              dv.hal,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		}
	}
	r.pass = r.encoder.BeginRenderPass(desc)
	return nil
}

func (r *recorder) SetViewport(vp render.Viewport) {
	if r.pass == nil {
		return
	}
	r.pass.SetViewport(vp.X, vp.Y, vp.W, vp.H, vp.MinDepth, vp.MaxDepth)
}

func (r *recorder) SetScissor(sc render.ScissorRect) {
	if r.pass == nil {
		return
	}
	r.pass.SetScissorRect(sc.X, sc.Y, sc.W, sc.H)
}

func (r *recorder) EndPass() {
	if r.pass == nil {
		return
	}
	r.pass.End()
	r.pass = nil
}

func (r *recorder) Finish() (render.CommandList, error) {
	if r.pass != nil {
		r.pass.End()
		r.pass = nil
	}
	buf, err := r.encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: end encoding: %w", err)
	}
	return &commandList{label: r.label, buf: buf}, nil
}

func (r *recorder) Discard() {
	if r.pass != nil {
		r.pass.End()
		r.pass = nil
	}
	r.encoder.DiscardEncoding()
}

// CreateTexture creates a texture from the descriptor.
func (d *Device) CreateTexture(desc *render.TextureDescriptor) (render.Texture, error) {
	if err := d.Removed(); err != nil {
		return nil, err
	}
	layers := desc.ArrayLayers
	if layers == 0 {
		layers = 1
	}
	mips := desc.MipLevelCount
	if mips == 0 {
		mips = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}
	halTex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: layers},
		MipLevelCount: mips,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture %q: %w", desc.Label, err)
	}
	return &texture{dev: d, hal: halTex, desc: *desc}, nil
}

// CreateView creates a view covering the whole texture.
func (d *Device) CreateView(tex render.Texture) (render.TextureView, error) {
	t, ok := tex.(*texture)
	if !ok {
		return nil, fmt.Errorf("wgpu: foreign texture %T", tex)
	}
	halView, err := d.device.CreateTextureView(t.hal, &hal.TextureViewDescriptor{
		Label: t.desc.Label + "_view",
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture view: %w", err)
	}
	return &textureView{dev: d, tex: t, hal: halView}, nil
}

// NewRecorder creates a command recorder with a debug label.
func (d *Device) NewRecorder(label string) (render.Recorder, error) {
	if err := d.Removed(); err != nil {
		return nil, err
	}
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}
	return &recorder{dev: d, label: label, encoder: encoder}, nil
}

// Submit sends a finished command list to the queue. When wait is true it
// blocks on a fence until the GPU drains the work. Submission failures and
// fence timeouts mark the device removed.
func (d *Device) Submit(cmds render.CommandList, wait bool) error {
	cl, ok := cmds.(*commandList)
	if !ok {
		return fmt.Errorf("wgpu: foreign command list %T", cmds)
	}
	if err := d.Removed(); err != nil {
		return err
	}
	defer d.device.FreeCommandBuffer(cl.buf)

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cl.buf}, fence, 1); err != nil {
		d.markRemoved(err)
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	if wait {
		fenceOK, err := d.device.Wait(fence, 1, submitTimeout)
		if err != nil || !fenceOK {
			werr := fmt.Errorf("wgpu: wait for GPU: ok=%v err=%w", fenceOK, err)
			d.markRemoved(werr)
			return werr
		}
	}
	return nil
}

// WriteTexture uploads tightly packed pixel rows into a texture.
func (d *Device) WriteTexture(tex render.Texture, data []byte, bytesPerRow uint32) error {
	t, ok := tex.(*texture)
	if !ok {
		return fmt.Errorf("wgpu: foreign texture %T", tex)
	}
	if err := d.Removed(); err != nil {
		return err
	}
	dst := &hal.ImageCopyTexture{
		Texture:  t.hal,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  bytesPerRow,
		RowsPerImage: t.desc.Height,
	}
	size := &hal.Extent3D{
		Width:              t.desc.Width,
		Height:             t.desc.Height,
		DepthOrArrayLayers: 1,
	}
	d.queue.WriteTexture(dst, data, layout, size)
	return nil
}

// Capabilities reports device capabilities.
// Limits reflect the WebGPU baseline the device was opened with.
func (d *Device) Capabilities() render.DeviceCapabilities {
	return render.DeviceCapabilities{
		MaxTextureSize: 8192,
		MaxArrayLayers: 256,
		VendorName:     "wgpu",
		DeviceName:     d.name,
	}
}

// Removed returns the sticky removal error, if any.
func (d *Device) Removed() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.removed
}

// markRemoved records the first removal cause. Later failures keep the
// original error.
func (d *Device) markRemoved(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed == nil {
		d.removed = err
		backend.Logger().Warn("wgpu: device removed", "error", err)
	}
}

// Destroy releases the device. Borrowed devices are left alone.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.destroyed = true
	if d.owned && d.device != nil {
		d.device.Destroy()
	}
	d.device = nil
	d.queue = nil
}
