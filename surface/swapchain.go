// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

// bufferSet holds the back buffer and depth-stencil textures with their
// views. It is shared by the swap-chain and holographic surfaces.
type bufferSet struct {
	colorTex  render.Texture
	colorView render.TextureView
	depthTex  render.Texture
	depthView render.TextureView
	width     uint32
	height    uint32
}

// allocate creates the color and depth-stencil textures at the given
// dimensions. On partial failure everything created so far is destroyed.
func (bs *bufferSet) allocate(dev render.Device, w, h, layers uint32, colorFormat, depthFormat gputypes.TextureFormat, labelPrefix string) error {
	colorDesc := render.TextureDescriptor{
		Label:         labelPrefix + "_color",
		Width:         w,
		Height:        h,
		ArrayLayers:   layers,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        colorFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
	colorTex, err := dev.CreateTexture(&colorDesc)
	if err != nil {
		return fmt.Errorf("surface: create back buffer: %w", err)
	}
	bs.colorTex = colorTex

	colorView, err := dev.CreateView(colorTex)
	if err != nil {
		bs.destroy()
		return fmt.Errorf("surface: create back buffer view: %w", err)
	}
	bs.colorView = colorView

	depthDesc := render.TextureDescriptor{
		Label:         labelPrefix + "_depth_stencil",
		Width:         w,
		Height:        h,
		ArrayLayers:   layers,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	}
	depthTex, err := dev.CreateTexture(&depthDesc)
	if err != nil {
		bs.destroy()
		return fmt.Errorf("surface: create depth-stencil: %w", err)
	}
	bs.depthTex = depthTex

	depthView, err := dev.CreateView(depthTex)
	if err != nil {
		bs.destroy()
		return fmt.Errorf("surface: create depth-stencil view: %w", err)
	}
	bs.depthView = depthView

	bs.width = w
	bs.height = h
	return nil
}

// destroy releases all buffer resources and resets dimensions.
func (bs *bufferSet) destroy() {
	if bs.depthView != nil {
		bs.depthView.Destroy()
		bs.depthView = nil
	}
	if bs.depthTex != nil {
		bs.depthTex.Destroy()
		bs.depthTex = nil
	}
	if bs.colorView != nil {
		bs.colorView.Destroy()
		bs.colorView = nil
	}
	if bs.colorTex != nil {
		bs.colorTex.Destroy()
		bs.colorTex = nil
	}
	bs.width = 0
	bs.height = 0
}

// swapChain is the surface for composition and core-window targets.
//
// The back buffer is BGRA8 with a Depth24PlusStencil8 depth-stencil.
// Resizes triggered between frames are coalesced through RequestSize and
// applied at the next BeginDraw; buffers replaced by a resize are retired
// and destroyed one frame later, when the GPU has drained the last frame
// that referenced them.
type swapChain struct {
	mu sync.Mutex

	dev        render.Device
	presenter  Presenter
	clearColor gputypes.Color
	params     Parameters
	layers     uint32

	buffers bufferSet
	retired bufferSet

	viewportW uint32
	viewportH uint32

	pendingW uint32
	pendingH uint32

	disposed bool
}

var _ Surface = (*swapChain)(nil)

// newSwapChain creates a single-layer surface and allocates its buffers.
func newSwapChain(dev render.Device, target Target, cfg config) (*swapChain, error) {
	s := &swapChain{
		dev:        dev,
		presenter:  cfg.presenter,
		clearColor: cfg.clearColor,
		params: Parameters{
			Width:              clampDim(target.Width),
			Height:             clampDim(target.Height),
			BackBufferFormat:   gputypes.TextureFormatBGRA8Unorm,
			DepthStencilFormat: gputypes.TextureFormatDepth24PlusStencil8,
			Stereo:             false,
			Kind:               target.Kind,
		},
		layers: 1,
	}
	if err := s.allocate(); err != nil {
		return nil, err
	}
	logger().Debug("surface: created",
		"kind", s.params.Kind.String(),
		"width", s.params.Width,
		"height", s.params.Height)
	return s, nil
}

// clampDim keeps dimensions at a drawable minimum, matching how minimized
// windows report zero sizes.
func clampDim(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

// allocate creates buffers for the current parameters and sets the
// viewport to cover them. Callers hold s.mu or own s exclusively.
func (s *swapChain) allocate() error {
	err := s.buffers.allocate(s.dev,
		s.params.Width, s.params.Height, s.layers,
		s.params.BackBufferFormat, s.params.DepthStencilFormat,
		s.params.Kind.String())
	if err != nil {
		return err
	}
	s.viewportW = s.params.Width
	s.viewportH = s.params.Height
	return nil
}

// Parameters returns the current surface parameters.
func (s *swapChain) Parameters() Parameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Resize reallocates the buffers at the new dimensions. Equal dimensions
// are a no-op; the buffers keep their identity.
func (s *swapChain) Resize(width, height uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resizeLocked(clampDim(width), clampDim(height))
}

func (s *swapChain) resizeLocked(w, h uint32) error {
	if s.disposed {
		return ErrDisposed
	}
	if s.params.Width == w && s.params.Height == h && s.buffers.colorTex != nil {
		return nil
	}
	if err := s.dev.Removed(); err != nil {
		return &DeviceRemovedError{Cause: err}
	}

	var next bufferSet
	err := next.allocate(s.dev, w, h, s.layers,
		s.params.BackBufferFormat, s.params.DepthStencilFormat,
		s.params.Kind.String())
	if err != nil {
		return err
	}

	// Retire the replaced buffers; in-flight frames may still reference
	// them. A set already waiting from an earlier resize is destroyed now.
	s.retired.destroy()
	s.retired = s.buffers
	s.buffers = next
	s.params.Width = w
	s.params.Height = h

	logger().Debug("surface: resized",
		"kind", s.params.Kind.String(),
		"width", w,
		"height", h)
	return nil
}

// ResizeViewport changes the viewport without touching the buffers.
func (s *swapChain) ResizeViewport(width, height uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewportW = clampDim(width)
	s.viewportH = clampDim(height)
}

// RequestSize records a size to apply on the next BeginDraw.
func (s *swapChain) RequestSize(width, height uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingW = clampDim(width)
	s.pendingH = clampDim(height)
}

// BeginDraw prepares dc for a new frame.
func (s *swapChain) BeginDraw(dc *render.DeviceContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrDisposed
	}
	if dc == nil {
		return ErrNilContext
	}
	if err := s.dev.Removed(); err != nil {
		return &DeviceRemovedError{Cause: err}
	}

	// Buffers retired by an earlier resize are safe to destroy now; the
	// last frame that referenced them was flushed before Present.
	s.retired.destroy()

	if s.pendingW != 0 && s.pendingH != 0 {
		w, h := s.pendingW, s.pendingH
		s.pendingW, s.pendingH = 0, 0
		if w != s.params.Width || h != s.params.Height {
			if err := s.resizeLocked(w, h); err != nil {
				return err
			}
			s.viewportW = w
			s.viewportH = h
		}
	}

	dc.Reset()
	if err := dc.SetRenderTargets(s.buffers.colorView, s.buffers.depthView); err != nil {
		return err
	}
	dc.SetViewport(render.FullViewport(s.viewportW, s.viewportH))
	dc.SetScissor(render.FullScissor(s.viewportW, s.viewportH))

	if err := dc.Clear(s.clearColor); err != nil {
		if rerr := s.dev.Removed(); rerr != nil {
			return &DeviceRemovedError{Cause: rerr}
		}
		return err
	}
	return nil
}

// Present hands the frame to the presenter.
func (s *swapChain) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrDisposed
	}
	if err := s.dev.Removed(); err != nil {
		return &DeviceRemovedError{Cause: err}
	}
	if err := s.presenter.Present(s.params); err != nil {
		// A present failure usually means the device went away under us;
		// report the device error when the device agrees.
		if rerr := s.dev.Removed(); rerr != nil {
			return &DeviceRemovedError{Cause: rerr}
		}
		return fmt.Errorf("surface: present: %w", err)
	}
	return nil
}

// BackBuffer returns the current color target view.
func (s *swapChain) BackBuffer() render.TextureView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers.colorView
}

// DepthStencil returns the current depth-stencil view.
func (s *swapChain) DepthStencil() render.TextureView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers.depthView
}

// Dispose releases the surface buffers. The device is left alone.
func (s *swapChain) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	s.retired.destroy()
	s.buffers.destroy()

	logger().Debug("surface: disposed", "kind", s.params.Kind.String())
}
