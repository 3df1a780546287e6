// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

// Surface is the presentation target the frame loop draws into.
//
// A surface owns the back buffer and depth-stencil textures and hands
// them to the device context at the start of each frame. Implementations
// cover composition and core-window swap chains and stereo holographic
// cameras; New selects the variant from the target kind.
//
// The frame protocol is:
//
//	BeginDraw(dc)  // apply pending size, bind targets, clear
//	... systems record into dc ...
//	dc.Flush(true)
//	Present()
//
// Surfaces are safe for concurrent use: RequestSize may be called from a
// windowing event handler while the frame loop is inside BeginDraw.
type Surface interface {
	// Parameters returns the current surface parameters.
	Parameters() Parameters

	// BeginDraw prepares dc for a new frame: it applies any size change
	// requested since the last frame, binds the back buffer and
	// depth-stencil, sets the viewport and scissor to the surface
	// viewport, and clears the targets.
	BeginDraw(dc *render.DeviceContext) error

	// Present hands the finished frame to the presenter. A lost device
	// surfaces as *DeviceRemovedError.
	Present() error

	// Resize reallocates the back buffer and depth-stencil at the new
	// dimensions. When the dimensions equal the current ones the call is
	// a no-op and the buffers keep their identity.
	Resize(width, height uint32) error

	// ResizeViewport changes the viewport and scissor handed to
	// BeginDraw without touching the buffers.
	ResizeViewport(width, height uint32)

	// RequestSize records a size to apply on the next BeginDraw.
	// Repeated calls between frames coalesce; only the last size wins.
	RequestSize(width, height uint32)

	// BackBuffer returns the current color target view.
	BackBuffer() render.TextureView

	// DepthStencil returns the current depth-stencil view.
	DepthStencil() render.TextureView

	// Dispose releases the surface buffers. Dispose is idempotent.
	// The device is owned by the caller and is left alone.
	Dispose()
}

// StereoSurface is an optional interface for surfaces that render one
// layer per eye.
type StereoSurface interface {
	Surface

	// EyeProjections returns the left and right eye projection matrices
	// for the given camera parameters. ipd is the interpupillary
	// distance in world units.
	EyeProjections(fovY, aspect, near, far, ipd float32) [2]mgl32.Mat4
}

// Presenter hands finished frames to the platform.
//
// The engine core never talks to a window system; a presenter supplied at
// surface creation bridges the gap. Headless runs use the default
// presenter, which discards frames.
type Presenter interface {
	// Present delivers the frame described by p.
	Present(p Parameters) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(p Parameters) error

// Present implements Presenter.
func (f PresenterFunc) Present(p Parameters) error {
	return f(p)
}

// nopPresenter discards frames. It is the default for headless use.
type nopPresenter struct{}

func (nopPresenter) Present(Parameters) error { return nil }

// DefaultClearColor is the color BeginDraw clears with unless overridden
// via WithClearColor.
var DefaultClearColor = gputypes.Color{R: 0.392, G: 0.584, B: 0.929, A: 1.0}

// config collects surface creation options.
type config struct {
	presenter  Presenter
	clearColor gputypes.Color
}

// Option configures surface creation.
type Option func(*config)

// WithPresenter sets the platform presenter for the surface.
// Without it the surface runs headless and Present discards frames.
func WithPresenter(p Presenter) Option {
	return func(c *config) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithClearColor sets the color BeginDraw clears the back buffer with.
func WithClearColor(col gputypes.Color) Option {
	return func(c *config) {
		c.clearColor = col
	}
}

// New creates a surface for the target, allocating its buffers on dev.
//
// The variant is selected by target.Kind: composition and core-window
// targets get a swap-chain surface, holographic targets get a stereo
// surface. Unknown kinds fail with *UnsupportedKindError.
func New(dev render.Device, target Target, opts ...Option) (Surface, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	cfg := config{
		presenter:  nopPresenter{},
		clearColor: DefaultClearColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch target.Kind {
	case KindComposition, KindCoreWindow:
		return newSwapChain(dev, target, cfg)
	case KindHolographic:
		return newHolographic(dev, target, cfg)
	default:
		return nil, &UnsupportedKindError{Kind: target.Kind}
	}
}
