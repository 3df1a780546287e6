// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

// holographic is the surface for stereo holographic cameras.
//
// The back buffer format is fixed RGBA8; stereo rendering uses a texture
// array with one layer per eye. Stereo is granted only when requested by
// the target and supported by the device, and never changes afterwards.
// Buffer management is shared with the swap-chain surface.
type holographic struct {
	swapChain
}

var _ StereoSurface = (*holographic)(nil)

// newHolographic creates a holographic surface and allocates its buffers.
func newHolographic(dev render.Device, target Target, cfg config) (*holographic, error) {
	stereo := target.StereoRequested && dev.Capabilities().StereoCapable()
	layers := uint32(1)
	if stereo {
		layers = 2
	}

	h := &holographic{swapChain: swapChain{
		dev:        dev,
		presenter:  cfg.presenter,
		clearColor: cfg.clearColor,
		params: Parameters{
			Width:              clampDim(target.Width),
			Height:             clampDim(target.Height),
			BackBufferFormat:   gputypes.TextureFormatRGBA8Unorm,
			DepthStencilFormat: gputypes.TextureFormatDepth24PlusStencil8,
			Stereo:             stereo,
			Kind:               KindHolographic,
		},
		layers: layers,
	}}
	if err := h.allocate(); err != nil {
		return nil, err
	}
	logger().Debug("surface: created",
		"kind", h.params.Kind.String(),
		"width", h.params.Width,
		"height", h.params.Height,
		"stereo", stereo)
	return h, nil
}

// EyeProjections returns the left and right eye projection matrices for
// the given camera parameters. The view offset shifts each eye by half
// the interpupillary distance; the result is independent of whether
// stereo was granted, so mono fallbacks can draw with eye 0.
func (h *holographic) EyeProjections(fovY, aspect, near, far, ipd float32) [2]mgl32.Mat4 {
	proj := mgl32.Perspective(fovY, aspect, near, far)
	half := ipd / 2

	// The left eye sits at -ipd/2, so its view transform shifts the
	// world by +ipd/2. Mirrored for the right eye.
	left := proj.Mul4(mgl32.Translate3D(half, 0, 0))
	right := proj.Mul4(mgl32.Translate3D(-half, 0, 0))
	return [2]mgl32.Mat4{left, right}
}
