// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Viewport defines how normalized device coordinates are transformed to
// framebuffer coordinates. The depth range is clamped to [0, 1].
type Viewport struct {
	// X, Y is the viewport origin in pixels.
	X, Y float32

	// W, H is the viewport size in pixels.
	W, H float32

	// MinDepth, MaxDepth is the depth range [0, 1].
	MinDepth, MaxDepth float32
}

// FullViewport returns a viewport covering a w by h framebuffer with the
// standard [0, 1] depth range.
func FullViewport(w, h uint32) Viewport {
	return Viewport{W: float32(w), H: float32(h), MinDepth: 0, MaxDepth: 1}
}

// ScissorRect is a clipping rectangle in framebuffer pixels.
// Fragments outside the rectangle are discarded.
type ScissorRect struct {
	X, Y uint32
	W, H uint32
}

// FullScissor returns a scissor rectangle covering a w by h framebuffer.
func FullScissor(w, h uint32) ScissorRect {
	return ScissorRect{W: w, H: h}
}
