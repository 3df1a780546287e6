// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides presentation surfaces for the frame loop.
//
// A Surface owns the back buffer and depth-stencil textures for one
// presentation target and binds them to the device context at the start
// of every frame. The engine core draws through the surface without
// knowing what is on the other side: a composition swap chain, an
// application window, or a stereo holographic camera.
//
// # Surface Kinds
//
//   - KindComposition: swap chain hosted in a composition panel
//   - KindCoreWindow: swap chain bound to an application window
//   - KindHolographic: stereo texture-array target for holographic cameras
//
// The set of kinds is closed; New fails with *UnsupportedKindError for
// anything else.
//
// # Frame Protocol
//
// Each frame follows the same sequence:
//
//	if err := s.BeginDraw(dc); err != nil { ... }
//	// systems record draw commands into dc
//	if err := dc.Flush(true); err != nil { ... }
//	if err := s.Present(); err != nil { ... }
//
// BeginDraw applies any size requested since the last frame, binds the
// surface buffers, sets the viewport and scissor, and clears. Present
// hands the finished frame to the Presenter supplied at creation.
//
// # Resizing
//
// Window events deliver sizes on their own goroutine; RequestSize records
// them thread-safely and the next BeginDraw applies the latest one.
// Buffers are reallocated only when the requested size actually differs,
// so a stream of identical sizes never disturbs buffer identity. Replaced
// buffers are destroyed one frame later, after the GPU has drained the
// last frame that referenced them.
//
// # Device Loss
//
// When the GPU device is removed, BeginDraw and Present fail with
// *DeviceRemovedError wrapping the device's sticky error. The surface
// does not recover by itself; the owner tears down and recreates both
// device and surface.
//
// # Stereo
//
// Holographic targets may request a stereo back buffer. Stereo is granted
// when the device supports texture arrays and is then fixed for the
// surface lifetime, as is the RGBA8 back buffer format. StereoSurface
// exposes per-eye projection matrices for rendering.
package surface
