// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the GPU device abstraction the engine core runs
// against, and the device context that records one frame at a time.
//
// # Core Interfaces
//
//   - Device: texture creation, command recording, submission, removal state
//   - Recorder: single-use command recording for one submission
//   - Texture, TextureView: opaque GPU resources
//   - DeviceHandle: device access provided by a host application (gogpu)
//
// # DeviceContext
//
// DeviceContext pairs a device with its single command-recording context.
// The frame driver resets it at the top of every tick, binds the surface's
// back buffer, clears, lets systems record draws, and flushes at the end:
//
//	dc.Reset()
//	dc.SetRenderTargets(color, depth)
//	dc.SetViewport(render.FullViewport(w, h))
//	dc.Clear(gputypes.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
//	// ... systems record into dc.Recorder() ...
//	dc.Flush(true)
//
// # Device Implementations
//
// Devices are created through the backend registry:
//
//   - backend/wgpu: real GPU via the gogpu/wgpu HAL
//   - backend's noop device: headless command recording for tests and CI
//
// A device can also be adopted from a host application that shares its
// GPU through a DeviceHandle; see backend/wgpu.FromProvider.
//
// # Thread Safety
//
// Resource creation on a Device is safe for concurrent use. The
// DeviceContext is not: the frame driver serializes all access to it.
package render
