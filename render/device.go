// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from a host application.
//
// This interface is the integration point between the engine and GPU
// frameworks like gogpu. The host application (e.g., gogpu.App) implements
// DeviceHandle and passes it to the engine, allowing both to share one
// GPU device instead of creating a second one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing an
// engine-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem. Providers that also
// implement gpucontext.HalProvider expose the underlying HAL device and
// queue; backend/wgpu.FromProvider uses that path to adopt a shared device.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes parameters for creating a texture.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// ArrayLayers is the number of array layers.
	// Use 1 for regular 2D textures, 2 for stereo render targets.
	ArrayLayers uint32

	// MipLevelCount is the number of mipmap levels.
	// Use 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage
}

// DefaultTextureDescriptor returns a TextureDescriptor with sensible defaults.
// Only Width, Height, and Format need to be set.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		ArrayLayers:   1,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment,
	}
}

// Texture represents a GPU texture resource.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Destroy releases GPU resources associated with this texture.
	// Destroy is idempotent.
	Destroy()
}

// TextureView represents a view into a texture.
// Views are what render passes and shader bindings attach to.
type TextureView interface {
	// Texture returns the texture this view was created from.
	Texture() Texture

	// Destroy releases resources associated with this view.
	// Destroy is idempotent.
	Destroy()
}

// CommandList is a finished, submittable stream of recorded commands.
// Command lists are produced by a Recorder and consumed by Device.Submit.
type CommandList interface {
	// Label returns the debug label the recorder was created with.
	Label() string
}

// Recorder records GPU commands for a single submission.
//
// A recorder is single-use: after Finish or Discard it must not be touched
// again. Recorders are not safe for concurrent use; the device context
// serializes access.
type Recorder interface {
	// BeginPass starts a render pass targeting the given color view,
	// clearing it to clearColor. depth may be nil for passes without a
	// depth-stencil attachment.
	BeginPass(color, depth TextureView, clearColor gputypes.Color) error

	// SetViewport sets the viewport transform for the current pass.
	SetViewport(vp Viewport)

	// SetScissor sets the scissor rectangle for the current pass.
	SetScissor(sc ScissorRect)

	// EndPass ends the current render pass.
	EndPass()

	// Finish ends recording and returns the submittable command list.
	Finish() (CommandList, error)

	// Discard abandons the recording without submitting.
	Discard()
}

// Device is the GPU device abstraction the engine core runs against.
//
// Exactly one Device backs a running game. Implementations live in
// backend/wgpu (real GPU via the gogpu/wgpu HAL) and in backend itself
// (the headless noop device for tests and CI). Devices are safe for
// concurrent resource creation; command submission is serialized by the
// caller.
type Device interface {
	// CreateTexture creates a texture from the descriptor.
	CreateTexture(desc *TextureDescriptor) (Texture, error)

	// CreateView creates a view covering the whole texture.
	CreateView(tex Texture) (TextureView, error)

	// NewRecorder creates a command recorder with a debug label.
	NewRecorder(label string) (Recorder, error)

	// Submit sends a finished command list to the GPU queue.
	// When wait is true, Submit blocks until the GPU has drained the work.
	Submit(cmds CommandList, wait bool) error

	// WriteTexture uploads pixel data into a texture. The data layout is
	// tightly packed rows of bytesPerRow bytes.
	WriteTexture(tex Texture, data []byte, bytesPerRow uint32) error

	// Capabilities reports device capabilities used for feature decisions.
	Capabilities() DeviceCapabilities

	// Removed returns nil while the device is healthy. After a device
	// loss it returns the sticky removal error; every subsequent GPU
	// operation fails until the device is destroyed and recreated by the
	// caller. The engine never recreates devices on its own.
	Removed() error

	// Destroy releases the device and all resources created from it.
	// For devices adopted from an external provider, Destroy releases
	// only engine-owned resources and leaves the shared device alone.
	Destroy()
}

// DeviceCapabilities describes the capabilities of a GPU device.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize uint32

	// MaxArrayLayers is the maximum number of texture array layers.
	// Stereo surfaces require at least 2.
	MaxArrayLayers uint32

	// VendorName is the GPU vendor name.
	VendorName string

	// DeviceName is the GPU device name.
	DeviceName string
}

// StereoCapable reports whether the device can back a stereo surface.
func (c DeviceCapabilities) StereoCapable() bool {
	return c.MaxArrayLayers >= 2
}
