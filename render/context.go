// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Errors returned by DeviceContext operations.
var (
	// ErrNilRenderTarget is returned when a nil color target is bound.
	ErrNilRenderTarget = errors.New("render: nil render target")

	// ErrNoRenderTarget is returned when a pass is started before any
	// render target has been bound.
	ErrNoRenderTarget = errors.New("render: no render target bound")

	// ErrPassOpen is returned when targets are changed while a pass is
	// still recording.
	ErrPassOpen = errors.New("render: render pass still open")
)

// DeviceContext pairs a device with its single command-recording context.
//
// Exactly one DeviceContext exists per device in the engine: one frame is
// recorded at a time, and the frame driver serializes access. The context
// is therefore not safe for concurrent use.
//
// A frame follows the shape
//
//	dc.Reset()
//	dc.SetRenderTargets(color, depth)
//	dc.SetViewport(vp)
//	dc.SetScissor(sc)
//	dc.Clear(col)
//	... draws recorded by systems ...
//	dc.Flush(true)
type DeviceContext struct {
	device Device

	recorder Recorder
	passOpen bool

	color TextureView
	depth TextureView

	viewport Viewport
	scissor  ScissorRect
}

// NewDeviceContext creates the command-recording context for a device.
func NewDeviceContext(device Device) *DeviceContext {
	return &DeviceContext{device: device}
}

// Device returns the device this context records against.
func (dc *DeviceContext) Device() Device { return dc.device }

// Viewport returns the currently configured viewport.
func (dc *DeviceContext) Viewport() Viewport { return dc.viewport }

// Scissor returns the currently configured scissor rectangle.
func (dc *DeviceContext) Scissor() ScissorRect { return dc.scissor }

// Targets returns the currently bound color and depth-stencil views.
func (dc *DeviceContext) Targets() (color, depth TextureView) {
	return dc.color, dc.depth
}

// Reset discards any open recording and returns the context to a known
// empty state. Called at the top of every frame.
func (dc *DeviceContext) Reset() {
	if dc.recorder != nil {
		if dc.passOpen {
			dc.recorder.EndPass()
		}
		dc.recorder.Discard()
		dc.recorder = nil
	}
	dc.passOpen = false
	dc.color = nil
	dc.depth = nil
	dc.viewport = Viewport{}
	dc.scissor = ScissorRect{}
}

// SetRenderTargets binds the color and depth-stencil views subsequent
// passes render into. The color view must not be nil; depth may be nil.
// Targets cannot change while a pass is recording.
func (dc *DeviceContext) SetRenderTargets(color, depth TextureView) error {
	if color == nil {
		return ErrNilRenderTarget
	}
	if dc.passOpen {
		return ErrPassOpen
	}
	dc.color = color
	dc.depth = depth
	return nil
}

// SetViewport sets the viewport applied when the next pass begins, or
// immediately if a pass is recording.
func (dc *DeviceContext) SetViewport(vp Viewport) {
	dc.viewport = vp
	if dc.passOpen {
		dc.recorder.SetViewport(vp)
	}
}

// SetScissor sets the scissor rectangle applied when the next pass
// begins, or immediately if a pass is recording.
func (dc *DeviceContext) SetScissor(sc ScissorRect) {
	dc.scissor = sc
	if dc.passOpen {
		dc.recorder.SetScissor(sc)
	}
}

// Clear begins a render pass on the bound targets, clearing the color
// target to col. The pass stays open for subsequent draw recording and is
// closed by Flush.
func (dc *DeviceContext) Clear(col gputypes.Color) error {
	if err := dc.device.Removed(); err != nil {
		return err
	}
	if dc.color == nil {
		return ErrNoRenderTarget
	}
	if dc.passOpen {
		return ErrPassOpen
	}
	if dc.recorder == nil {
		rec, err := dc.device.NewRecorder("frame")
		if err != nil {
			return fmt.Errorf("render: create recorder: %w", err)
		}
		dc.recorder = rec
	}
	if err := dc.recorder.BeginPass(dc.color, dc.depth, col); err != nil {
		return fmt.Errorf("render: begin pass: %w", err)
	}
	dc.passOpen = true
	dc.recorder.SetViewport(dc.viewport)
	dc.recorder.SetScissor(dc.scissor)
	return nil
}

// Recorder exposes the open recorder so systems can record draws during
// the draw phase. Returns nil when no pass is open.
func (dc *DeviceContext) Recorder() Recorder {
	if !dc.passOpen {
		return nil
	}
	return dc.recorder
}

// Flush ends the open pass, submits the recorded commands, and when wait
// is true blocks until the GPU has drained them. Device loss surfaces as
// the device's sticky removal error.
func (dc *DeviceContext) Flush(wait bool) error {
	if dc.recorder == nil {
		return dc.device.Removed()
	}
	if dc.passOpen {
		dc.recorder.EndPass()
		dc.passOpen = false
	}
	cmds, err := dc.recorder.Finish()
	dc.recorder = nil
	if err != nil {
		return fmt.Errorf("render: finish recording: %w", err)
	}
	if err := dc.device.Submit(cmds, wait); err != nil {
		return fmt.Errorf("render: submit: %w", err)
	}
	return nil
}
