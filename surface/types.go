// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Kind identifies the class of presentation target a surface draws into.
type Kind uint8

const (
	// KindComposition presents through a composition swap chain, typically
	// hosted inside a UI panel.
	KindComposition Kind = iota

	// KindCoreWindow presents directly into an application window.
	KindCoreWindow

	// KindHolographic presents into a stereo holographic camera.
	KindHolographic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindComposition:
		return "composition"
	case KindCoreWindow:
		return "corewindow"
	case KindHolographic:
		return "holographic"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Target describes where and how a surface should present.
//
// A Target is a creation-time description; the live state of a surface is
// reported by Parameters.
type Target struct {
	// Kind selects the surface variant.
	Kind Kind

	// Width and Height are the initial back buffer dimensions in pixels.
	Width  uint32
	Height uint32

	// Native is an optional platform handle (window, panel, or holographic
	// space) forwarded to the presenter and the interop bridge.
	// Zero means headless.
	Native uintptr

	// StereoRequested asks for a stereo back buffer. It is granted only
	// when the device supports texture arrays; see Parameters.Stereo for
	// the outcome.
	StereoRequested bool
}

// NewTarget creates a Target with the given kind and dimensions.
func NewTarget(kind Kind, width, height uint32) Target {
	return Target{Kind: kind, Width: width, Height: height}
}

// WithNative returns a copy with the specified platform handle.
func (t Target) WithNative(handle uintptr) Target {
	t.Native = handle
	return t
}

// WithStereo returns a copy that requests a stereo back buffer.
func (t Target) WithStereo() Target {
	t.StereoRequested = true
	return t
}

// Parameters describes the allocated buffers of a live surface.
//
// Width and Height track resizes; everything else is fixed at creation.
// The stereo flag and the buffer formats never change for the lifetime of
// a surface, so systems can cache format-dependent state.
type Parameters struct {
	// Width is the back buffer width in pixels.
	Width uint32

	// Height is the back buffer height in pixels.
	Height uint32

	// BackBufferFormat is the color buffer pixel format.
	BackBufferFormat gputypes.TextureFormat

	// DepthStencilFormat is the depth-stencil buffer pixel format.
	DepthStencilFormat gputypes.TextureFormat

	// Stereo reports whether the back buffer has one layer per eye.
	Stereo bool

	// Kind is the surface variant the parameters belong to.
	Kind Kind
}
