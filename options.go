// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/content"
	"github.com/gogpu/engine/render"
	"github.com/gogpu/engine/surface"
)

// Option configures a Game during creation.
//
// Example:
//
//	// Headless game at the default 800x600.
//	g, err := engine.New(engine.WithBackend("noop"))
//
//	// Windowed game sharing the host's GPU device.
//	g, err := engine.New(
//	    engine.WithDevice(dev),
//	    engine.WithSize(1280, 720),
//	    engine.WithSystems(&player{}, &hud{}),
//	)
type Option func(*options)

// options holds optional configuration for Game creation.
type options struct {
	target     surface.Target
	backend    string
	device     render.Device
	tickSource TickSource
	content    content.Manager
	systems    []System
	clearColor gputypes.Color
	presenter  surface.Presenter
	fixedStep  time.Duration
}

// defaultOptions returns the default game options: a core-window target
// at 800x600, the best available backend, a 60 Hz ticker, and no
// content.
func defaultOptions() options {
	return options{
		target:     surface.NewTarget(surface.KindCoreWindow, 800, 600),
		tickSource: TickerSource{},
		content:    content.Nop{},
		clearColor: surface.DefaultClearColor,
	}
}

// WithSize sets the initial back buffer dimensions in pixels.
func WithSize(width, height uint32) Option {
	return func(o *options) {
		o.target.Width = width
		o.target.Height = height
	}
}

// WithTarget sets the full presentation target: kind, dimensions,
// native handle, and stereo request. It replaces the default
// core-window target; combine with WithSize only if WithSize comes
// after.
//
// Example:
//
//	target := surface.NewTarget(surface.KindHolographic, 1440, 936).WithStereo()
//	g, err := engine.New(engine.WithTarget(target))
func WithTarget(t surface.Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithBackend selects the device backend by name ("wgpu", "noop")
// instead of the highest-priority available one. The named backend must
// be registered; backends register themselves when their package is
// imported.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithDevice supplies an already-created device. The game uses it as-is
// and does not destroy it on Dispose; the caller keeps ownership. This
// is the path for sharing one GPU device with a host application, via
// backend/wgpu.FromProvider.
func WithDevice(dev render.Device) Option {
	return func(o *options) {
		o.device = dev
	}
}

// WithTickSource sets the tick source Run uses. The default is a
// TickerSource at 60 Hz.
func WithTickSource(ts TickSource) Option {
	return func(o *options) {
		if ts != nil {
			o.tickSource = ts
		}
	}
}

// WithContent sets the content manager systems load assets from.
// Without it the game has no content and loads fail with
// content.ErrNoContent.
//
// Example:
//
//	//go:embed assets
//	var assets embed.FS
//
//	g, err := engine.New(engine.WithContent(content.NewFS(assets)))
func WithContent(m content.Manager) Option {
	return func(o *options) {
		if m != nil {
			o.content = m
		}
	}
}

// WithSystems registers systems in the given order. The order is the
// invocation order for every lifecycle phase. The built-in scene system
// is always appended after them.
func WithSystems(systems ...System) Option {
	return func(o *options) {
		o.systems = append(o.systems, systems...)
	}
}

// WithClearColor sets the color the surface clears to each frame.
func WithClearColor(col gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = col
	}
}

// WithPresenter sets the platform presenter the surface hands finished
// frames to. Without it frames are discarded (headless).
func WithPresenter(p surface.Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithFixedStep makes every tick advance game time by exactly d instead
// of measured wall time. Deterministic playback and tests use this;
// rendering still happens at the tick source's cadence.
func WithFixedStep(d time.Duration) Option {
	return func(o *options) {
		o.fixedStep = d
	}
}
