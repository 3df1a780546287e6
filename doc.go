// Package engine is the frame-orchestration core of a real-time
// rendering engine for Go.
//
// # Overview
//
// engine owns the pieces of a rendering application that must stay
// synchronized every frame: the game clock, an ordered set of
// lifecycle systems, the GPU device with its single command-recording
// context, and the presentation surface with its resize protocol. It
// deliberately stops there; scene contents, input, and asset formats
// are the application's business.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/gogpu/engine"
//	)
//
//	type spinner struct {
//	    engine.BaseSystem
//	    angle float64
//	}
//
//	func (s *spinner) Update(t engine.GameTime) error {
//	    s.angle += t.Seconds()
//	    return nil
//	}
//
//	func main() {
//	    g, err := engine.New(
//	        engine.WithSize(800, 600),
//	        engine.WithSystems(&spinner{}),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer g.Dispose()
//	    if err := g.Run(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # The Tick
//
// One tick is one frame. The driver advances the clock, runs every
// system's Update, prepares the surface (applying any pending resize),
// runs BeginDraw/Draw/EndDraw across the systems, flushes the device
// context, and presents. All per-system phases walk the systems in
// registration order, and the whole tick body is serialized: at most
// one frame is in flight.
//
// # Systems
//
// A System implements the lifecycle hooks: Initialize, LoadContent,
// Update, BeginDraw, Draw, EndDraw, Dispose. Embed BaseSystem and
// override what you need. LoadContent runs concurrently with the frame
// loop and is never awaited; systems skip work whose content has not
// arrived yet.
//
// # Architecture
//
// The module is organized into:
//   - engine: Game, Clock, System, tick sources, options
//   - render: device abstraction and the device context
//   - backend, backend/wgpu: device backends (noop is built in)
//   - surface: swap-chain and holographic presentation surfaces
//   - interop: COM-style native device/surface bridge
//   - content, cache: asset loading with an LRU decode cache
//
// # Backends
//
// Backends register themselves when imported. The noop backend (pure
// Go, records commands instead of executing them) is always available;
// import backend/wgpu to drive real GPUs through gogpu/wgpu, or inject
// a shared device from a gogpu host with WithDevice.
package engine

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
