// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/content"
	"github.com/gogpu/engine/internal/loader"
	"github.com/gogpu/engine/render"
	"github.com/gogpu/engine/surface"
)

// Game is the frame driver: it owns the clock, the device and its
// context, the presentation surface, and the ordered set of systems,
// and composes them into one tick.
//
// A game moves through four states: constructed by New, initialized by
// Initialize, ticking via Tick (usually driven by Run), and disposed by
// Dispose. Within a tick the phases run in a fixed order:
//
//	clock tick                  -> GameTime for this frame
//	Update       (each system)
//	surface BeginDraw           -> apply pending resize, bind, clear
//	BeginDraw    (each system)
//	Draw         (each system)
//	EndDraw      (each system)
//	context Flush(wait)         -> submit, drain the GPU
//	surface Present
//
// Every per-system phase walks the systems in registration order.
// Exactly one tick runs at a time: the whole body is serialized by a
// mutex, so a reentrant host callback cannot interleave two frames'
// command recording. Content loading is the only concurrency the driver
// creates, and the tick never waits for it.
type Game struct {
	clock *Clock
	time  GameTime

	systems *Systems
	list    []System // sealed at Initialize
	scene   *SceneSystem

	backend    backend.Backend // nil when the device was injected
	device     render.Device
	ownsDevice bool
	dc         *render.DeviceContext
	surf       surface.Surface
	assets     content.Manager

	tickSource TickSource
	fixedStep  time.Duration

	// tickMu serializes the entire tick body: at most one frame is ever
	// in flight. stateMu guards the lifecycle flags and the published
	// frame time; it is never held across system calls.
	tickMu  sync.Mutex
	stateMu sync.Mutex

	initialized bool
	disposed    bool

	loads           *loader.Pool
	loadCtx         context.Context
	loadCancel      context.CancelFunc
	loadsDispatched atomic.Bool
	loadPending     atomic.Int32
	loadErrMu       sync.Mutex
	loadErr         error
}

// New creates a game from the options: it selects a backend and creates
// the device (unless one is injected), allocates the surface for the
// target, and builds the device context. No frame work happens until
// Initialize and Tick.
func New(opts ...Option) (*Game, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Game{
		clock:      NewClock(),
		systems:    &Systems{},
		tickSource: cfg.tickSource,
		fixedStep:  cfg.fixedStep,
		assets:     cfg.content,
	}

	if cfg.device != nil {
		g.device = cfg.device
	} else {
		var (
			b   backend.Backend
			err error
		)
		if cfg.backend != "" {
			b = backend.Get(cfg.backend)
			if b == nil {
				return nil, fmt.Errorf("engine: backend %q: %w", cfg.backend, backend.ErrBackendNotAvailable)
			}
			if err = b.Init(); err != nil {
				return nil, fmt.Errorf("engine: init backend %q: %w", cfg.backend, err)
			}
		} else {
			b, err = backend.InitDefault()
			if err != nil {
				return nil, fmt.Errorf("engine: no usable backend: %w", err)
			}
		}
		dev, err := b.CreateDevice()
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("engine: create device: %w", err)
		}
		g.backend = b
		g.device = dev
		g.ownsDevice = true
	}

	surfOpts := []surface.Option{surface.WithClearColor(cfg.clearColor)}
	if cfg.presenter != nil {
		surfOpts = append(surfOpts, surface.WithPresenter(cfg.presenter))
	}
	surf, err := surface.New(g.device, cfg.target, surfOpts...)
	if err != nil {
		g.teardownDevice()
		return nil, fmt.Errorf("engine: create surface: %w", err)
	}
	g.surf = surf
	g.dc = render.NewDeviceContext(g.device)

	for _, sys := range cfg.systems {
		if err := g.systems.Append(sys); err != nil {
			g.surf.Dispose()
			g.teardownDevice()
			return nil, err
		}
	}
	g.scene = &SceneSystem{}
	if err := g.systems.Append(g.scene); err != nil {
		g.surf.Dispose()
		g.teardownDevice()
		return nil, err
	}

	g.loads = loader.New(0)
	g.loadCtx, g.loadCancel = context.WithCancel(context.Background())

	p := surf.Parameters()
	caps := g.device.Capabilities()
	Logger().Info("engine: game created",
		"device", caps.DeviceName,
		"kind", p.Kind.String(),
		"width", p.Width,
		"height", p.Height,
		"stereo", p.Stereo,
		"systems", g.systems.Len())
	return g, nil
}

// teardownDevice releases the device side after a construction failure
// or at Dispose.
func (g *Game) teardownDevice() {
	if g.ownsDevice {
		g.device.Destroy()
	}
	if g.backend != nil {
		g.backend.Close()
	}
}

// Initialize initializes every system in registration order, then
// dispatches their LoadContent concurrently. It runs exactly once.
//
// Initialization is synchronous and fail-fast: the first system error
// aborts and is returned, and later systems are not initialized.
// Loading is fire-and-forget: Initialize returns as soon as the loads
// are dispatched, and the frame loop never waits for them. Progress is
// observable through ContentLoaded and LoadErr.
func (g *Game) Initialize() error {
	g.stateMu.Lock()
	if g.disposed {
		g.stateMu.Unlock()
		return ErrDisposed
	}
	if g.initialized {
		g.stateMu.Unlock()
		return ErrAlreadyInitialized
	}
	g.initialized = true
	g.stateMu.Unlock()

	list := g.systems.seal()
	g.stateMu.Lock()
	g.list = list
	g.stateMu.Unlock()

	for _, sys := range list {
		if err := sys.Initialize(g); err != nil {
			return fmt.Errorf("engine: initialize %T: %w", sys, err)
		}
	}

	g.loadPending.Store(int32(len(list)))
	g.loadsDispatched.Store(true)
	for _, sys := range list {
		scheduled := g.loads.Go(func() {
			defer g.loadPending.Add(-1)
			if err := sys.LoadContent(g.loadCtx); err != nil {
				g.recordLoadErr(fmt.Errorf("engine: load %T: %w", sys, err))
				Logger().Warn("engine: content load failed", "system", fmt.Sprintf("%T", sys), "error", err)
			}
		})
		if !scheduled {
			g.loadPending.Add(-1)
		}
	}
	Logger().Debug("engine: initialized", "systems", len(list))
	return nil
}

func (g *Game) recordLoadErr(err error) {
	g.loadErrMu.Lock()
	if g.loadErr == nil {
		g.loadErr = err
	}
	g.loadErrMu.Unlock()
}

// Tick runs one frame: update phase, draw phases, flush, present.
//
// Tick is safe to call from concurrent call sites; the whole body holds
// the tick mutex, so frames serialize and one frame's command recording
// is never interleaved with another's. The first error aborts the tick
// and is returned: a failing system skips the rest of its phase and all
// later phases for this tick (fail fast, no per-system isolation).
// Device loss surfaces here wrapped in *surface.DeviceRemovedError; the
// host owns any recreation policy.
func (g *Game) Tick() error {
	g.tickMu.Lock()
	defer g.tickMu.Unlock()

	g.stateMu.Lock()
	if g.disposed {
		g.stateMu.Unlock()
		return ErrDisposed
	}
	if !g.initialized {
		g.stateMu.Unlock()
		return ErrNotInitialized
	}
	list := g.list
	g.stateMu.Unlock()

	var gt GameTime
	if g.fixedStep > 0 {
		gt = g.clock.Step(g.fixedStep)
	} else {
		gt = g.clock.Tick(time.Now())
	}
	g.stateMu.Lock()
	g.time = gt
	g.stateMu.Unlock()

	for _, sys := range list {
		if err := sys.Update(gt); err != nil {
			return fmt.Errorf("engine: update %T: %w", sys, err)
		}
	}

	g.dc.Reset()
	if err := g.surf.BeginDraw(g.dc); err != nil {
		return fmt.Errorf("engine: begin draw: %w", err)
	}
	for _, sys := range list {
		if err := sys.BeginDraw(); err != nil {
			return fmt.Errorf("engine: begin draw %T: %w", sys, err)
		}
	}

	for _, sys := range list {
		if err := sys.Draw(gt); err != nil {
			return fmt.Errorf("engine: draw %T: %w", sys, err)
		}
	}

	for _, sys := range list {
		sys.EndDraw()
	}

	if err := g.dc.Flush(true); err != nil {
		return fmt.Errorf("engine: flush: %w", err)
	}
	if err := g.surf.Present(); err != nil {
		return fmt.Errorf("engine: present: %w", err)
	}
	return nil
}

// Run initializes the game if needed and drives Tick from the
// configured tick source until ctx is canceled or a tick fails. Run
// returns ctx.Err() after cancellation and the tick's error otherwise.
//
// Run does not dispose the game; the caller owns Dispose.
func (g *Game) Run(ctx context.Context) error {
	g.stateMu.Lock()
	disposed, initialized := g.disposed, g.initialized
	g.stateMu.Unlock()
	if disposed {
		return ErrDisposed
	}
	if !initialized {
		if err := g.Initialize(); err != nil {
			return err
		}
	}
	return g.tickSource.Run(ctx, g.Tick)
}

// Resize records a new requested surface size. It is safe to call from
// a windowing event handler at any time; the buffer work happens inside
// the next Tick's BeginDraw, and repeated calls between frames coalesce
// to the last size.
func (g *Game) Resize(width, height uint32) {
	g.stateMu.Lock()
	disposed := g.disposed
	g.stateMu.Unlock()
	if disposed {
		return
	}
	g.surf.RequestSize(width, height)
}

// Dispose releases everything the game owns: it cancels and drains
// pending content loads, disposes the surface and the device side, and
// then disposes every system in registration order. Dispose is
// idempotent; after it every operation fails with ErrDisposed.
//
// An in-flight Tick finishes its frame before teardown begins.
func (g *Game) Dispose() {
	g.stateMu.Lock()
	if g.disposed {
		g.stateMu.Unlock()
		return
	}
	g.disposed = true
	list := g.list
	g.stateMu.Unlock()

	// Loads may touch the device; drain them before tearing it down.
	g.loadCancel()
	g.loads.Close()

	g.tickMu.Lock()
	defer g.tickMu.Unlock()

	g.surf.Dispose()
	g.dc.Reset()
	g.teardownDevice()

	if list == nil {
		list = g.systems.seal()
	}
	for _, sys := range list {
		sys.Dispose()
	}
	Logger().Info("engine: disposed")
}

// Time returns the GameTime of the most recent tick.
func (g *Game) Time() GameTime {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	return g.time
}

// Surface returns the presentation surface.
func (g *Game) Surface() surface.Surface { return g.surf }

// Device returns the GPU device.
func (g *Game) Device() render.Device { return g.device }

// Context returns the device's command-recording context. Systems
// record draws through it during the draw phase; only the frame driver
// resets and flushes it.
func (g *Game) Context() *render.DeviceContext { return g.dc }

// Content returns the content manager systems load assets from.
func (g *Game) Content() content.Manager { return g.assets }

// Systems returns the system registry.
func (g *Game) Systems() *Systems { return g.systems }

// Scene returns the built-in scene system.
func (g *Game) Scene() *SceneSystem { return g.scene }

// ContentLoaded reports whether every system's LoadContent has
// finished, successfully or not. It is false until Initialize has
// dispatched the loads.
func (g *Game) ContentLoaded() bool {
	return g.loadsDispatched.Load() && g.loadPending.Load() == 0
}

// LoadErr returns the first content load error, or nil. Load failures
// do not stop the frame loop; systems skip what did not load.
func (g *Game) LoadErr() error {
	g.loadErrMu.Lock()
	defer g.loadErrMu.Unlock()
	return g.loadErr
}
