// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/content"
	"github.com/gogpu/engine/surface"
)

// callLog collects hook invocations from instrumented systems.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	l.mu.Lock()
	l.calls = append(l.calls, s)
	l.mu.Unlock()
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

// phases returns the recorded calls without the load entries, which run
// concurrently and land at arbitrary positions.
func (l *callLog) phases() []string {
	var out []string
	for _, c := range l.snapshot() {
		if !strings.HasPrefix(c, "load:") {
			out = append(out, c)
		}
	}
	return out
}

// probe is a System recording every hook call into a shared log, with
// injectable failures.
type probe struct {
	id  string
	log *callLog

	game *Game

	initErr   error
	updateErr error
	drawErr   error
	loadErr   error
	loadGate  chan struct{} // when non-nil, LoadContent blocks on it

	onDispose func()
}

func (p *probe) Initialize(g *Game) error {
	p.game = g
	p.log.add("init:" + p.id)
	return p.initErr
}

func (p *probe) LoadContent(ctx context.Context) error {
	if p.loadGate != nil {
		select {
		case <-p.loadGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.log.add("load:" + p.id)
	return p.loadErr
}

func (p *probe) Update(GameTime) error {
	p.log.add("update:" + p.id)
	return p.updateErr
}

func (p *probe) BeginDraw() error {
	p.log.add("begin:" + p.id)
	return nil
}

func (p *probe) Draw(GameTime) error {
	p.log.add("draw:" + p.id)
	return p.drawErr
}

func (p *probe) EndDraw() {
	p.log.add("end:" + p.id)
}

func (p *probe) Dispose() {
	p.log.add("dispose:" + p.id)
	if p.onDispose != nil {
		p.onDispose()
	}
}

// newTestGame builds a game on an injected recording device.
func newTestGame(t *testing.T, opts ...Option) (*Game, *backend.NoopDevice) {
	t.Helper()
	dev := backend.NewNoopDevice()
	g, err := New(append([]Option{WithDevice(dev)}, opts...)...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(g.Dispose)
	return g, dev
}

func countPrefix(cmds []string, prefix string) int {
	n := 0
	for _, c := range cmds {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewDefaults(t *testing.T) {
	g, _ := newTestGame(t)

	p := g.Surface().Parameters()
	if p.Width != 800 || p.Height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", p.Width, p.Height)
	}
	if p.Kind != surface.KindCoreWindow {
		t.Errorf("default kind = %v, want core window", p.Kind)
	}

	// Only the built-in scene system is registered, and it is last.
	if g.Systems().Len() != 1 {
		t.Fatalf("Systems().Len() = %d, want 1", g.Systems().Len())
	}
	if g.Systems().At(0) != System(g.Scene()) {
		t.Error("scene system is not the registered system")
	}

	if _, ok := g.Content().(content.Nop); !ok {
		t.Errorf("default content manager = %T, want content.Nop", g.Content())
	}
	if g.Device() == nil || g.Context() == nil || g.Surface() == nil {
		t.Error("accessors returned nil")
	}
	if g.Time() != (GameTime{}) {
		t.Errorf("Time() before first tick = %+v, want zero", g.Time())
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(WithBackend("imaginary"))
	if !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Fatalf("New() = %v, want ErrBackendNotAvailable", err)
	}
}

func TestNewNoopBackend(t *testing.T) {
	g, err := New(WithBackend("noop"))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer g.Dispose()

	if name := g.Device().Capabilities().DeviceName; name != "noop" {
		t.Errorf("device name = %q, want noop", name)
	}
}

func TestNewWithSystemsOrder(t *testing.T) {
	log := &callLog{}
	a := &probe{id: "a", log: log}
	b := &probe{id: "b", log: log}
	g, _ := newTestGame(t, WithSystems(a, b))

	if g.Systems().Len() != 3 {
		t.Fatalf("Systems().Len() = %d, want 3 (two probes + scene)", g.Systems().Len())
	}
	if g.Systems().At(0) != System(a) || g.Systems().At(1) != System(b) {
		t.Error("user systems not in registration order")
	}
	if g.Systems().At(2) != System(g.Scene()) {
		t.Error("scene system must be registered last")
	}
}

func TestGameTickBeforeInitialize(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.Tick(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Tick() before Initialize = %v, want ErrNotInitialized", err)
	}
}

func TestGameInitializeTwice(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Initialize() = %v, want ErrAlreadyInitialized", err)
	}
}

func TestGameSystemsSealedAfterInitialize(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Systems().Append(&BaseSystem{}); !errors.Is(err, ErrRunning) {
		t.Fatalf("Append() after Initialize = %v, want ErrRunning", err)
	}
}

func TestGamePhaseOrder(t *testing.T) {
	log := &callLog{}
	a := &probe{id: "a", log: log}
	b := &probe{id: "b", log: log}
	g, _ := newTestGame(t, WithSystems(a, b))

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	for range 2 {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}
	g.Dispose()

	tick := []string{
		"update:a", "update:b",
		"begin:a", "begin:b",
		"draw:a", "draw:b",
		"end:a", "end:b",
	}
	var want []string
	want = append(want, "init:a", "init:b")
	want = append(want, tick...)
	want = append(want, tick...)
	want = append(want, "dispose:a", "dispose:b")

	got := log.phases()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("phase order mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestGameInitializeErrorAborts(t *testing.T) {
	log := &callLog{}
	wantErr := errors.New("init failed")
	a := &probe{id: "a", log: log}
	b := &probe{id: "b", log: log, initErr: wantErr}
	c := &probe{id: "c", log: log}
	g, _ := newTestGame(t, WithSystems(a, b, c))

	err := g.Initialize()
	if !errors.Is(err, wantErr) {
		t.Fatalf("Initialize() = %v, want %v", err, wantErr)
	}

	got := log.phases()
	want := []string{"init:a", "init:b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v (later systems must not initialize)", got, want)
	}
}

func TestGameUpdateErrorAbortsTick(t *testing.T) {
	log := &callLog{}
	wantErr := errors.New("update failed")
	a := &probe{id: "a", log: log}
	b := &probe{id: "b", log: log, updateErr: wantErr}
	c := &probe{id: "c", log: log}
	g, dev := newTestGame(t, WithSystems(a, b, c))

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); !errors.Is(err, wantErr) {
		t.Fatalf("Tick() = %v, want %v", err, wantErr)
	}

	got := log.phases()
	want := []string{"init:a", "init:b", "init:c", "update:a", "update:b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v (first error aborts the whole tick)", got, want)
	}
	if n := countPrefix(dev.Commands(), "begin-pass"); n != 0 {
		t.Errorf("begin-pass count = %d after aborted update phase, want 0", n)
	}
}

func TestGameDrawErrorDiscardsFrame(t *testing.T) {
	log := &callLog{}
	wantErr := errors.New("draw failed")
	a := &probe{id: "a", log: log, drawErr: wantErr}
	g, dev := newTestGame(t, WithSystems(a))

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); !errors.Is(err, wantErr) {
		t.Fatalf("Tick() = %v, want %v", err, wantErr)
	}

	// The aborted frame was never flushed, so nothing was submitted.
	if n := countPrefix(dev.Commands(), "begin-pass"); n != 0 {
		t.Errorf("begin-pass count = %d after aborted draw phase, want 0", n)
	}

	// The next frame starts clean.
	a.drawErr = nil
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() after recovery = %v", err)
	}
	if n := countPrefix(dev.Commands(), "begin-pass"); n != 1 {
		t.Errorf("begin-pass count = %d after clean tick, want 1", n)
	}
}

func TestGameFirstTickViewportStableSize(t *testing.T) {
	g, dev := newTestGame(t) // default 800x600

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	// Buffers already match the requested size: the only allocations are
	// the two from construction, and the first frame draws at 800x600.
	if n := countPrefix(dev.Commands(), "create-texture"); n != 2 {
		t.Errorf("create-texture count = %d after first tick, want 2 (no resize)", n)
	}
	vp := g.Context().Viewport()
	if vp.W != 800 || vp.H != 600 {
		t.Errorf("first frame viewport = %gx%g, want 800x600", vp.W, vp.H)
	}
	if n := countPrefix(dev.Commands(), "begin-pass 800x600"); n != 1 {
		t.Errorf("begin-pass 800x600 count = %d, want 1", n)
	}

	// N more stable ticks: zero reallocations.
	for range 4 {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}
	if n := countPrefix(dev.Commands(), "create-texture"); n != 2 {
		t.Errorf("create-texture count = %d after 5 stable ticks, want 2", n)
	}
	if n := countPrefix(dev.Commands(), "begin-pass 800x600"); n != 5 {
		t.Errorf("begin-pass count = %d, want 5", n)
	}
}

func TestGameResizeBeforeFirstTick(t *testing.T) {
	g, dev := newTestGame(t) // constructed at 800x600

	g.Resize(1024, 768)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	// Exactly one reallocation pair, and the frame draws at the new size.
	if n := countPrefix(dev.Commands(), "create-texture 1024x768"); n != 2 {
		t.Errorf("create-texture 1024x768 count = %d, want 2 (one Resize)", n)
	}
	vp := g.Context().Viewport()
	if vp.W != 1024 || vp.H != 768 {
		t.Errorf("viewport = %gx%g, want 1024x768", vp.W, vp.H)
	}
	p := g.Surface().Parameters()
	if p.Width != 1024 || p.Height != 768 {
		t.Errorf("parameters = %dx%d, want 1024x768", p.Width, p.Height)
	}

	// Subsequent ticks at the same size must not reallocate.
	for range 3 {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}
	if n := countPrefix(dev.Commands(), "create-texture"); n != 4 {
		t.Errorf("create-texture count = %d, want 4 (construction + one resize)", n)
	}
}

func TestGameResizeAfterTicks(t *testing.T) {
	g, dev := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	g.Resize(1024, 768)
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	if n := countPrefix(dev.Commands(), "create-texture 1024x768"); n != 2 {
		t.Errorf("create-texture 1024x768 count = %d, want 2", n)
	}
	// The replaced buffers are retired, not destroyed mid-frame: the
	// frame that still referenced them must drain first.
	if n := countPrefix(dev.Commands(), "destroy-texture 800x600"); n != 0 {
		t.Errorf("destroy-texture 800x600 count = %d right after resize, want 0 (deferred)", n)
	}

	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}
	if n := countPrefix(dev.Commands(), "destroy-texture 800x600"); n != 2 {
		t.Errorf("destroy-texture 800x600 count = %d one frame later, want 2", n)
	}
	if n := countPrefix(dev.Commands(), "begin-pass 1024x768"); n != 2 {
		t.Errorf("begin-pass 1024x768 count = %d, want 2", n)
	}
}

func TestGameResizeCoalesced(t *testing.T) {
	g, dev := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	// Multiple requests between frames: only the last size is applied.
	g.Resize(1000, 700)
	g.Resize(1024, 768)
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	if n := countPrefix(dev.Commands(), "create-texture 1000x700"); n != 0 {
		t.Errorf("intermediate size was allocated: create-texture 1000x700 count = %d, want 0", n)
	}
	if n := countPrefix(dev.Commands(), "create-texture 1024x768"); n != 2 {
		t.Errorf("create-texture 1024x768 count = %d, want 2", n)
	}
}

func TestGameResizeSameSizeNoReallocation(t *testing.T) {
	g, dev := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	g.Resize(800, 600) // matches the live size
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}
	if n := countPrefix(dev.Commands(), "create-texture"); n != 2 {
		t.Errorf("create-texture count = %d after same-size resize, want 2", n)
	}
}

// marker notes its draw and end-draw into the frame's command stream.
// Matching note pairs prove frames never interleave.
type marker struct {
	BaseSystem
	game *Game
	seq  atomic.Uint64
	cur  uint64
}

func (m *marker) Initialize(g *Game) error {
	m.game = g
	return nil
}

func (m *marker) Draw(GameTime) error {
	m.cur = m.seq.Add(1)
	if rec, ok := m.game.Context().Recorder().(*backend.NoopRecorder); ok {
		rec.Note(fmt.Sprintf("draw-mark %d", m.cur))
	}
	time.Sleep(time.Millisecond) // widen the window for interleaving bugs
	return nil
}

func (m *marker) EndDraw() {
	if rec, ok := m.game.Context().Recorder().(*backend.NoopRecorder); ok {
		rec.Note(fmt.Sprintf("end-mark %d", m.cur))
	}
}

func TestGameTickMutualExclusion(t *testing.T) {
	m := &marker{}
	g, dev := newTestGame(t, WithSystems(m))
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	const (
		callers   = 2
		ticksEach = 8
	)
	var wg sync.WaitGroup
	errs := make(chan error, callers*ticksEach)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ticksEach {
				errs <- g.Tick()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	cmds := dev.Commands()
	if n := countPrefix(cmds, "begin-pass"); n != callers*ticksEach {
		t.Fatalf("begin-pass count = %d, want %d", n, callers*ticksEach)
	}

	// Within every begin-pass..end-pass segment the draw and end notes
	// must pair up; a mismatch means two ticks overlapped.
	var drawMark, endMark string
	for _, c := range cmds {
		switch {
		case strings.HasPrefix(c, "begin-pass"):
			drawMark, endMark = "", ""
		case strings.HasPrefix(c, "draw-mark "):
			if drawMark != "" {
				t.Fatalf("two draw marks in one frame: %q and %q", drawMark, c)
			}
			drawMark = strings.TrimPrefix(c, "draw-mark ")
		case strings.HasPrefix(c, "end-mark "):
			endMark = strings.TrimPrefix(c, "end-mark ")
		case c == "end-pass":
			if drawMark == "" || drawMark != endMark {
				t.Fatalf("interleaved frames: draw-mark %q, end-mark %q", drawMark, endMark)
			}
		}
	}
}

func TestGameLoadFireAndForget(t *testing.T) {
	log := &callLog{}
	gate := make(chan struct{})
	slow := &probe{id: "slow", log: log, loadGate: gate}
	g, _ := newTestGame(t, WithSystems(slow))

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if g.ContentLoaded() {
		t.Fatal("ContentLoaded() = true while a load is still blocked")
	}

	// The frame loop must not wait for the blocked load.
	for range 3 {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick() with blocked load = %v", err)
		}
	}

	close(gate)
	waitFor(t, g.ContentLoaded, "loads never completed after the gate opened")
	if err := g.LoadErr(); err != nil {
		t.Errorf("LoadErr() = %v, want nil", err)
	}
}

func TestGameLoadErrorDoesNotStopTicking(t *testing.T) {
	log := &callLog{}
	wantErr := errors.New("asset missing")
	bad := &probe{id: "bad", log: log, loadErr: wantErr}
	g, _ := newTestGame(t, WithSystems(bad))

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	waitFor(t, g.ContentLoaded, "loads never completed")

	if err := g.LoadErr(); !errors.Is(err, wantErr) {
		t.Errorf("LoadErr() = %v, want %v", err, wantErr)
	}
	if err := g.Tick(); err != nil {
		t.Errorf("Tick() after load failure = %v, want nil (loop keeps running)", err)
	}
}

func TestGameRun(t *testing.T) {
	g, _ := newTestGame(t, WithTickSource(TickerSource{Interval: time.Millisecond}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	// Run initializes on its own; once the scene's content load lands,
	// frames start reaching its Draw.
	waitFor(t, func() bool { return g.Scene().FramesDrawn() >= 2 }, "scene never drew")

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestGameRunStopsOnTickError(t *testing.T) {
	log := &callLog{}
	wantErr := errors.New("update failed")
	bad := &probe{id: "bad", log: log, updateErr: wantErr}
	g, _ := newTestGame(t,
		WithSystems(bad),
		WithTickSource(TickerSource{Interval: time.Millisecond}))

	err := g.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() = %v, want %v", err, wantErr)
	}
}

func TestGameFixedStep(t *testing.T) {
	const step = 10 * time.Millisecond
	g, _ := newTestGame(t, WithFixedStep(step))
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}

	for range 3 {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick() = %v", err)
		}
	}

	gt := g.Time()
	if gt.ElapsedSinceLastTick != step {
		t.Errorf("elapsed = %v, want %v", gt.ElapsedSinceLastTick, step)
	}
	if gt.TotalElapsed != 3*step {
		t.Errorf("total = %v, want %v", gt.TotalElapsed, 3*step)
	}
}

func TestGameDeviceRemoved(t *testing.T) {
	g, dev := newTestGame(t)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	removed := errors.New("device hung and was reset")
	dev.SetRemoved(removed)

	err := g.Tick()
	var dre *surface.DeviceRemovedError
	if !errors.As(err, &dre) {
		t.Fatalf("Tick() = %v, want *surface.DeviceRemovedError", err)
	}
	if !errors.Is(err, removed) {
		t.Errorf("Tick() error does not wrap the device's removal cause: %v", err)
	}
}

func TestGameDispose(t *testing.T) {
	log := &callLog{}
	dev := backend.NewNoopDevice()
	deviceSideDown := false
	p := &probe{id: "a", log: log}
	p.onDispose = func() {
		// The device side is torn down before systems dispose: the
		// surface buffers must already be gone.
		deviceSideDown = countPrefix(dev.Commands(), "destroy-texture") >= 2
	}

	g, err := New(WithDevice(dev), WithSystems(p))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(g.Dispose)
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	if err := g.Tick(); err != nil {
		t.Fatalf("Tick() = %v", err)
	}

	g.Dispose()
	if !deviceSideDown {
		t.Error("system Dispose ran before the device side was torn down")
	}

	// Idempotent: a second Dispose must not re-dispose systems.
	g.Dispose()
	disposes := 0
	for _, c := range log.snapshot() {
		if c == "dispose:a" {
			disposes++
		}
	}
	if disposes != 1 {
		t.Errorf("system disposed %d times, want 1", disposes)
	}

	// After Dispose every lifecycle operation fails.
	if err := g.Tick(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Tick() after Dispose = %v, want ErrDisposed", err)
	}
	if err := g.Initialize(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Initialize() after Dispose = %v, want ErrDisposed", err)
	}
	if err := g.Run(context.Background()); !errors.Is(err, ErrDisposed) {
		t.Errorf("Run() after Dispose = %v, want ErrDisposed", err)
	}
	g.Resize(100, 100) // must not panic
}

func TestGameDisposeOwnedDevice(t *testing.T) {
	g, err := New(WithBackend("noop"))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(g.Dispose)
	dev, ok := g.Device().(*backend.NoopDevice)
	if !ok {
		t.Fatalf("device = %T, want *backend.NoopDevice", g.Device())
	}

	g.Dispose()
	if n := countPrefix(dev.Commands(), "destroy-device"); n != 1 {
		t.Errorf("destroy-device count = %d, want 1 (game owns the device it created)", n)
	}
}

func TestGameDisposeInjectedDeviceNotDestroyed(t *testing.T) {
	g, dev := newTestGame(t)
	g.Dispose()
	if n := countPrefix(dev.Commands(), "destroy-device"); n != 0 {
		t.Errorf("destroy-device count = %d, want 0 (caller owns injected devices)", n)
	}
}

func TestGameDisposeWithoutInitialize(t *testing.T) {
	log := &callLog{}
	p := &probe{id: "a", log: log}
	g, _ := newTestGame(t, WithSystems(p))

	g.Dispose()

	got := log.phases()
	want := []string{"dispose:a"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v (registered systems dispose even if never initialized)", got, want)
	}
}

func TestGameWithContent(t *testing.T) {
	m := content.NewFS(fstest.MapFS{})
	g, _ := newTestGame(t, WithContent(m))
	if g.Content() != content.Manager(m) {
		t.Error("Content() did not return the configured manager")
	}
}
