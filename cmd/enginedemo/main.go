// Command enginedemo exercises the engine frame loop.
//
// By default it runs headless: a fixed number of fixed-step frames on
// the best available backend, with two demo systems attached.
//
//	enginedemo -frames 600 -backend noop
//
// With -window it opens a gogpu window, wraps the window's GPU device
// via backend/wgpu.FromProvider, and drives one engine tick per window
// redraw, forwarding window resizes to the surface.
//
//	enginedemo -window
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/gogpu"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/backend/wgpu"
	"github.com/gogpu/engine/render"
)

func main() {
	var (
		width       = flag.Int("width", 800, "surface width")
		height      = flag.Int("height", 600, "surface height")
		frames      = flag.Int("frames", 300, "frames to render in headless mode")
		window      = flag.Bool("window", false, "open a window and drive ticks from it")
		backendName = flag.String("backend", "", "headless backend (noop, wgpu); empty picks the best available")
		verbose     = flag.Bool("verbose", false, "enable engine debug logging")
	)
	flag.Parse()

	if *verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *window {
		runWindowed(*width, *height)
		return
	}
	runHeadless(*width, *height, *frames, *backendName)
}

// runHeadless renders a fixed number of frames without a window.
func runHeadless(width, height, frames int, backendName string) {
	opts := []engine.Option{
		engine.WithSize(uint32(width), uint32(height)),
		engine.WithFixedStep(time.Second / 60),
		engine.WithSystems(&wiper{}, &stats{}),
	}
	if backendName != "" {
		opts = append(opts, engine.WithBackend(backendName))
	}
	g, err := engine.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Dispose()

	if err := g.Initialize(); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	log.Printf("Device: %s", g.Device().Capabilities().DeviceName)

	for i := 0; i < frames; i++ {
		if err := g.Tick(); err != nil {
			log.Fatalf("Frame %d failed: %v", i, err)
		}
	}

	gt := g.Time()
	log.Printf("Rendered %d frames, %.2fs of game time, scene drew %d",
		frames, gt.TotalSeconds(), g.Scene().FramesDrawn())
}

// runWindowed opens a gogpu window and runs the engine on the window's
// GPU device. The engine renders into its own targets; the window owns
// the tick cadence and feeds the resize protocol.
func runWindowed(width, height int) {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("engine demo").
		WithSize(width, height).
		WithContinuousRender(false))

	var (
		game      *engine.Game
		animToken *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		// The window's GPU device exists only once the app is running,
		// so the game is created lazily on the first redraw.
		if game == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			dev, err := wgpu.FromProvider(provider)
			if err != nil {
				log.Fatalf("Failed to wrap window device: %v", err)
			}
			game, err = engine.New(
				engine.WithDevice(dev),
				engine.WithSize(uint32(w), uint32(h)),
				engine.WithSystems(&wiper{}, &stats{}),
			)
			if err != nil {
				log.Fatalf("Failed to create game: %v", err)
			}
			if err := game.Initialize(); err != nil {
				log.Fatalf("Failed to initialize: %v", err)
			}
			log.Printf("Engine on shared device %q, %dx%d",
				game.Device().Capabilities().DeviceName, w, h)
			animToken = app.StartAnimation()
		}

		p := game.Surface().Parameters()
		if uint32(w) != p.Width || uint32(h) != p.Height {
			game.Resize(uint32(w), uint32(h))
		}
		if err := game.Tick(); err != nil {
			log.Printf("Tick failed: %v", err)
		}
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		if game != nil {
			game.Dispose()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// wiper sweeps a quarter-wide scissor band across the frame, one full
// pass every two seconds. It shows a system driving the device context
// during the draw phase.
type wiper struct {
	engine.BaseSystem
	game  *engine.Game
	phase float64
}

func (w *wiper) Initialize(g *engine.Game) error {
	w.game = g
	return nil
}

func (w *wiper) Update(t engine.GameTime) error {
	w.phase = math.Mod(t.TotalSeconds()/2, 1)
	return nil
}

func (w *wiper) Draw(engine.GameTime) error {
	p := w.game.Surface().Parameters()
	band := max(p.Width/4, 1)
	x := uint32(w.phase * float64(p.Width))
	if x+band > p.Width {
		band = p.Width - x
	}
	w.game.Context().SetScissor(render.ScissorRect{X: x, W: band, H: p.Height})
	return nil
}

func (w *wiper) EndDraw() {
	// Restore the full scissor so later systems see the whole frame.
	p := w.game.Surface().Parameters()
	w.game.Context().SetScissor(render.FullScissor(p.Width, p.Height))
}

// stats counts frames and logs a line each time a full second of game
// time passes.
type stats struct {
	engine.BaseSystem
	frames  uint64
	lastSec int
}

func (s *stats) Update(t engine.GameTime) error {
	if sec := int(t.TotalSeconds()); sec > s.lastSec {
		log.Printf("t=%ds: %d frames", sec, s.frames)
		s.lastSec = sec
	}
	return nil
}

func (s *stats) Draw(engine.GameTime) error {
	s.frames++
	return nil
}
