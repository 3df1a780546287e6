// Package backend provides a pluggable GPU device backend abstraction.
//
// The backend package lets the engine run against multiple device
// implementations. The headless noop backend is always available; the
// wgpu backend drives real GPUs through gogpu/wgpu.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The noop backend is automatically registered on import:
//
//	import _ "github.com/gogpu/engine/backend"
//
// The wgpu backend registers itself when its package is imported:
//
//	import _ "github.com/gogpu/engine/backend/wgpu"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("noop")
//
// # Usage
//
// Backends create devices implementing render.Device:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	dev, err := b.CreateDevice()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Destroy()
//
// # Available Backends
//
// - "noop": headless recording device (always available)
// - "wgpu": GPU device via gogpu/wgpu
package backend
