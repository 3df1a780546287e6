// Package wgpu provides a GPU device backend using gogpu/wgpu.
//
// The backend opens devices through the gogpu/wgpu Pure Go WebGPU HAL,
// which supports Vulkan, Metal, and DX12 depending on the platform.
// Devices created here record render passes, submit command lists, and
// upload texture data against real GPU hardware.
//
// # Registration and Selection
//
// The wgpu backend is automatically registered when this package is imported:
//
//	import _ "github.com/gogpu/engine/backend/wgpu"
//
// It is preferred over the noop backend when available. If GPU
// initialization fails, backend.InitDefault falls back to noop.
//
// # Basic Usage
//
// Automatic backend selection (recommended):
//
//	b, err := backend.InitDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	device, err := b.CreateDevice()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer device.Destroy()
//
// Sharing a host application's device instead of creating one:
//
//	device, err := wgpu.FromProvider(app.GPUContextProvider())
//
// A shared device is borrowed; destroying it leaves the host's GPU
// objects untouched.
//
// # Requirements
//
//   - gogpu/wgpu module (github.com/gogpu/wgpu)
//   - A GPU that supports Vulkan, Metal, or DX12
//
// # Thread Safety
//
// Backend and Device are safe for concurrent use from multiple goroutines.
// Recorders are not; record each frame from a single goroutine.
package wgpu
