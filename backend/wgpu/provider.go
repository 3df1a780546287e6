package wgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/render"
)

// FromProvider wraps a host application's GPU device as a render.Device.
//
// The provider must also expose the underlying HAL objects through
// HalDevice() any and HalQueue() any (windowing layers such as gogpu do).
// The returned device is borrowed: Destroy releases the wrapper but leaves
// the host's device and queue alone.
func FromProvider(provider render.DeviceHandle) (render.Device, error) {
	if provider == nil {
		return nil, fmt.Errorf("wgpu: nil device provider")
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	backend.Logger().Debug("wgpu: wrapped shared GPU device")
	return &Device{device: device, queue: queue, owned: false, name: "shared"}, nil
}
