package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/render"
)

// init registers the wgpu backend on package import.
func init() {
	backend.Register(backend.BackendWgpu, func() backend.Backend {
		return &Backend{}
	})
}

// Backend drives real GPUs through the gogpu/wgpu HAL.
//
// Init creates the instance and selects an adapter; CreateDevice opens a
// logical device on it. The backend prefers discrete over integrated GPUs
// and falls back to the first adapter found.
type Backend struct {
	mu sync.Mutex

	instance    hal.Instance
	adapter     hal.Adapter
	adapterName string

	initialized bool
}

// NewBackend creates a new wgpu backend.
// The backend must be initialized with Init() before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWgpu
}

// Init creates the HAL instance and selects a GPU adapter.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	hb, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := hb.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("wgpu: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	b.instance = instance
	b.adapter = selected.Adapter
	b.adapterName = selected.Info.Name
	b.initialized = true

	backend.Logger().Info("wgpu: backend initialized", "adapter", b.adapterName)
	return nil
}

// Close releases the instance. Devices created by the backend must be
// destroyed before Close.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.adapter = nil
	b.adapterName = ""
	b.initialized = false

	backend.Logger().Debug("wgpu: backend closed")
}

// CreateDevice opens a logical device on the selected adapter.
func (b *Backend) CreateDevice() (render.Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}

	openDev, err := b.adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	return &Device{
		device: openDev.Device,
		queue:  openDev.Queue,
		owned:  true,
		name:   b.adapterName,
	}, nil
}
