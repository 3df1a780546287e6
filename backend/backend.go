package backend

import (
	"errors"

	"github.com/gogpu/engine/render"
)

// Backend name constants.
const (
	// BackendNoop is the name of the headless recording backend.
	BackendNoop = "noop"
	// BackendWgpu is the name of the Pure Go GPU backend (gogpu/wgpu).
	BackendWgpu = "wgpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend creates GPU devices for the engine.
// It abstracts the device implementation, allowing the engine to run
// against real GPUs (wgpu) or fully headless (noop).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "noop", "wgpu").
	Name() string

	// Init initializes shared backend resources (instance, adapter).
	// It must be called before CreateDevice.
	Init() error

	// Close releases all backend resources.
	// Devices created by the backend must be destroyed first.
	Close()

	// CreateDevice opens a new device on the backend's adapter.
	CreateDevice() (render.Device, error)
}
