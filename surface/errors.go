// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrNilDevice is returned when a surface is created without a device.
	ErrNilDevice = errors.New("surface: nil device")

	// ErrNilContext is returned when BeginDraw is called without a
	// device context.
	ErrNilContext = errors.New("surface: nil device context")

	// ErrDisposed is returned by operations on a disposed surface.
	ErrDisposed = errors.New("surface: disposed")
)

// UnsupportedKindError indicates a target kind no surface variant handles.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return "surface: unsupported kind: " + e.Kind.String()
}

// DeviceRemovedError indicates the GPU device was lost while drawing or
// presenting. The surface and its device must be destroyed and recreated;
// the engine never recovers a removed device on its own.
type DeviceRemovedError struct {
	// Cause is the sticky removal error reported by the device.
	Cause error
}

func (e *DeviceRemovedError) Error() string {
	return fmt.Sprintf("surface: device removed: %v", e.Cause)
}

// Unwrap returns the underlying device error.
func (e *DeviceRemovedError) Unwrap() error {
	return e.Cause
}
