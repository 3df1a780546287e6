// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "errors"

// Errors returned by Game lifecycle operations.
var (
	// ErrNotInitialized is returned by Tick before Initialize has run.
	ErrNotInitialized = errors.New("engine: not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize call.
	ErrAlreadyInitialized = errors.New("engine: already initialized")

	// ErrRunning is returned when a system is registered after the game
	// has initialized; the set of systems is fixed from then on.
	ErrRunning = errors.New("engine: already running")

	// ErrNilSystem is returned when a nil system is registered.
	ErrNilSystem = errors.New("engine: nil system")

	// ErrDisposed is returned by operations on a disposed game.
	ErrDisposed = errors.New("engine: disposed")

	// ErrNotRunning is returned by StepSource.Step outside Run.
	ErrNotRunning = errors.New("engine: tick source not running")
)
