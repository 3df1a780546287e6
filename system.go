// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"sync"
)

// System is a lifecycle participant driven by the frame driver.
//
// The driver invokes the hooks in fixed phases: Initialize once, then
// per tick Update, BeginDraw, Draw, and EndDraw, and finally Dispose.
// Within every phase systems run in registration order, so a system may
// rely on everything registered before it being up to date.
//
// LoadContent is the exception: it runs on a background worker,
// concurrently with other systems' loads and with the tick loop. A
// system must tolerate Draw before its content has finished loading and
// skip the work that is not ready; the ctx is canceled when the game is
// disposed.
type System interface {
	// Initialize prepares the system. It runs once, synchronously, in
	// registration order; an error aborts initialization of the game.
	Initialize(g *Game) error

	// LoadContent loads the system's assets. It runs concurrently with
	// other loads and with ticking; the frame loop never waits for it.
	LoadContent(ctx context.Context) error

	// Update advances the system's simulation state.
	Update(t GameTime) error

	// BeginDraw prepares the system for drawing, after the surface has
	// bound and cleared the frame's render targets.
	BeginDraw() error

	// Draw records the system's rendering for this tick.
	Draw(t GameTime) error

	// EndDraw finishes the system's drawing, before the frame is
	// flushed and presented.
	EndDraw()

	// Dispose releases the system's resources.
	Dispose()
}

// BaseSystem is a System with every hook implemented as a no-op. Embed
// it to implement only the hooks a system needs:
//
//	type spinner struct {
//	    engine.BaseSystem
//	    angle float64
//	}
//
//	func (s *spinner) Update(t engine.GameTime) error {
//	    s.angle += t.Seconds()
//	    return nil
//	}
type BaseSystem struct{}

func (BaseSystem) Initialize(*Game) error            { return nil }
func (BaseSystem) LoadContent(context.Context) error { return nil }
func (BaseSystem) Update(GameTime) error             { return nil }
func (BaseSystem) BeginDraw() error                  { return nil }
func (BaseSystem) Draw(GameTime) error               { return nil }
func (BaseSystem) EndDraw()                          {}
func (BaseSystem) Dispose()                          {}

// Systems is the ordered registry of a game's systems.
//
// Registration order is the invocation order for every phase and never
// changes. The set is sealed when the game initializes; registering
// afterwards fails with ErrRunning.
type Systems struct {
	mu     sync.Mutex
	list   []System
	sealed bool
}

// Append registers sys behind the already-registered systems.
func (s *Systems) Append(sys System) error {
	if sys == nil {
		return ErrNilSystem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return ErrRunning
	}
	s.list = append(s.list, sys)
	return nil
}

// Len returns the number of registered systems.
func (s *Systems) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// At returns the system at registration position i.
func (s *Systems) At(i int) System {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list[i]
}

// seal fixes the set. After sealing the list never changes, so the
// driver iterates the returned slice without locking.
func (s *Systems) seal() []System {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sealed = true
	return s.list
}
