// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"sync/atomic"
)

// SceneSystem hosts a game's drawable content. New appends one as the
// last system, behind every user system, so scene drawing observes the
// updates of the same tick.
//
// Its draw work is gated on content readiness: until its LoadContent
// has finished, Draw does nothing. This is the skip-if-not-ready
// contract every content-dependent system must follow, since loading
// runs concurrently with the frame loop and is never awaited.
//
// What the scene draws is up to the game; the engine core only drives
// the lifecycle.
type SceneSystem struct {
	BaseSystem

	game   *Game
	ready  atomic.Bool
	frames atomic.Uint64
}

// Initialize captures the owning game.
func (s *SceneSystem) Initialize(g *Game) error {
	s.game = g
	return nil
}

// LoadContent marks the scene ready. The base scene has no assets of
// its own; games with content embed or wrap SceneSystem and load theirs
// before calling this.
func (s *SceneSystem) LoadContent(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.ready.Store(true)
	Logger().Debug("engine: scene ready")
	return nil
}

// Draw draws the scene. Before content is ready it is a no-op.
func (s *SceneSystem) Draw(GameTime) error {
	if !s.ready.Load() {
		return nil
	}
	s.frames.Add(1)
	return nil
}

// Dispose releases the scene. The scene stops drawing immediately.
func (s *SceneSystem) Dispose() {
	s.ready.Store(false)
	s.game = nil
}

// Ready reports whether the scene's content has finished loading.
func (s *SceneSystem) Ready() bool {
	return s.ready.Load()
}

// FramesDrawn returns how many frames the scene has drawn since its
// content became ready.
func (s *SceneSystem) FramesDrawn() uint64 {
	return s.frames.Load()
}
