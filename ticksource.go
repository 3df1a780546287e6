// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is the tick interval Run uses unless configured
// otherwise: 60 frames per second.
const DefaultTickInterval = time.Second / 60

// TickSource binds the frame loop to the host's frame cadence.
//
// Run invokes tick once per frame, never concurrently with itself,
// until ctx is canceled or tick fails. The engine ships two sources:
// TickerSource for self-paced loops and StepSource for hosts that own
// the frame callback. Hosts with their own draw callback (a windowing
// toolkit's OnDraw) can also skip Run entirely and call Game.Tick
// directly.
type TickSource interface {
	// Run invokes tick repeatedly. It returns ctx.Err() once ctx is
	// canceled, or the first error tick returns.
	Run(ctx context.Context, tick func() error) error
}

// TickerSource invokes the tick at a fixed wall-clock interval.
//
// Frames that run longer than the interval delay subsequent ticks; the
// ticker drops missed beats rather than bursting to catch up.
type TickerSource struct {
	// Interval is the time between ticks. Zero or negative means
	// DefaultTickInterval.
	Interval time.Duration
}

// Run implements TickSource.
func (s TickerSource) Run(ctx context.Context, tick func() error) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := tick(); err != nil {
				return err
			}
		}
	}
}

// StepSource hands tick pacing to the caller: each Step runs exactly
// one tick. Tests and externally-paced loops use it to drive frames
// deterministically.
//
// Run parks until ctx is canceled; tick errors are returned from Step,
// where the pacing caller can decide what ends the loop.
type StepSource struct {
	mu   sync.Mutex
	tick func() error
}

// Run implements TickSource.
func (s *StepSource) Run(ctx context.Context, tick func() error) error {
	s.mu.Lock()
	s.tick = tick
	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	s.tick = nil
	s.mu.Unlock()
	return ctx.Err()
}

// Step runs one tick and returns its error. Before Run has been entered
// (or after it returned) Step fails with ErrNotRunning.
func (s *StepSource) Step() error {
	s.mu.Lock()
	tick := s.tick
	s.mu.Unlock()
	if tick == nil {
		return ErrNotRunning
	}
	return tick()
}
