// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import "time"

// GameTime is the simulation time snapshot handed to every Update and
// Draw call of a tick. It is a value: systems read it, nobody but the
// clock writes it.
type GameTime struct {
	// ElapsedSinceLastTick is the time advanced by this tick.
	ElapsedSinceLastTick time.Duration

	// TotalElapsed is the simulation time accumulated since the clock
	// started, the exact sum of every tick's ElapsedSinceLastTick.
	TotalElapsed time.Duration
}

// Seconds returns the elapsed tick time in seconds, the unit most
// animation math wants.
func (t GameTime) Seconds() float64 {
	return t.ElapsedSinceLastTick.Seconds()
}

// TotalSeconds returns the total elapsed time in seconds.
func (t GameTime) TotalSeconds() float64 {
	return t.TotalElapsed.Seconds()
}

// Clock accumulates simulation time across ticks.
//
// Clock has a single writer: the frame driver ticks it once per frame
// under the tick lock, so the clock itself carries no synchronization.
// Accumulation is exact in integer nanoseconds; over any run of ticks
// the ElapsedSinceLastTick values sum to the growth of TotalElapsed.
type Clock struct {
	mark    time.Time
	total   time.Duration
	started bool
}

// NewClock creates a stopped clock. The first Tick establishes the
// baseline and reports zero elapsed time.
func NewClock() *Clock {
	return &Clock{}
}

// Tick advances the clock to now and returns the resulting GameTime.
//
// With now taken from time.Now, the monotonic reading makes the elapsed
// time non-negative regardless of wall-clock adjustments. A caller-
// supplied now earlier than the previous mark produces a negative
// elapsed value, which propagates into the total unclamped; consumers
// treat such a frame as degenerate but non-fatal.
func (c *Clock) Tick(now time.Time) GameTime {
	if !c.started {
		c.mark = now
		c.started = true
	}
	elapsed := now.Sub(c.mark)
	c.mark = now
	c.total += elapsed
	return GameTime{ElapsedSinceLastTick: elapsed, TotalElapsed: c.total}
}

// Step advances the clock by exactly d, ignoring wall time. Fixed-step
// games use Step for every tick and never mix it with Tick: Tick after
// Step would report the wall time spanning all the steps in between.
func (c *Clock) Step(d time.Duration) GameTime {
	c.started = true
	c.total += d
	return GameTime{ElapsedSinceLastTick: d, TotalElapsed: c.total}
}

// Reset restarts the elapsed baseline at now without touching the
// total. Called after a suspension so the first resumed tick does not
// report the entire pause as elapsed time.
func (c *Clock) Reset(now time.Time) {
	c.mark = now
	c.started = true
}

// Now returns the accumulated total without advancing the clock.
func (c *Clock) Now() GameTime {
	return GameTime{TotalElapsed: c.total}
}
