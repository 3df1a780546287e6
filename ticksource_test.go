// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSourceStopsOnTickError(t *testing.T) {
	wantErr := errors.New("tick failed")
	calls := 0
	err := TickerSource{Interval: time.Millisecond}.Run(context.Background(), func() error {
		calls++
		if calls == 3 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() = %v, want %v", err, wantErr)
	}
	if calls != 3 {
		t.Errorf("tick ran %d times, want 3 (loop must stop on first error)", calls)
	}
}

func TestTickerSourceCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- TickerSource{Interval: time.Millisecond}.Run(ctx, func() error {
			if calls.Add(1) == 2 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if calls.Load() < 2 {
		t.Errorf("tick ran %d times before cancel, want >= 2", calls.Load())
	}
}

func TestTickerSourceDefaultInterval(t *testing.T) {
	// Zero interval falls back to DefaultTickInterval; the loop must
	// still tick.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- TickerSource{}.Run(ctx, func() error {
			cancel()
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("default-interval ticker never ticked")
	}
}

func TestStepSourceNotRunning(t *testing.T) {
	src := &StepSource{}
	if err := src.Step(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Step() before Run = %v, want ErrNotRunning", err)
	}
}

func TestStepSource(t *testing.T) {
	src := &StepSource{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, func() error {
			calls.Add(1)
			return nil
		})
	}()

	// Wait for Run to bind the tick.
	deadline := time.Now().Add(5 * time.Second)
	for src.Step() != nil {
		if time.Now().After(deadline) {
			t.Fatal("Run never bound the tick")
		}
		time.Sleep(time.Millisecond)
	}

	before := calls.Load()
	if err := src.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if err := src.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got := calls.Load(); got != before+2 {
		t.Errorf("tick ran %d times, want %d (one per Step)", got, before+2)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if err := src.Step(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Step() after Run returned = %v, want ErrNotRunning", err)
	}
}

func TestStepSourceTickError(t *testing.T) {
	src := &StepSource{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wantErr := errors.New("tick failed")
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, func() error { return wantErr })
	}()

	// The tick's error surfaces from Step; Run keeps parking until the
	// caller decides to stop.
	deadline := time.Now().Add(5 * time.Second)
	for {
		err := src.Step()
		if errors.Is(err, wantErr) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Step() = %v, want %v", err, wantErr)
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
