// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package loader runs background content-loading tasks for the engine.
package loader

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// queueSize is the per-worker queue capacity. The engine queues one task
// per game system, so the queues never saturate in practice; the size only
// bounds memory for hosts that submit their own work.
const queueSize = 64

// Pool executes fire-and-forget tasks on a fixed set of workers.
//
// Tasks are distributed round-robin across per-worker queues. An idle
// worker steals from its neighbors before blocking, so one slow load does
// not starve the tasks queued behind it.
//
// Pool is safe for concurrent use.
type Pool struct {
	queues []chan func()
	done   chan struct{}
	next   atomic.Uint32

	workers sync.WaitGroup
	tasks   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		queues: make([]chan func(), workers),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.workers.Add(workers)
	for i := range p.queues {
		go p.run(i)
	}
	return p
}

// Go queues fn for execution and returns immediately. It reports whether
// the task was accepted; a closed pool rejects all tasks.
func (p *Pool) Go(fn func()) bool {
	if fn == nil {
		return false
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.tasks.Add(1)
	p.mu.Unlock()

	i := int(p.next.Add(1)) % len(p.queues)
	select {
	case p.queues[i] <- fn:
		return true
	case <-p.done:
		p.tasks.Done()
		return false
	}
}

// Close stops accepting tasks, waits for every accepted task to finish,
// and joins the workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.tasks.Wait()
	close(p.done)
	p.workers.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return len(p.queues) }

// run is the worker loop: drain the own queue, steal when idle, block
// when there is nothing anywhere.
func (p *Pool) run(id int) {
	defer p.workers.Done()
	q := p.queues[id]

	for {
		select {
		case fn := <-q:
			p.exec(fn)
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			p.exec(fn)
			continue
		}

		select {
		case fn := <-q:
			p.exec(fn)
		case <-p.done:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

func (p *Pool) exec(fn func()) {
	defer p.tasks.Done()
	fn()
}
