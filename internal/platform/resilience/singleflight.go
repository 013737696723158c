package resilience

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. Callers that
// arrive while a call is running share its result.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	done   chan struct{}
	val    T
	err    error
	dups   int
	shared bool
}

// PanicError is returned to every caller of a call whose fn panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("singleflight: call panicked: %v", e.Value)
}

// Do runs fn once per key at a time. shared reports whether the result was
// delivered to more than one caller.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (v T, err error, shared bool) {
	c, leader := g.join(key)
	if leader {
		g.run(key, c, fn)
		return c.val, c.err, c.shared
	}
	<-c.done
	return c.val, c.err, true
}

// DoContext is Do with fn running detached from the caller. A caller whose ctx
// ends stops waiting and gets ctx.Err(), while the call keeps running for the
// other callers. fn must bound its own lifetime.
func (g *SingleFlight[T]) DoContext(ctx context.Context, key string, fn func() (T, error)) (v T, err error, shared bool) {
	c, leader := g.join(key)
	if leader {
		go g.run(key, c, fn)
	}

	select {
	case <-c.done:
		return c.val, c.err, !leader || c.shared
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err(), !leader
	}
}

func (g *SingleFlight[T]) join(key string) (*call[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}
	if c, ok := g.calls[key]; ok {
		c.dups++
		return c, false
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	return c, true
}

// run always forgets the key, even when fn panics.
func (g *SingleFlight[T]) run(key string, c *call[T], fn func() (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			c.val = zero
			c.err = &PanicError{Value: r, Stack: debug.Stack()}
		}

		g.mu.Lock()
		delete(g.calls, key)
		c.shared = c.dups > 0
		g.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
}

// InFlight returns the number of keys with a running call.
func (g *SingleFlight[T]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// Waiters returns how many callers joined the running call for key.
func (g *SingleFlight[T]) Waiters(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.calls[key]; ok {
		return c.dups
	}
	return 0
}
