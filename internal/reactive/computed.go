// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reactive

// Computed is a derived reactive value. Its read function is evaluated once
// at construction and again, synchronously, every time a dependency read
// during the previous evaluation changes. Dependencies are re-collected on
// every evaluation, so conditional reads are tracked correctly.
//
// Subscribers are notified only when the computed value actually changes.
type Computed[T comparable] struct {
	read     func() T
	value    T
	subs     listeners[T]
	deps     []*Subscription
	running  bool
	disposed bool
}

// NewComputed creates a Computed and evaluates read immediately.
func NewComputed[T comparable](read func() T) *Computed[T] {
	c := &Computed[T]{read: read}
	c.value = c.evaluate()
	return c
}

// Get returns the cached value and registers the computed as a dependency of
// the enclosing Computed.
func (c *Computed[T]) Get() T {
	track(c)
	return c.value
}

// Peek returns the cached value without dependency tracking.
func (c *Computed[T]) Peek() T {
	return c.value
}

// Subscribe registers fn to run whenever the computed value changes.
func (c *Computed[T]) Subscribe(fn func(T)) *Subscription {
	return c.subs.add(fn)
}

// Dependencies returns the number of values the last evaluation read.
func (c *Computed[T]) Dependencies() int {
	return len(c.deps)
}

// Dispose detaches the computed from its dependencies. The cached value is
// kept but never recomputed again. Dispose is idempotent.
func (c *Computed[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.release()
}

// Disposed reports whether Dispose has been called.
func (c *Computed[T]) Disposed() bool {
	return c.disposed
}

func (c *Computed[T]) watch(fn func()) *Subscription {
	return c.subs.add(func(T) { fn() })
}

func (c *Computed[T]) release() {
	for _, sub := range c.deps {
		sub.Dispose()
	}
	c.deps = nil
}

// evaluate runs read, replaces the dependency subscriptions and returns the
// fresh value.
func (c *Computed[T]) evaluate() T {
	c.running = true
	value, deps := collect(c.read)
	c.running = false

	c.release()
	for _, dep := range deps {
		c.deps = append(c.deps, dep.watch(c.recompute))
	}

	return value
}

func (c *Computed[T]) recompute() {
	// a write performed by read itself must not re-enter
	if c.disposed || c.running {
		return
	}

	next := c.evaluate()
	if next == c.value {
		return
	}
	c.value = next
	c.subs.notify(next)
}
