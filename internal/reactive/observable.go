// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reactive

// Readable is a reactive value that can be read and observed.
//
// Get records the value as a dependency of the Computed currently being
// evaluated, if any. Subscribe registers fn to run after each subsequent
// change; it is never called at registration time.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) *Subscription
}

// Observable is a mutable reactive value.
type Observable[T any] struct {
	value T
	subs  listeners[T]
}

// NewObservable creates an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value and registers the observable as a
// dependency of the enclosing Computed.
func (o *Observable[T]) Get() T {
	track(o)
	return o.value
}

// Peek returns the current value without dependency tracking.
func (o *Observable[T]) Peek() T {
	return o.value
}

// Set stores v and synchronously notifies every subscriber, even when v
// equals the previous value.
func (o *Observable[T]) Set(v T) {
	o.value = v
	o.subs.notify(v)
}

// Subscribe registers fn to run on every subsequent Set.
func (o *Observable[T]) Subscribe(fn func(T)) *Subscription {
	return o.subs.add(fn)
}

// Subscribers returns the number of active subscriptions.
func (o *Observable[T]) Subscribers() int {
	return o.subs.len()
}

func (o *Observable[T]) watch(fn func()) *Subscription {
	return o.subs.add(func(T) { fn() })
}
