// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reactive

import "slices"

// Subscription detaches a listener from the value it was registered on.
type Subscription struct {
	dispose  func()
	disposed bool
}

func newSubscription(dispose func()) *Subscription {
	return &Subscription{dispose: dispose}
}

// Dispose detaches the listener. Calling it more than once, or on a nil
// Subscription, is a no-op.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.dispose != nil {
		s.dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed
}

type listener[T any] struct {
	fn     func(T)
	active bool
}

// listeners keeps callbacks in registration order.
type listeners[T any] struct {
	entries []*listener[T]
}

func (l *listeners[T]) add(fn func(T)) *Subscription {
	entry := &listener[T]{fn: fn, active: true}
	l.entries = append(l.entries, entry)

	return newSubscription(func() {
		entry.active = false
		l.entries = slices.DeleteFunc(l.entries, func(e *listener[T]) bool {
			return e == entry
		})
	})
}

// notify runs a snapshot of the current listeners. Listeners added while
// notifying are not called in this round; listeners removed while notifying
// are skipped.
func (l *listeners[T]) notify(v T) {
	for _, entry := range slices.Clone(l.entries) {
		if entry.active {
			entry.fn(v)
		}
	}
}

func (l *listeners[T]) len() int {
	return len(l.entries)
}
