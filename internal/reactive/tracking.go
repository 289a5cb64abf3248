// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reactive

// dependency is anything a Computed can depend on.
type dependency interface {
	watch(fn func()) *Subscription
}

type frame struct {
	seen  map[dependency]struct{}
	order []dependency
}

// frames is the stack of evaluations in progress; the top frame records the
// reads of the innermost Computed.
var frames []*frame

func track(d dependency) {
	if len(frames) == 0 {
		return
	}
	f := frames[len(frames)-1]
	if _, ok := f.seen[d]; ok {
		return
	}
	f.seen[d] = struct{}{}
	f.order = append(f.order, d)
}

// collect runs read with a fresh tracking frame and returns the result along
// with every dependency read, in first-read order.
func collect[T any](read func() T) (value T, deps []dependency) {
	f := &frame{seen: make(map[dependency]struct{})}
	frames = append(frames, f)
	defer func() {
		frames = frames[:len(frames)-1]
	}()

	value = read()
	return value, f.order
}

// Untracked runs fn without recording dependencies for the enclosing
// Computed.
func Untracked[T any](fn func() T) T {
	saved := frames
	frames = nil
	defer func() {
		frames = saved
	}()

	return fn()
}
