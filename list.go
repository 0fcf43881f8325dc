// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package slang

import (
	"iter"

	"fortio.org/safecast"
)

// List is a finite, restartable view over one indexed reflection
// collection. The count is read once when the list is obtained; each
// element is fetched from the native layer on access.
//
// A List borrows from its CompiledRequest and must not be used after
// the request is closed.
type List[T any] struct {
	what string
	n    int
	at   func(index uint32) T
}

// newList wraps a native count and accessor. The native layer does no
// bounds checking, so every access goes through At.
func newList[T any, N uint32 | uint64](what string, count N, at func(uint32) T) List[T] {
	return List[T]{what: what, n: toInt(count), at: at}
}

// Len returns the number of elements.
func (l List[T]) Len() int { return l.n }

// At returns element i. It panics unless 0 <= i < Len().
func (l List[T]) At(i int) T {
	if i < 0 || i >= l.n {
		precondition("%s index %d out of range [0,%d)", l.what, i, l.n)
	}
	return l.at(toUint32(i))
}

// All yields index/element pairs in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.n {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.n {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Collect copies every element into a slice.
func (l List[T]) Collect() []T {
	out := make([]T, 0, l.n)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

func toInt[N uint32 | uint64 | int32](v N) int {
	n, err := safecast.Conv[int](v)
	if err != nil {
		precondition("native value %d does not fit in int", v)
	}
	return n
}

func toUint32(v int) uint32 {
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		precondition("index %d does not fit the native index type", v)
	}
	return n
}
