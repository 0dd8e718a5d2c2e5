// SPDX-License-Identifier: MIT

// Package storage: sync.Pool-backed arena for hot apply paths.
//
// Purpose:
//   - Avoid one allocation per apply when the same operator is driven in a
//     tight solver loop.
//
// Determinism & Performance:
//   - Get is amortized O(n) (clearing a recycled buffer, or allocating).
//   - The pool may drop buffers under GC pressure; correctness never
//     depends on a hit.

package storage

import "sync"

// Pool recycles scratch slices through a sync.Pool. Recycled buffers are
// cleared before being handed out again, preserving the zeroed-Get
// contract. Safe for concurrent use.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns an empty Pool arena.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Get returns a zeroed slice of length n, reusing a pooled buffer when one
// with sufficient capacity is available.
func (p *Pool[T]) Get(n int) []T {
	buf, _ := p.pool.Get().([]T)
	if cap(buf) < n {
		return make([]T, n)
	}
	buf = buf[:n]
	clear(buf)

	return buf
}

// Put returns buf to the pool for reuse by a later Get.
func (p *Pool[T]) Put(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.pool.Put(buf[:0]) // the slice header is the pooled unit
}
