// SPDX-License-Identifier: MIT

// Package storage: the Arena contract and the default heap-backed family.
//
// Purpose:
//   - Declare the canonical Get/Put surface consumed by the operator core.
//   - Provide Heap, the zero-state default that every other arena must be
//     substitutable for.
//
// Notes:
//   - Get returns zeroed memory; this is part of the contract, not a
//     convenience. Callers accumulate into scratch without clearing it.
//   - Put is advisory: an arena may recycle the buffer or ignore it.

package storage

// Arena hands out temporary vectors of length n and optionally takes them
// back. It identifies the container family backing an operator's internal
// scratch, so a pooled or memory-mapped family can be substituted without
// touching operator logic.
//
// Contract:
//   - Get(n) returns a zeroed slice of length exactly n.
//   - Put(buf) releases buf back to the arena; buf must not be used after.
//   - Put accepts any slice, including ones the arena did not hand out
//     (such slices are simply dropped).
type Arena[T any] interface {
	// Get returns a zeroed scratch slice of length n.
	// Complexity: O(n) worst case (allocation or clearing).
	Get(n int) []T

	// Put returns buf to the arena for possible reuse. May be a no-op.
	// Complexity: O(1).
	Put(buf []T)
}

// Heap is the default arena: every Get is a fresh make, every Put is a
// no-op and the garbage collector reclaims scratch. It holds no state, so
// a single Heap value is safe for concurrent use from any number of
// goroutines.
type Heap[T any] struct{}

// Get returns a freshly allocated, zeroed slice of length n.
func (Heap[T]) Get(n int) []T { return make([]T, n) }

// Put is a no-op; the garbage collector owns the buffer.
func (Heap[T]) Put([]T) {}
