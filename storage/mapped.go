// SPDX-License-Identifier: MIT

// Package storage: file-backed memory-mapped bump arena.
//
// Purpose:
//   - Keep very large scratch vectors off the Go heap by mapping a
//     temporary file and bump-allocating slices out of the mapping.
//
// Notes:
//   - Single-goroutine discipline: the bump offset is unsynchronized.
//     Concurrent applies must not share one Mapped arena.
//   - Put honors stack discipline: returning the most recent Get rolls the
//     offset back; anything else is dropped until Reset.
//   - Requests that exceed the remaining capacity fall back to the heap,
//     so Get never fails.

package storage

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

const panicMappedClosed = "storage: Mapped: Get after Close"

// Mapped is a bump arena carved out of a memory-mapped temporary file.
// The element type T must not contain pointers.
type Mapped[T any] struct {
	file   *os.File
	mem    mmap.MMap
	data   []T // full-capacity view over mem
	off    int // next free element
	closed bool
}

// NewMapped creates (or truncates) the file at path, sizes it to capacity
// elements of T, and maps it read-write. The caller owns the arena and must
// Close it to release the mapping and remove the file.
//
// Returns ErrBadCapacity when capacity is not positive.
func NewMapped[T any](path string, capacity int) (*Mapped[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("NewMapped: %w (capacity=%d)", ErrBadCapacity, capacity)
	}

	var zero T
	itemSize := int64(unsafe.Sizeof(zero))

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("NewMapped: %w", err)
	}
	if err = file.Truncate(int64(capacity) * itemSize); err != nil {
		file.Close()

		return nil, fmt.Errorf("NewMapped: %w", err)
	}

	mem, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		file.Close()

		return nil, fmt.Errorf("NewMapped: %w", err)
	}

	return &Mapped[T]{
		file: file,
		mem:  mem,
		data: unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), capacity),
	}, nil
}

// Get bump-allocates a zeroed slice of length n from the mapping. When the
// remaining capacity is insufficient the request is served from the heap
// instead, so callers never observe failure. Panics after Close.
func (m *Mapped[T]) Get(n int) []T {
	if m.closed {
		panic(panicMappedClosed)
	}
	if n > len(m.data)-m.off {
		return make([]T, n)
	}

	buf := m.data[m.off : m.off+n : m.off+n]
	m.off += n
	clear(buf)

	return buf
}

// Put rolls the bump offset back when buf is the most recent allocation.
// Heap-fallback slices and out-of-order returns are dropped.
func (m *Mapped[T]) Put(buf []T) {
	if m.closed || len(buf) == 0 || len(buf) > m.off {
		return
	}
	if &buf[0] == &m.data[m.off-len(buf)] {
		m.off -= len(buf)
	}
}

// Reset forgets all outstanding allocations, making the full capacity
// available again. Slices handed out before Reset must not be used after.
func (m *Mapped[T]) Reset() {
	m.off = 0
}

// Cap returns the arena capacity in elements.
func (m *Mapped[T]) Cap() int { return len(m.data) }

// Close unmaps the arena, closes and removes the backing file. A second
// Close returns ErrClosed.
func (m *Mapped[T]) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.data = nil

	name := m.file.Name()
	if err := m.mem.Unmap(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}
	if err := m.file.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return os.Remove(name)
}
