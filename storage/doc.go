// Package storage provides scratch-vector arenas for the operator core.
//
// The storage package provides:
//
//   - Arena[T], the minimal Get/Put contract every scratch allocator obeys.
//   - Heap[T], the zero-configuration arena backed by plain make — a fresh,
//     garbage-collected slice on every Get.
//   - Pool[T], a sync.Pool-backed arena that recycles slices between applies
//     on hot paths.
//   - Mapped[T], a file-backed memory-mapped bump arena for scratch vectors
//     too large to keep on the Go heap.
//
// Every arena hands back zeroed memory: adapters that compute a plain
// product into scratch may accumulate into it without clearing first, and a
// recycled buffer can never leak values from a previous apply.
//
// Choose Heap unless profiling says otherwise; it is the only arena that is
// both concurrency-safe and allocation-transparent.
package storage
