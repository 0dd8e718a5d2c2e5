// SPDX-License-Identifier: MIT
// Package storage: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// storage package. All constructors MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for programmer errors
// (use-after-Close) with stable message constants.

package storage

import "errors"

var (
	// ErrBadCapacity is returned when a requested arena capacity is not a
	// positive element count. Constructors must validate before touching
	// the filesystem.
	ErrBadCapacity = errors.New("storage: capacity must be positive")

	// ErrClosed is returned by Close when the arena has already been
	// closed and its mapping released.
	ErrClosed = errors.New("storage: arena already closed")
)
