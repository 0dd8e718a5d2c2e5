// SPDX-License-Identifier: MIT
// Package operator: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// operator package. All apply paths MUST return these sentinels and tests
// MUST check them via errors.Is. No apply path panics on user-triggered
// error conditions; panics are reserved for programmer errors in the
// factories (nil mandatory callbacks) with stable message constants.

package operator

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "operator: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.

var (
	// ErrNoTranspose is returned by ApplyTranspose when the operator was
	// built without a transpose callback and no symmetry fallback applies.
	ErrNoTranspose = errors.New("operator: transpose not supported")

	// ErrNoAdjoint is returned by ApplyAdjoint when the operator was built
	// without an adjoint callback and no symmetry fallback applies.
	ErrNoAdjoint = errors.New("operator: adjoint not supported")

	// ErrDimensionMismatch indicates dst/src lengths incompatible with the
	// operator's shape. Surfaces only under WithChecks; the permissive
	// default leaves shape policing to the backend kernel.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")
)
