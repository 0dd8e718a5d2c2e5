// SPDX-License-Identifier: MIT
// Package matop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matop package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is.

package matop

import "errors"

// ErrShape is returned by the tridiagonal constructors when the diagonal
// and off-diagonal slices disagree: a matrix of order n carries exactly
// n−1 off-diagonal entries. The raw-slice surface makes this the one
// misuse that would otherwise fail silently, so it is guarded here.
var ErrShape = errors.New("matop: diagonal/off-diagonal length mismatch")
