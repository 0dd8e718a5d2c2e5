// SPDX-License-Identifier: MIT
// Package operator: centralized validation checks.
//
// Purpose:
//  - Provide a single, canonical source of truth for dimension checks.
//  - Keep the apply facade minimal by delegating length guards here.
//  - Return the plain sentinel wrapped once with the offending slice's role,
//    so call sites stay uniform and errors.Is keeps matching.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - These guards run ONLY under WithChecks. The permissive default leaves
//    shape enforcement to the backend multiply kernel.

package operator

import "fmt"

// validateVecLen ensures len(got) == want for the slice playing the given
// role ("dst" or "src"). Returns ErrDimensionMismatch wrapped with context.
// Complexity: O(1).
func validateVecLen[T Scalar](role string, got []T, want int) error {
	if len(got) != want {
		return fmt.Errorf("%s: %w (len=%d, want %d)", role, ErrDimensionMismatch, len(got), want)
	}

	return nil
}

// validateApplyDims checks a generalized apply mapping src (length cols)
// to dst (length rows). Fixed sequence: dst first, then src.
func validateApplyDims[T Scalar](rows, cols int, dst, src []T) error {
	if err := validateVecLen("dst", dst, rows); err != nil {
		return err
	}

	return validateVecLen("src", src, cols)
}
