// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: a non-negative monetary amount with fixed two-digit fractional precision
//
// Both types follow the same contract: the zero value is invalid and every instance
// must be created through a constructor function that enforces the type's invariants.
package kernel
