// SPDX-License-Identifier: MIT
// Package: hpf/pseudoflow
//
// errors.go — sentinel + typed errors for the five error kinds of the
// pseudoflow core contract.
//
// Error policy:
//   - Package-level sentinels are exposed for errors.Is matching.
//   - Where an error needs to carry offending data (an arc, a node), it is
//     a typed struct implementing error and wrapping the matching sentinel,
//     so errors.As yields the details.
//   - Validation happens before any pool allocation (see api.go), so a
//     caller never receives a partially constructed solver.
package pseudoflow

import (
	"errors"
	"fmt"
)

// Sentinel errors corresponding to the five error kinds of the core contract.
var (
	// ErrMultiplierPolaritySourceArc marks a source-adjacent arc whose
	// mult_cap is negative (capacity must be non-decreasing in λ on arcs
	// leaving the source).
	ErrMultiplierPolaritySourceArc = errors.New("pseudoflow: source-adjacent arc has negative mult_cap")

	// ErrMultiplierPolaritySinkArc marks a sink-adjacent arc whose mult_cap
	// is positive (capacity must be non-increasing in λ on arcs entering
	// the sink).
	ErrMultiplierPolaritySinkArc = errors.New("pseudoflow: sink-adjacent arc has positive mult_cap")

	// ErrNegativeResolvedCapacity marks a resolved capacity that went
	// negative at some λ in range, either on an internal arc (always
	// fatal) or on a source/sink arc with rounding disabled.
	ErrNegativeResolvedCapacity = errors.New("pseudoflow: resolved capacity is negative")

	// ErrMalformedInput marks a structurally invalid Input: bad node
	// count, out-of-range arc endpoints, or λ_low > λ_high.
	ErrMalformedInput = errors.New("pseudoflow: malformed input")

	// ErrInternalInvariant marks a debug-mode invariant violation; it
	// indicates a bug in the solver, never a caller error.
	ErrInternalInvariant = errors.New("pseudoflow: internal invariant violated")
)

// MultiplierPolarityError reports the offending arc for
// ErrMultiplierPolaritySourceArc / ErrMultiplierPolaritySinkArc.
type MultiplierPolarityError struct {
	From, To int
	MultCap  float64
	sentinel error
}

func (e *MultiplierPolarityError) Error() string {
	return fmt.Sprintf("pseudoflow: arc (%d,%d) has mult_cap=%g violating polarity: %v",
		e.From, e.To, e.MultCap, e.sentinel)
}

// Unwrap exposes the underlying sentinel for errors.Is/errors.As.
func (e *MultiplierPolarityError) Unwrap() error { return e.sentinel }

// CapacityError reports the offending arc and λ for ErrNegativeResolvedCapacity.
type CapacityError struct {
	From, To int
	Lambda   float64
	Capacity float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("pseudoflow: arc (%d,%d) resolves to capacity %g at λ=%g",
		e.From, e.To, e.Capacity, e.Lambda)
}

// Unwrap exposes ErrNegativeResolvedCapacity for errors.Is/errors.As.
func (e *CapacityError) Unwrap() error { return ErrNegativeResolvedCapacity }

// InputError reports the offending field for ErrMalformedInput.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("pseudoflow: %s: %v", e.Reason, ErrMalformedInput)
}

// Unwrap exposes ErrMalformedInput for errors.Is/errors.As.
func (e *InputError) Unwrap() error { return ErrMalformedInput }

// pseudoflowErrorf wraps an inner message with an operation prefix and the
// internal-invariant sentinel. Used for the rare internal diagnostics.
func pseudoflowErrorf(op, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", op, inner, ErrInternalInvariant)
}
