// SPDX-License-Identifier: MIT
// Package fock: sentinel error set.
//
// Every message is prefixed with "fock:". Operations wrap a sentinel with
// fmt.Errorf("...: %w") when context helps; callers match with errors.Is.

package fock

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by every *ParseError.
	ErrParse = errors.New("fock: invalid fock state representation")

	// ErrUndefined indicates an operation that reads photon content was
	// attempted on an undefined state.
	ErrUndefined = errors.New("fock: cannot operate on undefined state")

	// ErrModeIndex indicates a mode index outside [0, modeCount).
	ErrModeIndex = errors.New("fock: mode index out of range")

	// ErrSliceMismatch indicates a replacement whose mode count differs
	// from the number of modes in the target range.
	ErrSliceMismatch = errors.New("fock: replacement does not match slice")

	// ErrNegativeCount indicates a negative mode, photon or step count.
	ErrNegativeCount = errors.New("fock: negative count")

	// ErrBadStep indicates a non-positive slice step.
	ErrBadStep = errors.New("fock: slice step must be > 0")

	// ErrPhotonIndex indicates a photon index outside [0, particleCount).
	ErrPhotonIndex = errors.New("fock: photon index out of range")

	// ErrTooManyPhotons indicates a state above MaxPhotons photons.
	ErrTooManyPhotons = errors.New("fock: too many photons")

	// ErrTooManyAnnotations indicates more annotations than photons in a mode.
	ErrTooManyAnnotations = errors.New("fock: more annotations than photons in mode")
)

// ParseError describes a grammar violation in Fock state text.
type ParseError struct {
	Input  string // full text given to Parse
	Offset int    // byte offset of the offending character
	Reason string // short description
	Err    error  // underlying cause, e.g. an annotation error; may be nil
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v %q at offset %d: %s", ErrParse, e.Input, e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrParse and, when present, the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}

	return []error{ErrParse}
}
