// SPDX-License-Identifier: MIT
// File: construct.go
// Role: State constructors and copy.

package fock

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fockspace/annotation"
)

// MaxPhotons caps the photon count of any state. Storage holds one int per
// photon, so the cap bounds a single state at 128 MiB.
const MaxPhotons = 1 << 24

// checkPhotons fails with ErrTooManyPhotons above MaxPhotons.
func checkPhotons(n int) error {
	if n > MaxPhotons {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPhotons, n, MaxPhotons)
	}

	return nil
}

// New returns the first state of the (m, n) enumeration: every photon in
// mode 0. Photons require at least one mode.
//
// Complexity: O(n).
func New(m, n int) (State, error) {
	if m < 0 || n < 0 {
		return State{}, fmt.Errorf("%w: m=%d n=%d", ErrNegativeCount, m, n)
	}
	if n > 0 && m == 0 {
		return State{}, fmt.Errorf("%w: %d photons in zero modes", ErrModeIndex, n)
	}
	if err := checkPhotons(n); err != nil {
		return State{}, err
	}

	return State{m: m, n: n, code: owned(make([]int, n))}, nil
}

// NewUndefined returns an undefined state over m modes. Negative m is
// treated as zero.
func NewUndefined(m int) State {
	return State{m: max(m, 0)}
}

// FromCounts builds a state from per-mode photon counts: counts[i] photons
// in mode i. WithAnnotations attaches annotations.
//
// Complexity: O(M + N).
func FromCounts(counts []int, opts ...Option) (State, error) {
	n := 0
	for i, c := range counts {
		if c < 0 {
			return State{}, fmt.Errorf("%w: mode %d holds %d photons", ErrNegativeCount, i, c)
		}
		if c > MaxPhotons-n {
			return State{}, checkPhotons(n + min(c, MaxPhotons+1))
		}
		n += c
	}
	s := fromCounts(counts)
	if err := s.applyAnnotations(newConfig(opts...)); err != nil {
		return State{}, err
	}

	return s, nil
}

// fromCounts expands validated counts (non-negative, total within
// MaxPhotons) into a sorted code.
func fromCounts(counts []int) State {
	n := 0
	for _, c := range counts {
		n += c
	}
	modes := make([]int, 0, n)
	for mode, c := range counts {
		for j := 0; j < c; j++ {
			modes = append(modes, mode)
		}
	}

	return State{m: len(counts), n: n, code: owned(modes)}
}

// fromModes wraps a freshly built, sorted photon sequence.
func fromModes(m int, modes []int) State {
	return State{m: m, n: len(modes), code: owned(modes)}
}

// Clone returns a deep copy: a fresh buffer (or the shared vacuum) and
// copied annotation lists.
func (s State) Clone() State {
	out := State{m: s.m, n: s.n, code: s.code.clone()}
	if len(s.annots) > 0 {
		out.annots = make(map[int][]annotGroup, len(s.annots))
		for mode, l := range s.annots {
			out.annots[mode] = append([]annotGroup(nil), l...)
		}
	}

	return out
}

// applyAnnotations parses and attaches cfg.annotations in mode order.
func (s *State) applyAnnotations(cfg config) error {
	if len(cfg.annotations) == 0 {
		return nil
	}
	modes := make([]int, 0, len(cfg.annotations))
	for mode := range cfg.annotations {
		modes = append(modes, mode)
	}
	sort.Ints(modes)

	for _, mode := range modes {
		texts := cfg.annotations[mode]
		list := make([]annotation.Annotation, 0, len(texts))
		for _, text := range texts {
			a, err := cfg.parseAnnotation(text)
			if err != nil {
				return fmt.Errorf("fock: annotation %q for mode %d: %w", text, mode, err)
			}
			list = append(list, a)
		}
		if err := s.SetModeAnnotations(mode, list); err != nil {
			return err
		}
	}

	return nil
}
