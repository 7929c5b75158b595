// SPDX-License-Identifier: MIT
// File: annotations.go
// Role: per-mode annotation storage and per-photon lookup.
//
// Storage: mode -> ordered groups {count, annotation}. Within a mode the
// first count1 photons carry the first annotation, the next count2 the
// second, and so on; photons past the annotated total carry none (nil).
// Updates build a new map so copies of a State never observe them.

package fock

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/fockspace/annotation"
)

// polarizationKey is the Tags key used for polarization.
const polarizationKey = "P"

// ModeAnnotations returns the annotations of mode, one entry per annotated
// photon, in storage order.
func (s State) ModeAnnotations(mode int) ([]annotation.Annotation, error) {
	if mode < 0 || mode >= s.m {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrModeIndex, mode, s.m)
	}
	var out []annotation.Annotation
	for _, g := range s.annots[mode] {
		for j := 0; j < g.count; j++ {
			out = append(out, g.annot)
		}
	}

	return out, nil
}

// SetModeAnnotations replaces the annotations of mode with list, one entry
// per photon. Entries with the same canonical text merge into one group;
// entries rendering to "" are skipped. Fails with ErrModeIndex,
// ErrUndefined, or ErrTooManyAnnotations when list annotates more photons
// than the mode holds.
func (s *State) SetModeAnnotations(mode int, list []annotation.Annotation) error {
	if mode < 0 || mode >= s.m {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrModeIndex, mode, s.m)
	}
	if !s.code.defined() {
		return ErrUndefined
	}
	var groups []annotGroup
	total := 0
	for _, a := range list {
		if a == nil || a.String() == "" {
			continue
		}
		groups = mergeGroup(groups, annotGroup{count: 1, annot: a})
		total++
	}
	if have, _ := s.At(mode); total > have {
		return fmt.Errorf("%w: %d annotations for %d photons in mode %d",
			ErrTooManyAnnotations, total, have, mode)
	}

	next := maps.Clone(s.annots)
	if next == nil {
		next = make(map[int][]annotGroup)
	}
	if len(groups) == 0 {
		delete(next, mode)
	} else {
		next[mode] = groups
	}
	if len(next) == 0 {
		next = nil
	}
	s.annots = next

	return nil
}

// ClearAnnotations drops every annotation.
func (s *State) ClearAnnotations() { s.annots = nil }

// HasAnnotations reports whether any photon is annotated.
func (s State) HasAnnotations() bool { return len(s.annots) > 0 }

// HasPolarization reports whether any annotation carries a "P" key.
func (s State) HasPolarization() bool {
	type getter interface {
		Get(key string) (string, bool)
	}
	for _, groups := range s.annots {
		for _, g := range groups {
			if t, ok := g.annot.(getter); ok {
				if _, ok = t.Get(polarizationKey); ok {
					return true
				}
			}
		}
	}

	return false
}

// PhotonAnnotation returns the annotation of the k-th photon in encoded
// order, or nil when it has none.
func (s State) PhotonAnnotation(k int) (annotation.Annotation, error) {
	mode, err := s.Photon2Mode(k)
	if err != nil {
		return nil, err
	}
	first := k
	for first > 0 && s.code.modes[first-1] == mode {
		first--
	}

	return groupAt(s.annots[mode], k-first), nil
}

// photonAnnotations returns every photon's annotation in encoded order.
// The state must be defined.
func (s State) photonAnnotations() []annotation.Annotation {
	out := make([]annotation.Annotation, len(s.code.modes))
	if len(s.annots) == 0 {
		return out
	}
	inMode := 0
	for k, mode := range s.code.modes {
		if k > 0 && s.code.modes[k-1] != mode {
			inMode = 0
		}
		out[k] = groupAt(s.annots[mode], inMode)
		inMode++
	}

	return out
}

// groupAt returns the annotation covering the j-th photon of a mode.
func groupAt(groups []annotGroup, j int) annotation.Annotation {
	for _, g := range groups {
		if j < g.count {
			return g.annot
		}
		j -= g.count
	}

	return nil
}
