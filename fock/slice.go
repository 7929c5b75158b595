// SPDX-License-Identifier: MIT
// File: slice.go
// Role: sub-range extraction and replacement.
//
// Index normalization follows Python slices: negative start/end count
// from the end (+modeCount), then both are clamped into [0, modeCount].

package fock

import "fmt"

// window normalizes start/end and counts the modes a slice visits.
func (s State) window(start, end, step int) (int, int, int, error) {
	if !s.code.defined() {
		return 0, 0, 0, ErrUndefined
	}
	if step <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: step=%d", ErrBadStep, step)
	}
	if start < 0 {
		start += s.m
	}
	if end < 0 {
		end += s.m
	}
	start = min(max(start, 0), s.m)
	end = min(max(end, 0), s.m)

	visited := 0
	for i := start; i < end; i += step {
		visited++
	}

	return start, end, visited, nil
}

// Slice extracts modes start, start+step, … below end into a new state.
// Mode i of the source becomes mode (i-start)/step of the result; photons
// keep their order. Annotations are not carried over.
//
// Complexity: O(M/step + N).
func (s State) Slice(start, end, step int) (State, error) {
	start, end, m, err := s.window(start, end, step)
	if err != nil {
		return State{}, err
	}
	var modes []int
	for _, mode := range s.code.modes {
		if mode >= start && mode < end && (mode-start)%step == 0 {
			modes = append(modes, (mode-start)/step)
		}
	}

	return fromModes(m, modes), nil
}

// SetSlice returns a copy of s whose modes [start, end) are replaced by
// r. r must span exactly as many modes as the range (ErrSliceMismatch
// otherwise) and be defined. Photons below start and from end on are kept
// as is; r's photons are shifted by start. Since r is itself sorted and
// lands inside [start, end), the result is sorted without further checks.
// Annotations are not carried over.
//
// Complexity: O(M + N).
func (s State) SetSlice(r State, start, end int) (State, error) {
	start, end, m, err := s.window(start, end, 1)
	if err != nil {
		return State{}, err
	}
	if !r.code.defined() {
		return State{}, fmt.Errorf("replacement: %w", ErrUndefined)
	}
	if r.m != m {
		return State{}, fmt.Errorf("%w: replacement has %d modes, range [%d,%d) holds %d",
			ErrSliceMismatch, r.m, start, end, m)
	}

	src := s.code.modes
	modes := make([]int, 0, len(src)+len(r.code.modes))
	i := 0
	for ; i < len(src) && src[i] < start; i++ {
		modes = append(modes, src[i])
	}
	for _, mode := range r.code.modes {
		modes = append(modes, mode+start)
	}
	for i < len(src) && src[i] < end {
		i++
	}
	modes = append(modes, src[i:]...)
	if err = checkPhotons(len(modes)); err != nil {
		return State{}, err
	}

	return fromModes(s.m, modes), nil
}
