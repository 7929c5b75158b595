// SPDX-License-Identifier: MIT
// File: separate.go
// Role: split a state into distinguishable, annotation-free sub-states.
//
// Policy: greedy, single pass over photons in encoded order. Each photon
// joins the first group whose representative annotation is compatible
// with its own; the group's representative becomes the merge. Otherwise
// the photon opens a new group. Compatibility need not be transitive, so
// the grouping may depend on photon order. This is intended.

package fock

import "github.com/katalvlaran/fockspace/annotation"

// Separate partitions s into annotation-homogeneous sub-states.
//
// A single group (including the photon-free case) yields a copy of s with
// annotations cleared. Several groups yield one annotation-free state per
// group, in group creation order, holding that group's photons in their
// original modes. Fails with ErrUndefined on an undefined s.
//
// Complexity: O(N·G) compatibility tests for G groups.
func (s State) Separate() ([]State, error) {
	if !s.code.defined() {
		return nil, ErrUndefined
	}
	if s.n == 0 {
		return []State{s.bare()}, nil
	}

	type group struct {
		rep     annotation.Annotation
		photons []int
	}
	var groups []group
	for k, a := range s.photonAnnotations() {
		joined := false
		for g := range groups {
			if merged, ok := compatible(groups[g].rep, a); ok {
				groups[g].rep = merged
				groups[g].photons = append(groups[g].photons, k)
				joined = true
				break
			}
		}
		if !joined {
			groups = append(groups, group{rep: a, photons: []int{k}})
		}
	}

	if len(groups) == 1 {
		return []State{s.bare()}, nil
	}
	out := make([]State, 0, len(groups))
	for _, g := range groups {
		counts := make([]int, s.m)
		for _, k := range g.photons {
			counts[s.code.modes[k]]++
		}
		out = append(out, fromCounts(counts))
	}

	return out, nil
}

// bare returns a deep copy of s without annotations.
func (s State) bare() State {
	out := s.Clone()
	out.ClearAnnotations()

	return out
}

// compatible treats a missing or empty annotation as compatible with
// anything, then defers to the collaborator.
func compatible(rep, a annotation.Annotation) (annotation.Annotation, bool) {
	if a == nil || a.String() == "" {
		return rep, true
	}
	if rep == nil || rep.String() == "" {
		return a, true
	}

	return rep.Compatible(a)
}
