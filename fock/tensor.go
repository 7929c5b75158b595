// SPDX-License-Identifier: MIT

package fock

import "fmt"

// Tensor composes s (modes 0..Ms-1) with o (modes 0..Mo-1) into a state
// over Ms+Mo modes: s's photons unchanged, o's photons shifted by Ms.
// Annotations are not carried over. Fails with ErrUndefined when either
// operand is undefined and ErrTooManyPhotons above MaxPhotons.
//
// Complexity: O(Ns + No).
func (s State) Tensor(o State) (State, error) {
	if !s.code.defined() || !o.code.defined() {
		return State{}, ErrUndefined
	}
	if err := checkPhotons(s.n + o.n); err != nil {
		return State{}, fmt.Errorf("tensor: %w", err)
	}
	modes := make([]int, 0, len(s.code.modes)+len(o.code.modes))
	modes = append(modes, s.code.modes...)
	for _, mode := range o.code.modes {
		modes = append(modes, mode+s.m)
	}

	return fromModes(s.m+o.m, modes), nil
}

// ProdNFact returns ∏ n_i! over the modes' photon counts n_i, the usual
// normalization factor of permanent-based amplitudes. An undefined state
// yields 1.
//
// Complexity: O(N).
func (s State) ProdNFact() uint64 {
	p := uint64(1)
	run := 1
	modes := s.code.modes
	for i := 1; i < len(modes); i++ {
		if modes[i] != modes[i-1] {
			run = 1
			continue
		}
		run++
		p *= uint64(run)
	}

	return p
}
