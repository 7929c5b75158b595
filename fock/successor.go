// SPDX-License-Identifier: MIT
// File: successor.go
// Role: lexicographic enumeration of occupation patterns.
//
// Algorithm (multisets in lexicographic order):
//  1. Scan photons from the last one backwards for the right-most photon
//     whose mode is below m-1.
//  2. None found: the pattern is the last one; the state becomes undefined.
//  3. Otherwise increment that photon's mode and give every later photon
//     the same mode, keeping the sequence sorted.
//
// Starting from New(m, n) this visits exactly NumStates(m, n) states.

package fock

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
)

// Next returns the successor of s in enumeration order, or an undefined
// state of the same shape when s is the last pattern. Annotations are not
// carried over. Fails with ErrUndefined on an undefined s.
//
// Complexity: O(N), one fresh buffer.
func (s State) Next() (State, error) {
	return s.Advance(1)
}

// Advance applies the successor c times. It stops early, returning an
// undefined state, when fewer than c successors remain. Fails with
// ErrUndefined on an undefined s (even for c = 0) and ErrNegativeCount on
// c < 0.
//
// Complexity: O(c·N), one fresh buffer.
func (s State) Advance(c int) (State, error) {
	if !s.code.defined() {
		return State{}, ErrUndefined
	}
	if c < 0 {
		return State{}, fmt.Errorf("%w: advance by %d", ErrNegativeCount, c)
	}
	modes := make([]int, len(s.code.modes))
	copy(modes, s.code.modes)
	for ; c > 0; c-- {
		if !successor(modes, s.m) {
			return State{m: s.m, n: s.n}, nil
		}
	}

	return fromModes(s.m, modes), nil
}

// Inc replaces s by its successor (prefix ++).
func (s *State) Inc() error {
	next, err := s.Next()
	if err != nil {
		return err
	}
	*s = next

	return nil
}

// Step replaces s by s.Advance(c) (+=).
func (s *State) Step(c int) error {
	next, err := s.Advance(c)
	if err != nil {
		return err
	}
	*s = next

	return nil
}

// successor advances modes in place; false when modes was the last pattern.
func successor(modes []int, m int) bool {
	i := len(modes) - 1
	for i >= 0 && modes[i] == m-1 {
		i--
	}
	if i < 0 {
		return false
	}
	v := modes[i] + 1
	for j := i; j < len(modes); j++ {
		modes[j] = v
	}

	return true
}

// All yields every state of n photons over m modes, in enumeration order.
// Nothing is yielded for invalid (m, n).
func All(m, n int) iter.Seq[State] {
	return func(yield func(State) bool) {
		s, err := New(m, n)
		if err != nil {
			return
		}
		for s.Defined() {
			if !yield(s) {
				return
			}
			if s, err = s.Next(); err != nil {
				return
			}
		}
	}
}

// NumStates returns C(n+m-1, m-1), the number of ways to place n
// indistinguishable photons in m modes. NumStates(0, 0) is 1; any other
// placement into zero modes, or negative input, is 0. A count that does
// not fit in a uint64 saturates at math.MaxUint64.
//
// Each step computes C(t, i+1) = C(t, i)·(t-i)/(i+1) exactly in 128 bits.
// With k <= t/2 the partial binomials grow monotonically, so the first
// step whose quotient exceeds 64 bits proves the result does too.
func NumStates(m, n int) uint64 {
	if m < 0 || n < 0 {
		return 0
	}
	if m == 0 {
		if n == 0 {
			return 1
		}

		return 0
	}
	total, k := n+m-1, min(m-1, n)
	r := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(r, uint64(total-i))
		d := uint64(i + 1)
		if hi >= d {
			return math.MaxUint64
		}
		r, _ = bits.Div64(hi, lo, d)
	}

	return r
}
