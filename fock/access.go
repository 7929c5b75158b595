// SPDX-License-Identifier: MIT

package fock

import "fmt"

// At returns the number of photons in mode. Fails with ErrModeIndex
// outside [0, modeCount) and ErrUndefined on an undefined state.
//
// Complexity: O(N), stops at the first photon past mode.
func (s State) At(mode int) (int, error) {
	if mode < 0 || mode >= s.m {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrModeIndex, mode, s.m)
	}
	if !s.code.defined() {
		return 0, ErrUndefined
	}
	n := 0
	for _, v := range s.code.modes {
		if v > mode {
			break
		}
		if v == mode {
			n++
		}
	}

	return n, nil
}

// Counts returns photons per mode (the occupation vector).
func (s State) Counts() ([]int, error) {
	if !s.code.defined() {
		return nil, ErrUndefined
	}

	return s.counts(), nil
}

// Photon2Mode returns the mode of the k-th photon in encoded order.
func (s State) Photon2Mode(k int) (int, error) {
	if !s.code.defined() {
		return 0, ErrUndefined
	}
	if k < 0 || k >= len(s.code.modes) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrPhotonIndex, k, len(s.code.modes))
	}

	return s.code.modes[k], nil
}
