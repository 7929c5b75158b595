// SPDX-License-Identifier: MIT
// File: compare.go
// Role: equality, ordering and hashing.
// Annotations never take part: two states differing only in annotations
// are equal and hash alike.

package fock

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// undefinedMark separates an undefined code from an empty one in Hash.
const undefinedMark = 0xff

// Equal reports whether s and o have the same mode count, photon count and
// photon placement. Annotations are ignored. States with zero modes are
// equal whenever their photon counts match, defined or not.
func (s State) Equal(o State) bool {
	if s.m != o.m || s.n != o.n {
		return false
	}
	if s.m == 0 {
		return true
	}
	sd, od := s.code.defined(), o.code.defined()
	if !sd || !od {
		return sd == od
	}

	return slices.Equal(s.code.modes, o.code.modes)
}

// Hash returns a 64-bit xxhash of (modeCount, particleCount, code),
// consistent with Equal.
//
// Complexity: O(N).
func (s State) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	put(s.m)
	put(s.n)
	if s.m == 0 {
		return d.Sum64()
	}
	if !s.code.defined() {
		_, _ = d.Write([]byte{undefinedMark})

		return d.Sum64()
	}
	for _, mode := range s.code.modes {
		put(mode)
	}

	return d.Sum64()
}

// Compare orders states by mode count, then photon count, then photon
// sequence lexicographically; an undefined state sorts after every defined
// state of the same shape. For a fixed (m, n) this is enumeration order.
// Compare(a, b) == 0 exactly when a.Equal(b).
func Compare(a, b State) int {
	if c := cmp.Compare(a.m, b.m); c != 0 {
		return c
	}
	if c := cmp.Compare(a.n, b.n); c != 0 {
		return c
	}
	if a.m == 0 {
		return 0
	}
	ad, bd := a.code.defined(), b.code.defined()
	switch {
	case !ad && !bd:
		return 0
	case !ad:
		return 1
	case !bd:
		return -1
	}

	return slices.Compare(a.code.modes, b.code.modes)
}
