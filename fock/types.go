// SPDX-License-Identifier: MIT
// Package fock: core types and the three-way occupation code.

package fock

import "github.com/katalvlaran/fockspace/annotation"

// codeKind tags the storage state of an occupation code.
type codeKind uint8

const (
	// undefinedCode: no buffer, the state does not exist. Zero value.
	undefinedCode codeKind = iota
	// vacuumCode: bound to the shared zero-length buffer.
	vacuumCode
	// ownedCode: exclusively owned, non-empty buffer.
	ownedCode
)

// vacuum is the process-wide buffer of every photon-free state.
// Nothing ever appends to or writes through it.
var vacuum = make([]int, 0)

// code is the photon sequence: one mode index per photon, non-decreasing.
type code struct {
	kind  codeKind
	modes []int
}

// undefined returns the "does not exist" code.
func undefined() code { return code{} }

// vacuumOf returns a code bound to the shared empty buffer.
func vacuumOf() code { return code{kind: vacuumCode, modes: vacuum[:0:0]} }

// owned takes ownership of modes. The caller must not keep a reference
// and must already have sorted it. An empty sequence binds to vacuum.
func owned(modes []int) code {
	if len(modes) == 0 {
		return vacuumOf()
	}

	return code{kind: ownedCode, modes: modes}
}

// defined reports whether photon content exists.
func (c code) defined() bool { return c.kind != undefinedCode }

// clone deep-copies an owned buffer; vacuum and undefined are shared.
func (c code) clone() code {
	if c.kind != ownedCode {
		return c
	}
	modes := make([]int, len(c.modes))
	copy(modes, c.modes)

	return code{kind: ownedCode, modes: modes}
}

// annotGroup is a run of count photons of one mode sharing an annotation.
type annotGroup struct {
	count int
	annot annotation.Annotation
}

// State is a Fock state: modeCount modes holding particleCount photons.
//
// The zero value is an undefined state with no modes. States are
// immutable once built: every operation returns a fresh State or, for
// pointer-receiver methods, replaces the receiver's fields wholesale, so
// sharing a State by assignment never exposes a mutation.
type State struct {
	m      int
	n      int
	code   code
	annots map[int][]annotGroup // mode -> annotation groups in first-seen order
}

// Modes returns the mode count.
func (s State) Modes() int { return s.m }

// Photons returns the photon count.
func (s State) Photons() int { return s.n }

// Defined reports whether the state exists. Undefined states come from
// running past the last enumeration step or from the mode-count-only
// text form "|,,>".
func (s State) Defined() bool { return s.code.defined() }
