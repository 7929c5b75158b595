// SPDX-License-Identifier: MIT
// File: format.go
// Role: State -> text.

package fock

import (
	"strconv"
	"strings"
)

// String renders the state in ket form with annotations: "|1,0>",
// "|{P:H},2{P:V}1>". An undefined state renders its modes as bare
// commas: "|,,>". Parse(s.String()) reproduces every defined state.
func (s State) String() string { return s.Text(true) }

// Text renders the state in ket form, with or without annotations.
//
// Per mode, each annotation group is written as count{text} (count
// omitted when 1), followed by the count of remaining unannotated photons
// when non-zero. A mode without annotations always writes its count.
//
// Complexity: O(M + N).
func (s State) Text(withAnnotations bool) string {
	var b strings.Builder
	b.WriteByte('|')
	if !s.code.defined() {
		if s.m > 1 {
			b.WriteString(strings.Repeat(",", s.m-1))
		}
		b.WriteByte('>')

		return b.String()
	}

	for mode, c := range s.counts() {
		if mode > 0 {
			b.WriteByte(',')
		}
		rest := c
		if withAnnotations {
			for _, g := range s.annots[mode] {
				if g.count > 1 {
					b.WriteString(strconv.Itoa(g.count))
				}
				b.WriteByte('{')
				b.WriteString(g.annot.String())
				b.WriteByte('}')
				rest -= g.count
			}
		}
		if rest > 0 || rest == c {
			b.WriteString(strconv.Itoa(rest))
		}
	}
	b.WriteByte('>')

	return b.String()
}

// counts returns photons per mode. The state must be defined.
func (s State) counts() []int {
	out := make([]int, s.m)
	for _, mode := range s.code.modes {
		out[mode]++
	}

	return out
}
