// Package fock represents and manipulates a single photonic Fock state:
// an assignment of indistinguishable photons to a fixed number of modes.
//
// 🚀 What is a Fock state?
//
//	A basis element of photonic simulation. |1,0,2> has three modes and
//	three photons: one in mode 0, two in mode 2. Photons may carry
//	annotations (polarization, time bin…) written in braces:
//	|{P:H},{P:V}>.
//
// ✨ Key features:
//   - compact sorted encoding: one mode symbol per photon
//   - text grammar with [..], (..) and |..> / |..⟩ delimiters
//   - lexicographic successor enumeration (Next, Advance, All)
//   - tensor composition, slicing and slice replacement
//   - annotation-driven separation into distinguishable sub-states
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fockspace/fock"
//
//	s, err := fock.Parse("|2,0>")
//	next, err := s.Next()            // |1,1>
//	both, err := s.Tensor(next)      // |2,0,1,1>
//	mid, err := both.Slice(1, 3, 1)  // |0,1>
//
// Encoding:
//
//	A State stores its photons as a non-decreasing sequence of mode
//	indices. The sequence is in one of three storage states: owned by the
//	State, the shared zero-length vacuum buffer (no photons), or
//	undefined (the state does not exist, e.g. enumeration ran past the
//	last pattern). Buffers are never written after construction, so
//	States are safe to copy by assignment and to read concurrently.
//
// Complexity:
//
//   - Parse, String, Equal, Hash, Tensor, Slice, SetSlice: O(M + N).
//   - Next: O(N). Advance(c): O(c·N).
//   - Separate: O(N·G) for G resulting groups.
//
// Errors:
//
//   - ErrParse (via *ParseError): malformed text.
//   - ErrUndefined: operation on an undefined state.
//   - ErrModeIndex: mode index out of range.
//   - ErrSliceMismatch: replacement mode count differs from the target range.
//   - ErrNegativeCount, ErrBadStep, ErrPhotonIndex, ErrTooManyAnnotations:
//     invalid arguments.
package fock
