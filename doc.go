// Package fockspace is a small toolkit for the discrete side of photonic
// simulation: Fock states, their text form and the combinatorics around
// them.
//
// 🚀 What is in the box?
//
//	• fock/      : the State type: parsing, rendering, enumeration,
//	                tensor composition, slicing, separation
//	• annotation/: per-photon annotations (polarization, time bin…) and
//	                their compatibility rules
//	• cmd/fockctl: a command-line front end over fock
//
// ✨ Why?
//
//   - Compact: one mode index per photon, sorted, nothing else
//   - Safe to share: states are immutable values
//   - Pure Go, no cgo
//
// Quick example:
//
//	|2,0> → |1,1> → |0,2> → undefined
//
// enumerates every way to place two photons in two modes.
//
//	go get github.com/katalvlaran/fockspace/fock
package fockspace
