// Package annotation describes the extra per-photon degrees of freedom
// (polarization, time bin, source tag…) that a Fock state may carry.
//
// What:
//
//   - Annotation is the contract a Fock state relies on: a canonical text
//     form and a compatibility test that yields a merged annotation.
//   - Tags is the default implementation: an ordered set of key:value pairs
//     such as "P:H" or "P:V,t:1".
//   - Parser builds an Annotation from its canonical text; Parse is the
//     default Parser and produces Tags.
//
// Compatibility:
//
//   - Two Tags are compatible when every key they share carries the same
//     value. The merged annotation is the union of both key sets.
//   - An empty annotation ("") is compatible with anything.
//
// Errors:
//
//   - ErrSyntax: malformed annotation text.
//   - ErrConflict: one key given two different values.
package annotation
