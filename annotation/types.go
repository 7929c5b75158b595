// SPDX-License-Identifier: MIT

package annotation

import "errors"

var (
	// ErrSyntax indicates annotation text that is not a list of key:value pairs.
	ErrSyntax = errors.New("annotation: invalid annotation text")

	// ErrConflict indicates the same key bound to two different values.
	ErrConflict = errors.New("annotation: conflicting values for key")
)

// Annotation is an auxiliary attribute attached to a single photon.
//
// Implementations must be immutable: a Fock state keeps the values it is
// given and hands them out again without copying.
type Annotation interface {
	// String returns the canonical text form. Two annotations with the same
	// canonical text are considered the same annotation. The empty string
	// means "no annotation".
	String() string

	// Compatible reports whether the receiver and other may describe the
	// same photon. When they may, the returned Annotation is their merge.
	Compatible(other Annotation) (Annotation, bool)
}

// Parser builds an Annotation from its canonical text.
type Parser func(text string) (Annotation, error)

// Tag is a single key:value pair.
type Tag struct {
	Key   string
	Value string
}

// Tags is the default Annotation: a set of key:value pairs kept sorted by
// key, with unique keys. The zero value is the empty annotation.
type Tags struct {
	tags []Tag
}
