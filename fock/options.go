// SPDX-License-Identifier: MIT
// Package fock: functional options for Parse and FromCounts.
//
// Option constructors validate and panic on meaningless input (nil
// parser). Parsing and construction themselves never panic.

package fock

import "github.com/katalvlaran/fockspace/annotation"

// Option customizes Parse and FromCounts.
type Option func(*config)

type config struct {
	parseAnnotation annotation.Parser
	annotations     map[int][]string
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{parseAnnotation: annotation.Parse}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithAnnotationParser sets how annotation text is turned into values.
// Defaults to annotation.Parse. Panics on nil.
func WithAnnotationParser(p annotation.Parser) Option {
	if p == nil {
		panic("fock: WithAnnotationParser(nil)")
	}

	return func(c *config) {
		c.parseAnnotation = p
	}
}

// WithAnnotations attaches annotations given as text, per mode, one entry
// per annotated photon. A mode listed here replaces whatever annotations
// the text form gave it.
func WithAnnotations(byMode map[int][]string) Option {
	cp := make(map[int][]string, len(byMode))
	for m, l := range byMode {
		cp[m] = append([]string(nil), l...)
	}

	return func(c *config) {
		c.annotations = cp
	}
}
