// SPDX-License-Identifier: MIT
// File: parse.go
// Role: text -> State.
//
// Grammar:
//
//	state  := blank* open body close blank*
//	open   := '[' | '(' | '|'
//	close  := ']' | ')' | '>' | '⟩' | '〉'      (must match open)
//	body   := ε | mode (blank* ',' blank* mode)* | ',' (blank* ',')*
//	mode   := term*
//	term   := digits annot? | annot
//	annot  := '{' text-without-'}' '}'
//
// A body of bare commas is the mode-count-only descriptor: it yields an
// undefined state over commas+1 modes.

package fock

import (
	"strings"

	"github.com/katalvlaran/fockspace/annotation"
)

// Ket closers accepted after '|', besides '>'.
const (
	ketMath = "⟩" // U+27E9 MATHEMATICAL RIGHT ANGLE BRACKET
	ketCJK  = "〉" // U+3009 RIGHT ANGLE BRACKET
)

// Parse reads a Fock state from text such as "|1,0,2>", "[1,1]",
// "(0,{P:H})" or "|1{P:H}1{P:V},0>".
//
// Annotations that render to the same canonical text within one mode are
// merged: counts add up and the first value is kept. Annotations rendering
// to "" are dropped but still count as photons.
//
// Complexity: O(L) for text length L, plus annotation parsing.
func Parse(text string, opts ...Option) (State, error) {
	cfg := newConfig(opts...)
	p := parser{src: text, parseAnnotation: cfg.parseAnnotation}
	s, err := p.run()
	if err != nil {
		return State{}, err
	}
	if err = s.applyAnnotations(cfg); err != nil {
		return State{}, err
	}

	return s, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string, opts ...Option) State {
	s, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// parser holds the cursor over one input.
type parser struct {
	src             string
	pos             int
	parseAnnotation annotation.Parser
}

// fail builds a *ParseError at the current position.
func (p *parser) fail(reason string, cause error) error {
	return &ParseError{Input: p.src, Offset: p.pos, Reason: reason, Err: cause}
}

// skipBlanks advances over spaces.
func (p *parser) skipBlanks() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}

	return 0
}

func (p *parser) run() (State, error) {
	p.skipBlanks()
	open := p.peek()
	if open != '[' && open != '|' && open != '(' {
		return State{}, p.fail("expected '[', '|' or '('", nil)
	}
	p.pos++

	var (
		counts  []int
		annots  map[int][]annotGroup
		photons int
	)
	for {
		p.skipBlanks()
		c := p.peek()
		if c == 0 || !strings.ContainsRune("0123456789,{", rune(c)) ||
			(len(counts) > 0 && c != ',') || (len(counts) == 0 && c == ',') {
			break
		}
		if c == ',' {
			p.pos++
			p.skipBlanks()
		}
		total, groups, err := p.mode()
		if err != nil {
			return State{}, err
		}
		if total > MaxPhotons-photons {
			return State{}, p.fail("more than MaxPhotons photons", ErrTooManyPhotons)
		}
		photons += total
		if len(groups) > 0 {
			if annots == nil {
				annots = make(map[int][]annotGroup)
			}
			annots[len(counts)] = groups
		}
		counts = append(counts, total)
	}

	// mode-count-only descriptor
	undefinedModes := 0
	if len(counts) == 0 && p.peek() == ',' {
		undefinedModes = 1
		for {
			p.skipBlanks()
			if p.peek() != ',' {
				break
			}
			undefinedModes++
			p.pos++
		}
	}

	if err := p.close(open); err != nil {
		return State{}, err
	}
	p.skipBlanks()
	if p.pos != len(p.src) {
		return State{}, p.fail("unexpected characters after closing delimiter", nil)
	}

	if undefinedModes > 0 {
		return NewUndefined(undefinedModes), nil
	}
	s := fromCounts(counts)
	s.annots = annots

	return s, nil
}

// mode reads the terms of one mode: their summed count and the merged
// annotation groups.
func (p *parser) mode() (int, []annotGroup, error) {
	var (
		total  int
		groups []annotGroup
	)
	for c := p.peek(); isDigit(c) || c == '{'; c = p.peek() {
		n := 1
		if c != '{' {
			var err error
			if n, err = p.count(); err != nil {
				return 0, nil, err
			}
		}
		if p.peek() == '{' {
			if n == 0 {
				return 0, nil, p.fail("annotation on 0 photons", nil)
			}
			a, err := p.annotation()
			if err != nil {
				return 0, nil, err
			}
			groups = mergeGroup(groups, annotGroup{count: n, annot: a})
		}
		if n > MaxPhotons-total {
			return 0, nil, p.fail("more than MaxPhotons photons", ErrTooManyPhotons)
		}
		total += n
	}

	return total, groups, nil
}

// count reads a decimal photon count.
func (p *parser) count() (int, error) {
	n := 0
	for isDigit(p.peek()) {
		n = 10*n + int(p.peek()-'0')
		if n > MaxPhotons {
			return 0, p.fail("more than MaxPhotons photons", ErrTooManyPhotons)
		}
		p.pos++
	}

	return n, nil
}

// annotation reads one {…} block. The cursor sits on '{'.
// Nothing is retained when the annotation parser fails.
func (p *parser) annotation() (annotation.Annotation, error) {
	end := strings.IndexByte(p.src[p.pos+1:], '}')
	if end < 0 {
		return nil, p.fail("no annotation close", nil)
	}
	text := p.src[p.pos+1 : p.pos+1+end]
	a, err := p.parseAnnotation(text)
	if err != nil {
		return nil, p.fail("bad annotation", err)
	}
	p.pos += end + 2

	return a, nil
}

// close consumes the delimiter matching open.
func (p *parser) close(open byte) error {
	rest := p.src[p.pos:]
	switch {
	case open == '[' && strings.HasPrefix(rest, "]"),
		open == '(' && strings.HasPrefix(rest, ")"),
		open == '|' && strings.HasPrefix(rest, ">"):
		p.pos++
	case open == '|' && strings.HasPrefix(rest, ketMath):
		p.pos += len(ketMath)
	case open == '|' && strings.HasPrefix(rest, ketCJK):
		p.pos += len(ketCJK)
	default:
		return p.fail("bad close", nil)
	}

	return nil
}

// mergeGroup folds g into groups by canonical text. Empty annotations are
// dropped; a repeated annotation adds its count to the first occurrence.
func mergeGroup(groups []annotGroup, g annotGroup) []annotGroup {
	if g.annot == nil {
		return groups
	}
	key := g.annot.String()
	if key == "" {
		return groups
	}
	for i := range groups {
		if groups[i].annot.String() == key {
			groups[i].count += g.count

			return groups
		}
	}

	return append(groups, g)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
