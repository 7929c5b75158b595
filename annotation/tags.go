// SPDX-License-Identifier: MIT

package annotation

import (
	"fmt"
	"sort"
	"strings"
)

// reserved characters cannot appear in keys or values: braces delimit an
// annotation inside a Fock state, ':' and ',' structure the pairs.
const reserved = "{}:,"

// Parse is the default Parser. It returns Tags.
func Parse(text string) (Annotation, error) {
	t, err := ParseTags(text)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseTags reads a comma separated list of key:value pairs.
// Blank text yields the empty annotation. Commas nested inside
// parentheses or brackets belong to the value, so "P:(0.5,0.2)" is a
// single pair.
//
// Complexity: O(L log L) for text length L.
func ParseTags(text string) (Tags, error) {
	if strings.TrimSpace(text) == "" {
		return Tags{}, nil
	}
	var tags []Tag
	for _, part := range splitTopLevel(text) {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			return Tags{}, fmt.Errorf("%w: %q has no ':'", ErrSyntax, part)
		}
		tags = append(tags, Tag{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}

	return New(tags...)
}

// New builds Tags from the given pairs. Repeating a pair is allowed;
// binding one key to two values is ErrConflict.
func New(tags ...Tag) (Tags, error) {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if err := validate(t); err != nil {
			return Tags{}, err
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	// collapse duplicates in place
	w := 0
	for r := 0; r < len(out); r++ {
		if w > 0 && out[w-1].Key == out[r].Key {
			if out[w-1].Value != out[r].Value {
				return Tags{}, fmt.Errorf("%w: %s=%s vs %s", ErrConflict, out[r].Key, out[w-1].Value, out[r].Value)
			}
			continue
		}
		out[w] = out[r]
		w++
	}
	if w == 0 {
		return Tags{}, nil
	}

	return Tags{tags: out[:w]}, nil
}

// MustParseTags is like ParseTags but panics on error. Intended for
// package-level fixtures and tests.
func MustParseTags(text string) Tags {
	t, err := ParseTags(text)
	if err != nil {
		panic(err)
	}

	return t
}

// String renders the pairs in key order: "P:H,t:1".
func (t Tags) String() string {
	var b strings.Builder
	for i, tag := range t.tags {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(tag.Key)
		b.WriteByte(':')
		b.WriteString(tag.Value)
	}

	return b.String()
}

// Get returns the value bound to key.
func (t Tags) Get(key string) (string, bool) {
	i := sort.Search(len(t.tags), func(i int) bool { return t.tags[i].Key >= key })
	if i < len(t.tags) && t.tags[i].Key == key {
		return t.tags[i].Value, true
	}

	return "", false
}

// Len returns the number of pairs.
func (t Tags) Len() int { return len(t.tags) }

// Pairs returns a copy of the pairs in key order.
func (t Tags) Pairs() []Tag {
	return append([]Tag(nil), t.tags...)
}

// Compatible implements Annotation. Annotations that are not Tags are
// compared through their canonical text.
//
// Complexity: O(K1 + K2) over the two key sets.
func (t Tags) Compatible(other Annotation) (Annotation, bool) {
	if other == nil {
		return t, true
	}
	o, ok := other.(Tags)
	if !ok {
		var err error
		if o, err = ParseTags(other.String()); err != nil {
			return nil, false
		}
	}
	if len(t.tags) == 0 {
		return o, true
	}
	if len(o.tags) == 0 {
		return t, true
	}

	merged := make([]Tag, 0, len(t.tags)+len(o.tags))
	i, j := 0, 0
	for i < len(t.tags) && j < len(o.tags) {
		a, b := t.tags[i], o.tags[j]
		switch {
		case a.Key == b.Key:
			if a.Value != b.Value {
				return nil, false
			}
			merged = append(merged, a)
			i++
			j++
		case a.Key < b.Key:
			merged = append(merged, a)
			i++
		default:
			merged = append(merged, b)
			j++
		}
	}
	merged = append(merged, t.tags[i:]...)
	merged = append(merged, o.tags[j:]...)

	return Tags{tags: merged}, true
}

// validate rejects empty keys or values and reserved characters. A value
// may hold commas only inside balanced () or [], and no surrounding blanks,
// so that String always parses back to the same pairs.
func validate(t Tag) error {
	if t.Key == "" || t.Value == "" {
		return fmt.Errorf("%w: empty key or value in %q", ErrSyntax, t.Key+":"+t.Value)
	}
	if strings.ContainsAny(t.Key, reserved+" ()[]") {
		return fmt.Errorf("%w: bad key %q", ErrSyntax, t.Key)
	}
	if strings.ContainsAny(t.Value, "{}") || strings.TrimSpace(t.Value) != t.Value || !nested(t.Value) {
		return fmt.Errorf("%w: bad value %q", ErrSyntax, t.Value)
	}

	return nil
}

// nested reports whether brackets in v balance and every comma sits
// inside them, the way splitTopLevel reads it.
func nested(v string) bool {
	depth := 0
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth == 0 {
				return false
			}
			depth--
		case ',':
			if depth == 0 {
				return false
			}
		}
	}

	return depth == 0
}

// splitTopLevel splits on commas that are not nested in () or [].
func splitTopLevel(text string) []string {
	var (
		parts []string
		depth int
		from  int
	)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, text[from:i])
				from = i + 1
			}
		}
	}

	return append(parts, text[from:])
}
