package fock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fockspace/annotation"
	"github.com/katalvlaran/fockspace/fock"
)

// TestParse_Valid covers delimiters, blanks, annotations and the canonical
// rendering of each accepted form.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in      string
		modes   int
		photons int
		want    string
	}{
		{"|1,1>", 2, 2, "|1,1>"},
		{"[1, 0 ,2]", 3, 3, "|1,0,2>"},
		{"(3)", 1, 3, "|3>"},
		{"  |0,0>  ", 2, 0, "|0,0>"},
		{"|>", 0, 0, "|>"},
		{"|1,0⟩", 2, 1, "|1,0>"},
		{"|1,0〉", 2, 1, "|1,0>"},
		{"|10,1>", 2, 11, "|10,1>"},
		{"|1,>", 2, 1, "|1,0>"},
		{"|2{P:H}1>", 1, 3, "|2{P:H}1>"},
		{"|{P:H}{P:H},{P:V}>", 2, 3, "|2{P:H},{P:V}>"},
		{"|1{P:H}1{P:V}>", 1, 2, "|{P:H}{P:V}>"},
		{"|1{}>", 1, 1, "|1>"},
		{"|{t:0,P:H}>", 1, 1, "|{P:H,t:0}>"},
	}
	for _, tc := range cases {
		s, err := fock.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, s.Defined(), tc.in)
		assert.Equal(t, tc.modes, s.Modes(), tc.in)
		assert.Equal(t, tc.photons, s.Photons(), tc.in)
		assert.Equal(t, tc.want, s.String(), tc.in)
	}
}

// TestParse_ModeCountOnly verifies that bare commas yield an undefined state.
func TestParse_ModeCountOnly(t *testing.T) {
	cases := map[string]int{
		"|,>":    2,
		"|,,>":   3,
		"[ , ]":  2,
		"(,, ,)": 4,
	}
	for in, modes := range cases {
		s, err := fock.Parse(in)
		require.NoError(t, err, in)
		assert.False(t, s.Defined(), in)
		assert.Equal(t, modes, s.Modes(), in)
		assert.Equal(t, 0, s.Photons(), in)
	}
	assert.Equal(t, "|,,>", fock.MustParse("|,,>").String())
}

// TestParse_Errors checks every grammar violation returns a *ParseError
// wrapping ErrParse at the expected offset.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"1,1>", 0},
		{"<1>", 0},
		{"|1,1]", 4},
		{"[1,1>", 4},
		{"(1,1", 4},
		{"|1,1> x", 6},
		{"|0{P:H}>", 2},
		{"|{P:H>", 1},
		{"|1,a>", 3},
		{"|,1>", 2},
		{"|99999999999>", 8},
		{"|16777216,1>", 11},
		{"|9000000{P:H}9000000>", 20},
	}
	for _, tc := range cases {
		_, err := fock.Parse(tc.in)
		require.Error(t, err, tc.in)
		assert.ErrorIs(t, err, fock.ErrParse, tc.in)
		var pe *fock.ParseError
		require.True(t, errors.As(err, &pe), tc.in)
		assert.Equal(t, tc.offset, pe.Offset, tc.in)
		assert.Equal(t, tc.in, pe.Input)
	}
}

// TestParse_PhotonCap rejects texts describing more than MaxPhotons photons
// before any storage is allocated.
func TestParse_PhotonCap(t *testing.T) {
	for _, in := range []string{"|2147483647>", "|2000000000,2000000000>", "|16777216,1>", "|16777216{P:H}1>"} {
		_, err := fock.Parse(in)
		assert.ErrorIs(t, err, fock.ErrParse, in)
		assert.ErrorIs(t, err, fock.ErrTooManyPhotons, in)
	}
}

// TestParse_BadAnnotation surfaces the annotation error through the ParseError.
func TestParse_BadAnnotation(t *testing.T) {
	_, err := fock.Parse("|{P}>")
	assert.ErrorIs(t, err, fock.ErrParse)
	assert.ErrorIs(t, err, annotation.ErrSyntax)

	_, err = fock.Parse("|{P:H,P:V}>")
	assert.ErrorIs(t, err, annotation.ErrConflict)
}

// TestParse_WithAnnotations attaches annotations given per mode.
func TestParse_WithAnnotations(t *testing.T) {
	s, err := fock.Parse("|2,1>", fock.WithAnnotations(map[int][]string{0: {"P:H", "P:V"}}))
	require.NoError(t, err)
	assert.Equal(t, "|{P:H}{P:V},1>", s.String())

	s, err = fock.Parse("|{P:H},1>", fock.WithAnnotations(map[int][]string{0: {"P:V"}}))
	require.NoError(t, err)
	assert.Equal(t, "|{P:V},1>", s.String(), "option replaces the mode's text annotations")

	_, err = fock.Parse("|2,1>", fock.WithAnnotations(map[int][]string{1: {"P:H", "P:H"}}))
	assert.ErrorIs(t, err, fock.ErrTooManyAnnotations)

	_, err = fock.Parse("|2,1>", fock.WithAnnotations(map[int][]string{5: {"P:H"}}))
	assert.ErrorIs(t, err, fock.ErrModeIndex)

	_, err = fock.Parse("|2,1>", fock.WithAnnotations(map[int][]string{0: {"bad"}}))
	assert.ErrorIs(t, err, annotation.ErrSyntax)

	_, err = fock.Parse("|,>", fock.WithAnnotations(map[int][]string{0: {"P:H"}}))
	assert.ErrorIs(t, err, fock.ErrUndefined)
}

// label is a minimal Annotation where equal labels are compatible.
type label string

func (l label) String() string { return string(l) }

func (l label) Compatible(o annotation.Annotation) (annotation.Annotation, bool) {
	return l, o.String() == string(l)
}

// TestParse_WithAnnotationParser routes annotation text through a custom parser.
func TestParse_WithAnnotationParser(t *testing.T) {
	var seen []string
	parse := func(text string) (annotation.Annotation, error) {
		seen = append(seen, text)
		return label(text), nil
	}
	s, err := fock.Parse("|{a}{b},2{a}>", fock.WithAnnotationParser(parse))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, seen)
	assert.Equal(t, "|{a}{b},2{a}>", s.String())

	assert.Panics(t, func() { fock.WithAnnotationParser(nil) })
}

// TestMustParse panics on invalid text.
func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { fock.MustParse("|1>") })
	assert.Panics(t, func() { fock.MustParse("|1") })
}
