package fock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCode_StorageKinds checks which storage each constructor picks.
func TestCode_StorageKinds(t *testing.T) {
	s, err := New(3, 0)
	require.NoError(t, err)
	assert.Equal(t, vacuumCode, s.code.kind)

	s, err = New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, ownedCode, s.code.kind)

	assert.Equal(t, undefinedCode, State{}.code.kind)
	assert.Equal(t, undefinedCode, MustParse("|,>").code.kind)
	assert.Equal(t, vacuumCode, MustParse("|0,0>").code.kind)

	a, _ := New(3, 0)
	b, _ := New(2, 0)
	ab, err := a.Tensor(b)
	require.NoError(t, err)
	assert.Equal(t, vacuumCode, ab.code.kind)

	sl, err := MustParse("|1,0,0>").Slice(1, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, vacuumCode, sl.code.kind)
}

// TestCode_VacuumIsNeverGrown: appending to a vacuum-bound slice must
// reallocate instead of writing into the shared buffer.
func TestCode_VacuumIsNeverGrown(t *testing.T) {
	v := vacuumOf()
	assert.Equal(t, 0, cap(v.modes))
	grown := append(v.modes, 7)
	assert.Equal(t, []int{7}, grown)
	assert.Empty(t, vacuum)
}

// TestCode_FreshBuffers: derived states never share a non-empty buffer
// with their source.
func TestCode_FreshBuffers(t *testing.T) {
	s := MustParse("|2,1>")

	c := s.Clone()
	assert.NotSame(t, &s.code.modes[0], &c.code.modes[0])

	next, err := s.Next()
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &next.code.modes[0])

	adv, err := s.Advance(0)
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &adv.code.modes[0])

	tn, err := s.Tensor(MustParse("|0>"))
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &tn.code.modes[0])

	sl, err := s.Slice(0, 2, 1)
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &sl.code.modes[0])

	ss, err := s.SetSlice(MustParse("|2>"), 0, 1)
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &ss.code.modes[0])

	parts, err := s.Separate()
	require.NoError(t, err)
	assert.NotSame(t, &s.code.modes[0], &parts[0].code.modes[0])
}
