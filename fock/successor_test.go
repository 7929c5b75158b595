package fock_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fockspace/fock"
)

// TestNext_TwoPhotonsTwoModes walks the whole (2, 2) enumeration.
func TestNext_TwoPhotonsTwoModes(t *testing.T) {
	s := fock.MustParse("|2,0>")

	s1, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "|1,1>", s1.String())

	s2, err := s1.Next()
	require.NoError(t, err)
	assert.Equal(t, "|0,2>", s2.String())

	s3, err := s2.Next()
	require.NoError(t, err)
	assert.False(t, s3.Defined(), "third successor runs off the end")
	assert.Equal(t, 2, s3.Modes())
	assert.Equal(t, 2, s3.Photons())

	assert.Equal(t, "|2,0>", s.String(), "Next must not touch its receiver")

	_, err = s3.Next()
	assert.ErrorIs(t, err, fock.ErrUndefined)
}

// TestAdvance checks multi-step successors and early termination.
func TestAdvance(t *testing.T) {
	s := fock.MustParse("|2,0>")

	got, err := s.Advance(2)
	require.NoError(t, err)
	assert.Equal(t, "|0,2>", got.String())

	got, err = s.Advance(3)
	require.NoError(t, err)
	assert.False(t, got.Defined())

	got, err = s.Advance(100)
	require.NoError(t, err)
	assert.False(t, got.Defined(), "stops early instead of failing")

	got, err = s.Advance(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(s))

	_, err = s.Advance(-1)
	assert.ErrorIs(t, err, fock.ErrNegativeCount)

	_, err = fock.NewUndefined(2).Advance(0)
	assert.ErrorIs(t, err, fock.ErrUndefined)
}

// TestIncStep verifies the in-place forms.
func TestIncStep(t *testing.T) {
	s := fock.MustParse("|3,0,0>")
	alias := s

	require.NoError(t, s.Inc())
	assert.Equal(t, "|2,1,0>", s.String())
	assert.Equal(t, "|3,0,0>", alias.String(), "copies are unaffected")

	require.NoError(t, s.Step(2))
	assert.Equal(t, "|1,2,0>", s.String())

	require.NoError(t, s.Step(100))
	assert.False(t, s.Defined())
	assert.ErrorIs(t, s.Inc(), fock.ErrUndefined)
	assert.ErrorIs(t, s.Step(1), fock.ErrUndefined)
}

// TestNext_DropsAnnotations: a new pattern has no annotations.
func TestNext_DropsAnnotations(t *testing.T) {
	s := fock.MustParse("|{P:H},1>")
	next, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "|0,2>", next.String())
	assert.False(t, next.HasAnnotations())
}

// TestAll_CountAndOrder: All visits NumStates distinct states in strictly
// increasing order.
func TestAll_CountAndOrder(t *testing.T) {
	for m := 0; m <= 4; m++ {
		for n := 0; n <= 4; n++ {
			if m == 0 && n > 0 {
				continue
			}
			var (
				count int
				prev  fock.State
				seen  = make(map[string]bool)
			)
			for s := range fock.All(m, n) {
				require.True(t, s.Defined())
				if count > 0 {
					assert.Equal(t, -1, fock.Compare(prev, s), "m=%d n=%d %s !< %s", m, n, prev, s)
				}
				assert.False(t, seen[s.String()], "duplicate %s", s)
				seen[s.String()] = true
				prev = s
				count++
			}
			assert.Equal(t, fock.NumStates(m, n), uint64(count), "m=%d n=%d", m, n)
		}
	}
}

// TestAll_EarlyBreak stops iteration on request and yields nothing for bad input.
func TestAll_EarlyBreak(t *testing.T) {
	count := 0
	for range fock.All(5, 5) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)

	for range fock.All(-1, 2) {
		t.Fatal("negative modes must yield nothing")
	}
}

// TestNumStates checks C(n+m-1, m-1) on known values and edge cases.
func TestNumStates(t *testing.T) {
	assert.Equal(t, uint64(3), fock.NumStates(2, 2))
	assert.Equal(t, uint64(6), fock.NumStates(3, 2))
	assert.Equal(t, uint64(35), fock.NumStates(5, 3))
	assert.Equal(t, uint64(1), fock.NumStates(4, 0))
	assert.Equal(t, uint64(1), fock.NumStates(1, 9))
	assert.Equal(t, uint64(1), fock.NumStates(0, 0))
	assert.Equal(t, uint64(0), fock.NumStates(0, 1))
	assert.Equal(t, uint64(0), fock.NumStates(-1, 1))
	assert.Equal(t, uint64(184756), fock.NumStates(11, 10))
}

// TestNumStates_Wide compares against math/big across the range where
// intermediate products exceed 64 bits, and checks saturation.
func TestNumStates_Wide(t *testing.T) {
	assert.Equal(t, uint64(7219428434016265740), fock.NumStates(34, 33))
	assert.Equal(t, uint64(1388818294740297792), fock.NumStates(30, 35))

	for m := 1; m <= 45; m++ {
		for n := 0; n <= 45; n++ {
			want := new(big.Int).Binomial(int64(n+m-1), int64(m-1))
			if want.IsUint64() {
				assert.Equal(t, want.Uint64(), fock.NumStates(m, n), "m=%d n=%d", m, n)
			} else {
				assert.Equal(t, uint64(math.MaxUint64), fock.NumStates(m, n), "m=%d n=%d saturates", m, n)
			}
		}
	}
}
