package dstarlite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_DefaultsToInfinity(t *testing.T) {
	goal := &stubCell{"goal"}
	u := &stubCell{"u"}
	s := newStore(goal)

	assert.False(t, s.materialized(u))
	assert.True(t, math.IsInf(s.g(u), 1))
	assert.True(t, math.IsInf(s.rhs(u), 1))
}

func TestStore_GReadMaterializes(t *testing.T) {
	goal := &stubCell{"goal"}
	u := &stubCell{"u"}
	s := newStore(goal)

	_ = s.g(u)
	assert.True(t, s.materialized(u))
}

func TestStore_RhsGoalPinnedToZero(t *testing.T) {
	goal := &stubCell{"goal"}
	s := newStore(goal)

	assert.Equal(t, 0.0, s.rhs(goal))
	s.setRhs(goal, 42)
	assert.Equal(t, 0.0, s.rhs(goal))
}

func TestStore_SetGAndSetRhs(t *testing.T) {
	goal := &stubCell{"goal"}
	u := &stubCell{"u"}
	s := newStore(goal)

	s.setG(u, 3.5)
	s.setRhs(u, 7.25)

	assert.Equal(t, 3.5, s.g(u))
	assert.Equal(t, 7.25, s.rhs(u))
}
