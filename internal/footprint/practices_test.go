package footprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeSetOperations(t *testing.T) {
	var s PracticeSet
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "none", s.String())

	s = s.With(PracticeRecycling)
	s = s.With(PracticeBagReuse)
	s = s.With(PracticeRecycling) // duplicates collapse
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(PracticeRecycling))
	assert.True(t, s.Has(PracticeBagReuse))
	assert.False(t, s.Has(PracticeThermostat))

	s = s.Without(PracticeRecycling)
	assert.False(t, s.Has(PracticeRecycling))
	assert.Equal(t, 1, s.Len())

	s = s.Toggle(PracticeUnplugging)
	assert.True(t, s.Has(PracticeUnplugging))
	s = s.Toggle(PracticeUnplugging)
	assert.False(t, s.Has(PracticeUnplugging))
}

func TestPracticeSetOrderIndependent(t *testing.T) {
	a := NewPracticeSet(PracticeBagReuse, PracticeThermostat, PracticeRecycling)
	b := NewPracticeSet(PracticeRecycling, PracticeBagReuse, PracticeThermostat)
	assert.Equal(t, a, b)
}

func TestPracticeMultiplierMonotonic(t *testing.T) {
	// Adding any practice never increases the multiplier, across every
	// subset of the six practices.
	for mask := PracticeSet(0); mask <= AllPractices(); mask++ {
		base := mask.Multiplier()
		assert.GreaterOrEqual(t, base, PracticeFloor)
		assert.LessOrEqual(t, base, 1.0)

		for _, p := range Practices() {
			if mask.Has(p) {
				continue
			}
			grown := mask.With(p).Multiplier()
			assert.LessOrEqual(t, grown, base, "adding %s to %s", p, mask)
			assert.GreaterOrEqual(t, grown, PracticeFloor)
		}
	}
}

func TestPracticeMultiplierFloor(t *testing.T) {
	// The raw product of all six factors lands below the floor, so the
	// clamped value is the floor constant itself.
	raw := 1.0
	for _, p := range Practices() {
		raw *= p.factor()
	}
	require.Less(t, raw, PracticeFloor)
	assert.Equal(t, PracticeFloor, AllPractices().Multiplier())
}

func TestPracticeMultiplierEmptySet(t *testing.T) {
	var s PracticeSet
	assert.Equal(t, 1.0, s.Multiplier())
}

func TestPracticeSetJSON(t *testing.T) {
	s := NewPracticeSet(PracticeReusableCup, PracticeFewerDisposables)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["reusable-cup","fewer-disposables"]`, string(data))

	var back PracticeSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)

	var bad PracticeSet
	err = json.Unmarshal([]byte(`["composting"]`), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHouseholdValidation)
}

func TestPracticeSetValidate(t *testing.T) {
	assert.NoError(t, AllPractices().Validate())

	undefined := PracticeSet(1 << 7)
	err := undefined.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHouseholdValidation)
}
