package footprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseholdValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Household)
		wantErr bool
	}{
		{
			name:   "neutral snapshot is valid",
			mutate: func(*Household) {},
		},
		{
			name:   "all fields at their extremes",
			mutate: func(h *Household) { h.People = 9; h.Practices = AllPractices(); h.WalkedKmToday = 42 },
		},
		{
			name:    "zero people rejected",
			mutate:  func(h *Household) { h.People = 0 },
			wantErr: true,
		},
		{
			name:    "negative people rejected",
			mutate:  func(h *Household) { h.People = -1 },
			wantErr: true,
		},
		{
			name:    "transport mode outside the closed set",
			mutate:  func(h *Household) { h.TransportMode = TransportMode(7) },
			wantErr: true,
		},
		{
			name:    "diet outside the closed set",
			mutate:  func(h *Household) { h.Diet = Diet(-1) },
			wantErr: true,
		},
		{
			name:    "energy saving outside the closed set",
			mutate:  func(h *Household) { h.EnergySaving = EnergySaving(3) },
			wantErr: true,
		},
		{
			name:    "spending outside the closed set",
			mutate:  func(h *Household) { h.Spending = Spending(99) },
			wantErr: true,
		},
		{
			name:    "flights outside the closed set",
			mutate:  func(h *Household) { h.Flights = Flights(4) },
			wantErr: true,
		},
		{
			name:    "undefined practice bits rejected",
			mutate:  func(h *Household) { h.Practices = PracticeSet(0xC0) },
			wantErr: true,
		},
		{
			name:    "negative walked distance rejected at the boundary",
			mutate:  func(h *Household) { h.WalkedKmToday = -0.5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := neutralHousehold()
			tt.mutate(&h)

			err := h.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrHouseholdValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHouseholdJSON(t *testing.T) {
	h := Household{
		People:        2,
		TransportMode: TransportTransit,
		Diet:          DietVeg,
		EnergySaving:  EnergyHigh,
		Spending:      SpendingFrugal,
		Flights:       FlightsFew,
		Practices:     NewPracticeSet(PracticeBagReuse),
		WalkedKmToday: 5.5,
	}

	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"people": 2,
		"transportMode": "transit",
		"diet": "veg",
		"energySaving": "high",
		"lifestyleSpending": "frugal",
		"annualFlights": "few",
		"practices": ["bag-reuse"],
		"walkedKmToday": 5.5
	}`, string(data))

	var back Household
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, h, back)
}

func TestHouseholdJSONRejectsUnknownValue(t *testing.T) {
	var h Household
	err := json.Unmarshal([]byte(`{"people":1,"diet":"carnivore"}`), &h)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHouseholdValidation)
}
