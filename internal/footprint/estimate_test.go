package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensteps/ecofoot/internal/survey"
)

const delta = 1e-9

// neutralHousehold is the single-person all-neutral snapshot every scenario
// starts from: every multiplier 1.0, no flights, no practices.
func neutralHousehold() Household {
	return Household{
		People:        1,
		TransportMode: TransportMixed,
		Diet:          DietMixed,
		EnergySaving:  EnergyMid,
		Spending:      SpendingMid,
		Flights:       FlightsNone,
	}
}

func TestEstimateSinglePersonNeutral(t *testing.T) {
	h := neutralHousehold()
	require.NoError(t, h.Validate())

	got := Estimate(h, 0)

	assert.InDelta(t, 1.4, got.Amount(CategoryHome), delta)
	assert.InDelta(t, 2.1, got.Amount(CategoryTransport), delta)
	assert.InDelta(t, 1.7, got.Amount(CategoryFood), delta)
	assert.InDelta(t, 0.9, got.Amount(CategoryOther), delta)
	assert.InDelta(t, 0.0, got.Amount(CategoryFlights), delta)
	assert.InDelta(t, 6.1, got.Subtotal, delta)
	assert.InDelta(t, 1.0, got.PracticeFactor, delta)
	assert.InDelta(t, 1.0, got.EngagementFactor, delta)
	assert.InDelta(t, 6.1, got.Total, delta)
	assert.InDelta(t, 6.1, got.PerPerson, delta)
	assert.Equal(t, TierB, got.Tier)
}

func TestEstimateFourPersonSharing(t *testing.T) {
	h := neutralHousehold()
	h.People = 4
	require.NoError(t, h.Validate())

	got := Estimate(h, 0)

	// Home alone carries the sharing scale (0.7 at four people); the other
	// per-person categories scale linearly.
	assert.InDelta(t, 3.92, got.Amount(CategoryHome), delta)
	assert.InDelta(t, 8.4, got.Amount(CategoryTransport), delta)
	assert.InDelta(t, 6.8, got.Amount(CategoryFood), delta)
	assert.InDelta(t, 3.6, got.Amount(CategoryOther), delta)
	assert.InDelta(t, 22.72, got.Subtotal, delta)
	assert.InDelta(t, 5.68, got.PerPerson, delta)
	assert.Equal(t, TierB, got.Tier)
}

func TestEstimateAllDiscounts(t *testing.T) {
	h := neutralHousehold()
	h.Practices = AllPractices()

	got := Estimate(h, survey.MaxBonus)

	// All six practices together fall through the floor, and the maximum
	// bonus shaves a further 8%.
	assert.InDelta(t, PracticeFloor, got.PracticeFactor, delta)
	assert.InDelta(t, 0.92, got.EngagementFactor, delta)
	assert.InDelta(t, 6.1*0.6*0.92, got.Total, delta)
	assert.InDelta(t, 3.3672, got.Total, 1e-4)
}

func TestEstimateFlightsAreHouseholdLevel(t *testing.T) {
	// The flight addend must not scale with people.
	for _, people := range []int{1, 3, 6} {
		h := neutralHousehold()
		h.People = people
		h.Flights = FlightsSome

		got := Estimate(h, 0)
		assert.InDelta(t, 1.5, got.Amount(CategoryFlights), delta, "people=%d", people)
	}
}

func TestEstimateBreakdownOrder(t *testing.T) {
	got := Estimate(neutralHousehold(), 0)

	require.Len(t, got.Breakdown, 5)
	for i, want := range Categories() {
		assert.Equal(t, want, got.Breakdown[i].Category)
	}
}

func TestEstimateIdempotent(t *testing.T) {
	h := Household{
		People:        3,
		TransportMode: TransportCar,
		Diet:          DietMeat,
		EnergySaving:  EnergyLow,
		Spending:      SpendingSpend,
		Flights:       FlightsMany,
		Practices:     NewPracticeSet(PracticeRecycling, PracticeThermostat),
		WalkedKmToday: 4.2,
	}

	first := Estimate(h, 2)
	second := Estimate(h, 2)
	assert.Equal(t, first, second, "identical inputs must produce identical outputs")
}

func TestEstimateTotalNeverNegative(t *testing.T) {
	// Sweep every categorical combination under maximum discounts. The
	// discounts are multiplicative, so they can only drive the total toward
	// zero, never below it.
	for mode := TransportCar; mode <= TransportActive; mode++ {
		for diet := DietMeat; diet <= DietVeg; diet++ {
			for energy := EnergyHigh; energy <= EnergyLow; energy++ {
				for spending := SpendingFrugal; spending <= SpendingSpend; spending++ {
					for flights := FlightsNone; flights <= FlightsMany; flights++ {
						h := Household{
							People:        1,
							TransportMode: mode,
							Diet:          diet,
							EnergySaving:  energy,
							Spending:      spending,
							Flights:       flights,
							Practices:     AllPractices(),
						}
						got := Estimate(h, survey.MaxBonus)
						assert.GreaterOrEqual(t, got.Total, 0.0)
						assert.GreaterOrEqual(t, got.PerPerson, 0.0)
					}
				}
			}
		}
	}
}

func TestEstimatePeopleGuard(t *testing.T) {
	tests := []struct {
		name   string
		people int
	}{
		{name: "zero people", people: 0},
		{name: "negative people", people: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := neutralHousehold()
			h.People = tt.people
			h.Flights = FlightsFew

			got := Estimate(h, 0)

			// Per-person categories contribute nothing; only the flat flight
			// addend remains, and the per-person figure falls back to the
			// total itself.
			assert.InDelta(t, 0.6, got.Subtotal, delta)
			assert.InDelta(t, got.Total, got.PerPerson, delta)
			assert.GreaterOrEqual(t, got.Total, 0.0)
		})
	}
}

func TestHouseholdScale(t *testing.T) {
	tests := []struct {
		people int
		want   float64
	}{
		{people: 1, want: 1.0},
		{people: 2, want: 0.9},
		{people: 3, want: 0.8},
		{people: 4, want: 0.7},
		{people: 5, want: 0.6},
		{people: 6, want: 0.6},
		{people: 12, want: 0.6},
	}

	for _, tt := range tests {
		got := HouseholdScale(tt.people)
		assert.InDelta(t, tt.want, got, delta, "people=%d", tt.people)
	}

	// The sharing discount saturates: from five people on the factor is the
	// floor constant itself, not an approximation of it.
	for people := 5; people <= 20; people++ {
		assert.Equal(t, HouseholdScaleFloor, HouseholdScale(people), "people=%d", people)
	}
}

func TestEngagementMultiplier(t *testing.T) {
	wants := []float64{1.0, 0.98, 0.96, 0.94, 0.92}
	for bonus, want := range wants {
		got := EngagementMultiplier(survey.Bonus(bonus))
		assert.InDelta(t, want, got, delta, "bonus=%d", bonus)
	}
}

func TestAvoidedEmissionsKg(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want float64
	}{
		{name: "ten kilometres", km: 10, want: 1.9},
		{name: "zero distance", km: 0, want: 0},
		{name: "negative distance clamps to zero", km: -5, want: 0},
		{name: "fractional distance", km: 2.5, want: 0.475},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AvoidedEmissionsKg(tt.km), delta)
		})
	}
}

func TestAvoidedEmissionsLinear(t *testing.T) {
	for km := 0.0; km <= 50; km += 2.5 {
		assert.InDelta(t, km*CarKmFactorKg, AvoidedEmissionsKg(km), delta)
	}
}

func TestAvoidedEmissionsIndependentOfHousehold(t *testing.T) {
	a := neutralHousehold()
	a.WalkedKmToday = 10

	b := a
	b.People = 6
	b.Diet = DietMeat
	b.Flights = FlightsMany
	b.Practices = AllPractices()

	assert.InDelta(t, Estimate(a, 0).AvoidedKg, Estimate(b, survey.MaxBonus).AvoidedKg, delta)
}

func BenchmarkEstimate(b *testing.B) {
	b.ReportAllocs()
	h := Household{
		People:        4,
		TransportMode: TransportMixed,
		Diet:          DietMixed,
		EnergySaving:  EnergyHigh,
		Spending:      SpendingMid,
		Flights:       FlightsFew,
		Practices:     NewPracticeSet(PracticeRecycling, PracticeBagReuse),
		WalkedKmToday: 3,
	}

	for i := 0; i < b.N; i++ {
		_ = Estimate(h, 3)
	}
}
