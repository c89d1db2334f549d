package footprint

import "fmt"

// Annual per-person base rates in tonnes CO2-equivalent. Illustrative
// constants for relative comparison, not validated emission factors.
const (
	// BaseHomeTonnes is the home-energy base rate before scaling.
	BaseHomeTonnes = 1.4

	// BaseTransportTonnes is the daily-travel base rate.
	BaseTransportTonnes = 2.1

	// BaseFoodTonnes is the diet base rate.
	BaseFoodTonnes = 1.7

	// BaseOtherTonnes is the discretionary-consumption base rate.
	BaseOtherTonnes = 0.9
)

const (
	// HouseholdScaleFloor is the lowest home-energy sharing factor. The
	// sharing discount saturates at five people.
	HouseholdScaleFloor = 0.6

	// HouseholdScaleStep is the per-additional-person sharing discount.
	HouseholdScaleStep = 0.1

	// PracticeFloor is the lowest combined practice multiplier, applied no
	// matter how many practices are selected.
	PracticeFloor = 0.6

	// EngagementStep is the per-bonus-point discount on the total.
	EngagementStep = 0.02

	// CarKmFactorKg is the kilograms of CO2e an average car trip emits per
	// kilometre, used for the avoided-emissions figure.
	CarKmFactorKg = 0.19
)

// factor returns the home-energy multiplier for an EnergySaving level.
func (e EnergySaving) factor() float64 {
	switch e {
	case EnergyHigh:
		return 0.8
	case EnergyMid:
		return 1.0
	case EnergyLow:
		return 1.3
	default:
		panic(fmt.Sprintf("footprint: invalid energy saving level %d", int(e)))
	}
}

// factor returns the travel multiplier for a TransportMode.
func (m TransportMode) factor() float64 {
	switch m {
	case TransportCar:
		return 1.4
	case TransportMixed:
		return 1.0
	case TransportTransit:
		return 0.7
	case TransportActive:
		return 0.4
	default:
		panic(fmt.Sprintf("footprint: invalid transport mode %d", int(m)))
	}
}

// factor returns the food multiplier for a Diet.
func (d Diet) factor() float64 {
	switch d {
	case DietMeat:
		return 1.3
	case DietMixed:
		return 1.0
	case DietVeg:
		return 0.7
	default:
		panic(fmt.Sprintf("footprint: invalid diet %d", int(d)))
	}
}

// factor returns the consumption multiplier for a Spending level.
func (s Spending) factor() float64 {
	switch s {
	case SpendingFrugal:
		return 0.8
	case SpendingMid:
		return 1.0
	case SpendingSpend:
		return 1.25
	default:
		panic(fmt.Sprintf("footprint: invalid spending level %d", int(s)))
	}
}

// addend returns the flat household-level flight tonnage for a Flights
// level. Flights are the one category that does not scale with people; the
// level already describes the whole household's trips.
func (f Flights) addend() float64 {
	switch f {
	case FlightsNone:
		return 0
	case FlightsFew:
		return 0.6
	case FlightsSome:
		return 1.5
	case FlightsMany:
		return 3.0
	default:
		panic(fmt.Sprintf("footprint: invalid flights level %d", int(f)))
	}
}

// factor returns the discount factor for a single selected Practice.
func (p Practice) factor() float64 {
	switch p {
	case PracticeBagReuse:
		return 0.95
	case PracticeReusableCup:
		return 0.92
	case PracticeFewerDisposables:
		return 0.90
	case PracticeRecycling:
		return 0.90
	case PracticeUnplugging:
		return 0.90
	case PracticeThermostat:
		return 0.90
	default:
		panic(fmt.Sprintf("footprint: invalid practice %d", int(p)))
	}
}

// Multiplier returns the combined discount for the selected practices: the
// product of each practice's factor, floored at PracticeFloor. The empty set
// yields exactly 1.
func (s PracticeSet) Multiplier() float64 {
	m := 1.0
	for p := PracticeBagReuse; p <= PracticeThermostat; p++ {
		if s.Has(p) {
			m *= p.factor()
		}
	}
	if m < PracticeFloor {
		return PracticeFloor
	}
	return m
}
