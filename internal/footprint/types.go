// Package footprint estimates a household's annual carbon footprint from
// categorical lifestyle selections.
//
// The estimator is a pure function: a Household snapshot plus a survey bonus
// in, a Result out. It produces five category subtotals, a discounted grand
// total, a per-person figure, a tier classification, and an independent
// avoided-emissions figure for a day's walking distance. All coefficients are
// illustrative constants, not certified emission factors.
package footprint

import (
	"encoding/json"
	"fmt"
)

// TransportMode describes how the household mostly gets around.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type TransportMode int

const (
	// TransportCar indicates primarily private car travel.
	TransportCar TransportMode = iota
	// TransportMixed indicates a mix of car and public transport.
	TransportMixed
	// TransportTransit indicates primarily public transport.
	TransportTransit
	// TransportActive indicates primarily walking or cycling.
	TransportActive
)

// String returns the canonical label for a TransportMode.
func (m TransportMode) String() string {
	switch m {
	case TransportCar:
		return "car"
	case TransportMixed:
		return "mixed"
	case TransportTransit:
		return "transit"
	case TransportActive:
		return "active"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Label returns the display text for a TransportMode.
func (m TransportMode) Label() string {
	switch m {
	case TransportCar:
		return "Mostly car"
	case TransportMixed:
		return "Mixed"
	case TransportTransit:
		return "Mostly public transit"
	case TransportActive:
		return "Walking and cycling"
	default:
		return m.String()
	}
}

// MarshalJSON implements json.Marshaler to output TransportMode as string.
func (m TransportMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse TransportMode from string.
func (m *TransportMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing transport mode: %w", err)
	}
	parsed, err := ParseTransportMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseTransportMode converts a label to its TransportMode value.
func ParseTransportMode(s string) (TransportMode, error) {
	switch s {
	case "car":
		return TransportCar, nil
	case "mixed":
		return TransportMixed, nil
	case "transit":
		return TransportTransit, nil
	case "active":
		return TransportActive, nil
	default:
		return 0, fmt.Errorf("%w: unknown transport mode %q", ErrHouseholdValidation, s)
	}
}

// isValidTransportMode returns true if the mode is within the valid range.
func isValidTransportMode(m TransportMode) bool {
	return m >= TransportCar && m <= TransportActive
}

// Diet describes the household's typical diet.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Diet int

const (
	// DietMeat indicates meat with most meals.
	DietMeat Diet = iota
	// DietMixed indicates a balanced mixed diet.
	DietMixed
	// DietVeg indicates a vegetarian or plant-forward diet.
	DietVeg
)

// String returns the canonical label for a Diet.
func (d Diet) String() string {
	switch d {
	case DietMeat:
		return "meat"
	case DietMixed:
		return "mixed"
	case DietVeg:
		return "veg"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Label returns the display text for a Diet.
func (d Diet) Label() string {
	switch d {
	case DietMeat:
		return "Meat most days"
	case DietMixed:
		return "Mixed"
	case DietVeg:
		return "Mostly vegetarian"
	default:
		return d.String()
	}
}

// MarshalJSON implements json.Marshaler to output Diet as string.
func (d Diet) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Diet from string.
func (d *Diet) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing diet: %w", err)
	}
	parsed, err := ParseDiet(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDiet converts a label to its Diet value.
func ParseDiet(s string) (Diet, error) {
	switch s {
	case "meat":
		return DietMeat, nil
	case "mixed":
		return DietMixed, nil
	case "veg":
		return DietVeg, nil
	default:
		return 0, fmt.Errorf("%w: unknown diet %q", ErrHouseholdValidation, s)
	}
}

// isValidDiet returns true if the diet is within the valid range.
func isValidDiet(d Diet) bool {
	return d >= DietMeat && d <= DietVeg
}

// EnergySaving describes how actively the household limits home energy use.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type EnergySaving int

const (
	// EnergyHigh indicates consistent energy-saving habits.
	EnergyHigh EnergySaving = iota
	// EnergyMid indicates occasional energy-saving habits.
	EnergyMid
	// EnergyLow indicates little attention to energy use.
	EnergyLow
)

// String returns the canonical label for an EnergySaving level.
func (e EnergySaving) String() string {
	switch e {
	case EnergyHigh:
		return "high"
	case EnergyMid:
		return "mid"
	case EnergyLow:
		return "low"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// Label returns the display text for an EnergySaving level.
func (e EnergySaving) Label() string {
	switch e {
	case EnergyHigh:
		return "Actively saving"
	case EnergyMid:
		return "Some effort"
	case EnergyLow:
		return "Little effort"
	default:
		return e.String()
	}
}

// MarshalJSON implements json.Marshaler to output EnergySaving as string.
func (e EnergySaving) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse EnergySaving from string.
func (e *EnergySaving) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing energy saving: %w", err)
	}
	parsed, err := ParseEnergySaving(str)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEnergySaving converts a label to its EnergySaving value.
func ParseEnergySaving(s string) (EnergySaving, error) {
	switch s {
	case "high":
		return EnergyHigh, nil
	case "mid":
		return EnergyMid, nil
	case "low":
		return EnergyLow, nil
	default:
		return 0, fmt.Errorf("%w: unknown energy saving level %q", ErrHouseholdValidation, s)
	}
}

// isValidEnergySaving returns true if the level is within the valid range.
func isValidEnergySaving(e EnergySaving) bool {
	return e >= EnergyHigh && e <= EnergyLow
}

// Spending describes the household's discretionary consumption level.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Spending int

const (
	// SpendingFrugal indicates below-average discretionary consumption.
	SpendingFrugal Spending = iota
	// SpendingMid indicates average discretionary consumption.
	SpendingMid
	// SpendingSpend indicates above-average discretionary consumption.
	SpendingSpend
)

// String returns the canonical label for a Spending level.
func (s Spending) String() string {
	switch s {
	case SpendingFrugal:
		return "frugal"
	case SpendingMid:
		return "mid"
	case SpendingSpend:
		return "spend"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Label returns the display text for a Spending level.
func (s Spending) Label() string {
	switch s {
	case SpendingFrugal:
		return "Frugal"
	case SpendingMid:
		return "Average"
	case SpendingSpend:
		return "Free-spending"
	default:
		return s.String()
	}
}

// MarshalJSON implements json.Marshaler to output Spending as string.
func (s Spending) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Spending from string.
func (s *Spending) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing spending: %w", err)
	}
	parsed, err := ParseSpending(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSpending converts a label to its Spending value.
func ParseSpending(s string) (Spending, error) {
	switch s {
	case "frugal":
		return SpendingFrugal, nil
	case "mid":
		return SpendingMid, nil
	case "spend":
		return SpendingSpend, nil
	default:
		return 0, fmt.Errorf("%w: unknown spending level %q", ErrHouseholdValidation, s)
	}
}

// isValidSpending returns true if the level is within the valid range.
func isValidSpending(s Spending) bool {
	return s >= SpendingFrugal && s <= SpendingSpend
}

// Flights describes the household's annual flight volume.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Flights int

const (
	// FlightsNone indicates no flights in a typical year.
	FlightsNone Flights = iota
	// FlightsFew indicates one or two short-haul trips.
	FlightsFew
	// FlightsSome indicates several trips or one long-haul.
	FlightsSome
	// FlightsMany indicates frequent or multiple long-haul trips.
	FlightsMany
)

// String returns the canonical label for a Flights level.
func (f Flights) String() string {
	switch f {
	case FlightsNone:
		return "none"
	case FlightsFew:
		return "few"
	case FlightsSome:
		return "some"
	case FlightsMany:
		return "many"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Label returns the display text for a Flights level.
func (f Flights) Label() string {
	switch f {
	case FlightsNone:
		return "None"
	case FlightsFew:
		return "A few short-haul"
	case FlightsSome:
		return "Several, or one long-haul"
	case FlightsMany:
		return "Frequent flyer"
	default:
		return f.String()
	}
}

// MarshalJSON implements json.Marshaler to output Flights as string.
func (f Flights) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Flights from string.
func (f *Flights) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing flights: %w", err)
	}
	parsed, err := ParseFlights(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFlights converts a label to its Flights value.
func ParseFlights(s string) (Flights, error) {
	switch s {
	case "none":
		return FlightsNone, nil
	case "few":
		return FlightsFew, nil
	case "some":
		return FlightsSome, nil
	case "many":
		return FlightsMany, nil
	default:
		return 0, fmt.Errorf("%w: unknown flights level %q", ErrHouseholdValidation, s)
	}
}

// isValidFlights returns true if the level is within the valid range.
func isValidFlights(f Flights) bool {
	return f >= FlightsNone && f <= FlightsMany
}

// Category identifies one of the five fixed footprint categories. Breakdown
// order is always CategoryHome through CategoryFlights.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Category int

const (
	// CategoryHome covers home heating and electricity.
	CategoryHome Category = iota
	// CategoryTransport covers day-to-day travel.
	CategoryTransport
	// CategoryFood covers diet-driven emissions.
	CategoryFood
	// CategoryOther covers remaining discretionary consumption.
	CategoryOther
	// CategoryFlights covers the household's annual flight allowance.
	CategoryFlights
)

// Categories returns the five categories in fixed display order.
func Categories() []Category {
	return []Category{CategoryHome, CategoryTransport, CategoryFood, CategoryOther, CategoryFlights}
}

// String returns the canonical name for a Category.
func (c Category) String() string {
	switch c {
	case CategoryHome:
		return "home"
	case CategoryTransport:
		return "transport"
	case CategoryFood:
		return "food"
	case CategoryOther:
		return "other"
	case CategoryFlights:
		return "flights"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// Label returns the display heading for a Category.
func (c Category) Label() string {
	switch c {
	case CategoryHome:
		return "Home energy"
	case CategoryTransport:
		return "Transport"
	case CategoryFood:
		return "Food"
	case CategoryOther:
		return "Other consumption"
	case CategoryFlights:
		return "Flights"
	default:
		return fmt.Sprintf("Unknown (%d)", int(c))
	}
}

// MarshalJSON implements json.Marshaler to output Category as string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Category from string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing category: %w", err)
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts a name to its Category value.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "home":
		return CategoryHome, nil
	case "transport":
		return CategoryTransport, nil
	case "food":
		return CategoryFood, nil
	case "other":
		return CategoryOther, nil
	case "flights":
		return CategoryFlights, nil
	default:
		return 0, fmt.Errorf("%w: unknown category %q", ErrHouseholdValidation, s)
	}
}
