package footprint

import "fmt"

// Household is the immutable input snapshot for one estimate. All fields are
// plain values, so two snapshots compare equal exactly when every selection
// matches.
type Household struct {
	// People is the household size. The contract requires at least one.
	People int `json:"people"`

	// TransportMode is the dominant daily travel mode.
	TransportMode TransportMode `json:"transportMode"`

	// Diet is the household's typical diet.
	Diet Diet `json:"diet"`

	// EnergySaving is the household's home-energy discipline.
	EnergySaving EnergySaving `json:"energySaving"`

	// Spending is the discretionary consumption level.
	Spending Spending `json:"lifestyleSpending"`

	// Flights is the annual flight volume for the whole household.
	Flights Flights `json:"annualFlights"`

	// Practices are the selected sustainable habits.
	Practices PracticeSet `json:"practices"`

	// WalkedKmToday is today's walking distance in kilometres, used only for
	// the avoided-emissions figure.
	WalkedKmToday float64 `json:"walkedKmToday"`
}

// DefaultHousehold returns the single-person neutral snapshot: mixed
// transport and diet, average effort and spending, no flights, no practices.
// Every multiplier in this snapshot is 1.0.
func DefaultHousehold() Household {
	return Household{
		People:        1,
		TransportMode: TransportMixed,
		Diet:          DietMixed,
		EnergySaving:  EnergyMid,
		Spending:      SpendingMid,
		Flights:       FlightsNone,
	}
}

// Validate checks the snapshot against the input contract: people at least
// one, every categorical field within its closed set, no undefined practice
// bits, and a non-negative walking distance. Estimate assumes a snapshot
// that passed this check.
func (h Household) Validate() error {
	if h.People < 1 {
		return fmt.Errorf("%w: people must be >= 1, got %d", ErrHouseholdValidation, h.People)
	}
	if !isValidTransportMode(h.TransportMode) {
		return fmt.Errorf("%w: invalid transport mode: %d", ErrHouseholdValidation, h.TransportMode)
	}
	if !isValidDiet(h.Diet) {
		return fmt.Errorf("%w: invalid diet: %d", ErrHouseholdValidation, h.Diet)
	}
	if !isValidEnergySaving(h.EnergySaving) {
		return fmt.Errorf("%w: invalid energy saving level: %d", ErrHouseholdValidation, h.EnergySaving)
	}
	if !isValidSpending(h.Spending) {
		return fmt.Errorf("%w: invalid spending level: %d", ErrHouseholdValidation, h.Spending)
	}
	if !isValidFlights(h.Flights) {
		return fmt.Errorf("%w: invalid flights level: %d", ErrHouseholdValidation, h.Flights)
	}
	if err := h.Practices.Validate(); err != nil {
		return err
	}
	if h.WalkedKmToday < 0 {
		return fmt.Errorf("%w: walked distance must be >= 0, got %.2f", ErrHouseholdValidation, h.WalkedKmToday)
	}
	return nil
}
