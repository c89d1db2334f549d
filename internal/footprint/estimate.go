package footprint

import "github.com/greensteps/ecofoot/internal/survey"

// CategoryAmount is one entry of a Result breakdown.
type CategoryAmount struct {
	// Category identifies the footprint category.
	Category Category `json:"category"`

	// Tonnes is the annual CO2e subtotal for the category.
	Tonnes float64 `json:"tonnes"`
}

// Result is the complete outcome of one estimate.
type Result struct {
	// Breakdown holds the five category subtotals in fixed order, home
	// through flights.
	Breakdown []CategoryAmount `json:"breakdown"`

	// Subtotal is the sum of the breakdown before discounts.
	Subtotal float64 `json:"subtotal"`

	// PracticeFactor is the combined practice discount in [PracticeFloor, 1].
	PracticeFactor float64 `json:"practiceFactor"`

	// EngagementFactor is the survey-bonus discount in [0.92, 1].
	EngagementFactor float64 `json:"engagementFactor"`

	// Total is the discounted household total in tonnes CO2e per year.
	Total float64 `json:"total"`

	// PerPerson is Total divided by people, or Total itself when the people
	// guard engages.
	PerPerson float64 `json:"perPerson"`

	// Tier is the classification of PerPerson.
	Tier Tier `json:"tier"`

	// AvoidedKg is the emissions a car trip over today's walked distance
	// would have produced. Independent of the household figures.
	AvoidedKg float64 `json:"avoidedEmissionsKg"`
}

// Amount returns the breakdown subtotal for a category, or zero if the
// breakdown lacks it.
func (r Result) Amount(c Category) float64 {
	for _, ca := range r.Breakdown {
		if ca.Category == c {
			return ca.Tonnes
		}
	}
	return 0
}

// Estimate computes the annual footprint for a household snapshot and a
// survey bonus.
//
// Category subtotals use fixed per-person base rates times the categorical
// multipliers, except flights, which is a flat household-level addend. The
// home category alone carries the household sharing scale. The subtotal is
// then discounted by the practice multiplier and the engagement multiplier.
//
// Estimate is pure and deterministic: identical inputs produce identical
// results. It never returns an error; snapshots are validated at the input
// boundary (Household.Validate), and the numeric edge cases the contract
// allows through (people below one, negative walked distance) are guarded
// rather than rejected.
func Estimate(h Household, bonus survey.Bonus) Result {
	// Guard: a non-positive people count contributes nothing to the
	// per-person categories instead of driving them negative.
	people := float64(h.People)
	if people < 0 {
		people = 0
	}

	home := BaseHomeTonnes * people * HouseholdScale(h.People) * h.EnergySaving.factor()
	transport := BaseTransportTonnes * people * h.TransportMode.factor()
	food := BaseFoodTonnes * people * h.Diet.factor()
	other := BaseOtherTonnes * people * h.Spending.factor()
	flights := h.Flights.addend()

	breakdown := []CategoryAmount{
		{Category: CategoryHome, Tonnes: home},
		{Category: CategoryTransport, Tonnes: transport},
		{Category: CategoryFood, Tonnes: food},
		{Category: CategoryOther, Tonnes: other},
		{Category: CategoryFlights, Tonnes: flights},
	}

	subtotal := home + transport + food + other + flights
	practice := h.Practices.Multiplier()
	engagement := EngagementMultiplier(bonus)
	total := subtotal * practice * engagement

	perPerson := total
	if h.People > 0 {
		perPerson = total / float64(h.People)
	}

	return Result{
		Breakdown:        breakdown,
		Subtotal:         subtotal,
		PracticeFactor:   practice,
		EngagementFactor: engagement,
		Total:            total,
		PerPerson:        perPerson,
		Tier:             TierFor(perPerson),
		AvoidedKg:        AvoidedEmissionsKg(h.WalkedKmToday),
	}
}

// HouseholdScale returns the home-energy sharing factor for a household
// size: 1 for a single person, 0.1 less per additional person, floored at
// HouseholdScaleFloor from five people on.
func HouseholdScale(people int) float64 {
	scale := 1 - HouseholdScaleStep*float64(people-1)
	if scale < HouseholdScaleFloor {
		return HouseholdScaleFloor
	}
	return scale
}

// EngagementMultiplier converts a survey bonus to the flat discount applied
// to the total: 2% per bonus point.
func EngagementMultiplier(bonus survey.Bonus) float64 {
	return 1 - EngagementStep*float64(bonus)
}

// AvoidedEmissionsKg returns the kilograms of CO2e a car trip over the given
// distance would have produced. Negative distances clamp to zero.
func AvoidedEmissionsKg(walkedKm float64) float64 {
	if walkedKm < 0 {
		walkedKm = 0
	}
	return walkedKm * CarKmFactorKg
}
