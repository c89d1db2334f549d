package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/survey"
)

func writeProfileFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const validYAML = `
version: "1.0"
name: greens
household:
  people: 3
  transportMode: transit
  diet: veg
  energySaving: high
  lifestyleSpending: frugal
  annualFlights: few
  practices:
    - recycling
    - bag-reuse
  walkedKmToday: 4.5
survey:
  knowsTrail: true
  hasWalkedTrail: true
  reasons: [exercise, nature]
  satisfaction: [scenery]
`

func TestLoadYAML(t *testing.T) {
	path := writeProfileFile(t, "greens.yaml", validYAML)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "greens", p.Name)
	assert.Equal(t, 3, p.Household.People)
	assert.Equal(t, footprint.TransportTransit, p.Household.TransportMode)
	assert.Equal(t, footprint.DietVeg, p.Household.Diet)
	assert.Equal(t, footprint.EnergyHigh, p.Household.EnergySaving)
	assert.Equal(t, footprint.SpendingFrugal, p.Household.Spending)
	assert.Equal(t, footprint.FlightsFew, p.Household.Flights)
	assert.True(t, p.Household.Practices.Has(footprint.PracticeRecycling))
	assert.True(t, p.Household.Practices.Has(footprint.PracticeBagReuse))
	assert.Equal(t, 2, p.Household.Practices.Len())
	assert.InDelta(t, 4.5, p.Household.WalkedKmToday, 1e-9)

	assert.True(t, p.Survey.KnowsTrail)
	assert.True(t, p.Survey.HasWalkedTrail)
	assert.Equal(t, []survey.Reason{survey.ReasonExercise, survey.ReasonNature}, p.Survey.Reasons)
	assert.Equal(t, survey.Bonus(4), p.Bonus())
}

func TestLoadJSON(t *testing.T) {
	path := writeProfileFile(t, "solo.json", `{
		"version": "1.2",
		"household": {
			"people": 1,
			"transportMode": "mixed",
			"diet": "mixed",
			"energySaving": "mid",
			"lifestyleSpending": "mid",
			"annualFlights": "none"
		},
		"survey": {"knowsTrail": false, "hasWalkedTrail": false}
	}`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "solo", p.Name, "nameless profiles take the file base name")
	assert.Equal(t, 0, p.Household.Practices.Len())
	assert.Equal(t, survey.Bonus(0), p.Bonus())
	assert.NoError(t, p.Household.Validate())
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name: "unknown diet names the field",
			yaml: `
version: "1.0"
household:
  people: 1
  transportMode: mixed
  diet: carnivore
  energySaving: mid
  lifestyleSpending: mid
  annualFlights: none
`,
			contains: "household.diet",
		},
		{
			name: "unknown practice names the field",
			yaml: `
version: "1.0"
household:
  people: 1
  transportMode: mixed
  diet: mixed
  energySaving: mid
  lifestyleSpending: mid
  annualFlights: none
  practices: [composting]
`,
			contains: "household.practices",
		},
		{
			name: "unknown survey reason names the field",
			yaml: `
version: "1.0"
household:
  people: 1
  transportMode: mixed
  diet: mixed
  energySaving: mid
  lifestyleSpending: mid
  annualFlights: none
survey:
  reasons: [teleportation]
`,
			contains: "survey.reasons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfileFile(t, "bad.yaml", tt.yaml)

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestLoadRejectsBadPeople(t *testing.T) {
	path := writeProfileFile(t, "bad.yaml", `
version: "1.0"
household:
  people: 0
  transportMode: mixed
  diet: mixed
  energySaving: mid
  lifestyleSpending: mid
  annualFlights: none
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, footprint.ErrHouseholdValidation)
}

func TestSchemaVersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "current schema", version: "1.0"},
		{name: "later minor", version: "1.4"},
		{name: "full semver", version: "1.0.2"},
		{name: "next major rejected", version: "2.0", wantErr: true},
		{name: "garbage rejected", version: "latest", wantErr: true},
		{name: "missing rejected", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromHousehold("", footprint.Household{
				People:        1,
				TransportMode: footprint.TransportMixed,
				Diet:          footprint.DietMixed,
				EnergySaving:  footprint.EnergyMid,
				Spending:      footprint.SpendingMid,
				Flights:       footprint.FlightsNone,
			}, survey.Answers{})
			doc.Version = tt.version

			_, err := doc.ToProfile()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSchemaVersion)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ECOFOOT_PROFILE__HOUSEHOLD__PEOPLE", "5")

	path := writeProfileFile(t, "greens.yaml", validYAML)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Household.People)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeProfileFile(t, "p.toml", `people = 1`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileValidation)
}

func TestScaffoldProducesLoadableProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	require.NoError(t, Scaffold(path))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-household", p.Name)
	assert.Equal(t, 2, p.Household.People)
	assert.True(t, p.Household.Practices.Has(footprint.PracticeRecycling))

	// Never overwrites.
	err = Scaffold(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileValidation)
}

func TestFromHouseholdRoundTrip(t *testing.T) {
	h := footprint.Household{
		People:        4,
		TransportMode: footprint.TransportCar,
		Diet:          footprint.DietMeat,
		EnergySaving:  footprint.EnergyLow,
		Spending:      footprint.SpendingSpend,
		Flights:       footprint.FlightsMany,
		Practices:     footprint.NewPracticeSet(footprint.PracticeThermostat),
		WalkedKmToday: 1.5,
	}
	a := survey.Answers{
		KnowsTrail:   true,
		Reasons:      []survey.Reason{survey.ReasonScenery},
		Satisfaction: []survey.Satisfaction{survey.SatisfactionSafety},
	}

	doc := FromHousehold("family", h, a)
	p, err := doc.ToProfile()
	require.NoError(t, err)

	assert.Equal(t, "family", p.Name)
	assert.Equal(t, h, p.Household)
	assert.Equal(t, a, p.Survey)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	doc := FromHousehold("saved", footprint.Household{
		People:        2,
		TransportMode: footprint.TransportActive,
		Diet:          footprint.DietVeg,
		EnergySaving:  footprint.EnergyHigh,
		Spending:      footprint.SpendingFrugal,
		Flights:       footprint.FlightsNone,
		Practices:     footprint.AllPractices(),
		WalkedKmToday: 12,
	}, survey.Answers{HasWalkedTrail: true})
	require.NoError(t, Write(path, doc))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", p.Name)
	assert.Equal(t, footprint.AllPractices(), p.Household.Practices)
	assert.Equal(t, survey.Bonus(3), p.Bonus())
}
