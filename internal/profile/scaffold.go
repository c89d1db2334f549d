package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// profileFilePerm matches ordinary user documents.
const profileFilePerm = 0644

// starterProfile is the commented template written by Scaffold. Every
// categorical field lists its closed set so the file is self-documenting.
const starterProfile = `# ecofoot household profile
version: "` + SchemaVersion + `"
name: my-household

household:
  people: 2
  transportMode: mixed # car | mixed | transit | active
  diet: mixed # meat | mixed | veg
  energySaving: mid # high | mid | low
  lifestyleSpending: mid # frugal | mid | spend
  annualFlights: none # none | few | some | many
  # bag-reuse | reusable-cup | fewer-disposables | recycling | unplugging | thermostat
  practices:
    - recycling
  walkedKmToday: 0

survey:
  knowsTrail: false
  hasWalkedTrail: false
  # exercise | nature | scenery | relaxation | social
  reasons: []
  # scenery | cleanliness | facilities | access | safety
  satisfaction: []
`

// Scaffold writes the commented starter profile to path, creating parent
// directories as needed. It refuses to overwrite an existing file.
func Scaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrProfileValidation, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(starterProfile), profileFilePerm); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}

// Write marshals doc as YAML to path, overwriting any existing file. Used to
// persist a snapshot edited interactively.
func Write(path string, doc Document) error {
	data, err := yaml.Marshal(docToYAML(doc))
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, profileFilePerm); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}

// docToYAML rebuilds the document as a plain map keyed by the schema field
// names, since the struct itself carries only json tags.
func docToYAML(doc Document) map[string]any {
	household := map[string]any{
		"people":            doc.Household.People,
		"transportMode":     doc.Household.TransportMode,
		"diet":              doc.Household.Diet,
		"energySaving":      doc.Household.EnergySaving,
		"lifestyleSpending": doc.Household.Spending,
		"annualFlights":     doc.Household.Flights,
		"practices":         doc.Household.Practices,
		"walkedKmToday":     doc.Household.WalkedKmToday,
	}
	surveyDoc := map[string]any{
		"knowsTrail":     doc.Survey.KnowsTrail,
		"hasWalkedTrail": doc.Survey.HasWalkedTrail,
		"reasons":        doc.Survey.Reasons,
		"satisfaction":   doc.Survey.Satisfaction,
	}
	out := map[string]any{
		"version":   doc.Version,
		"household": household,
		"survey":    surveyDoc,
	}
	if doc.Name != "" {
		out["name"] = doc.Name
	}
	return out
}
