package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// profileEnvPrefix scopes profile overrides away from the app config ones:
// ECOFOOT_PROFILE__HOUSEHOLD__PEOPLE=3 overrides household.people.
const profileEnvPrefix = "ECOFOOT_PROFILE__"

// Load reads, overrides, validates, and converts the profile at path. The
// parser follows the file extension: .yaml/.yml or .json. A profile without
// its own name takes the file base name.
func Load(path string) (*Profile, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	p, err := doc.ToProfile()
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadDocument reads the raw profile document at path with
// ECOFOOT_PROFILE__ environment overrides applied, without validating it.
func LoadDocument(path string) (Document, error) {
	k := koanf.New(".")

	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return Document{}, fmt.Errorf("%w: unsupported profile format %q", ErrProfileValidation, ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return Document{}, fmt.Errorf("loading profile %s: %w", path, err)
	}

	err := k.Load(env.Provider(profileEnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(profileEnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return Document{}, fmt.Errorf("loading profile environment overrides: %w", err)
	}

	var doc Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Document{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return doc, nil
}
