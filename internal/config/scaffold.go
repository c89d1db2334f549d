package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the default configuration file name under the config dir.
const configFileName = "config.yaml"

// configFilePerm keeps the config file private to the owning user.
const configFilePerm = 0600

// configHeader tops every scaffolded config file.
const configHeader = `# ecofoot configuration
#
# Values here can be overridden per invocation with ECOFOOT_ environment
# variables, using "__" between sections: ECOFOOT_OUTPUT__LOCALE=fr
`

// ConfigPath returns where this configuration is read from and saved to:
// the explicit path set via SetConfigPath or Load, otherwise
// <config dir>/config.yaml.
func (c *Config) ConfigPath() string {
	if c.path != "" {
		return c.path
	}
	dir, err := GetConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(dir, configFileName)
}

// SetConfigPath overrides where Save writes the configuration.
func (c *Config) SetConfigPath(path string) {
	c.path = path
}

// Save writes the configuration as commented YAML to ConfigPath(), creating
// the parent directory when needed.
func (c *Config) Save() error {
	path := c.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	out := append([]byte(configHeader), data...)
	if err := os.WriteFile(path, out, configFilePerm); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
