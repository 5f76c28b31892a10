package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/orbfall.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded default is part of the build; failing to parse it
		// is a programming error, not a runtime condition.
		panic("config: embedded default is invalid: " + err.Error())
	}
	return &cfg
}
