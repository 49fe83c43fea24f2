package config

import (
	_ "embed"
)

//go:embed defaults/chef.yaml
var defaultChefYAML []byte

// DefaultChefConfig returns the default chef game configuration.
func DefaultChefConfig() ChefConfig {
	return ChefConfig{
		Board: ChefBoard{
			Size: 5,
		},
		Gameplay: ChefGameplay{
			TargetRounds: 0, // Endless
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "chef":
		return defaultChefYAML
	default:
		return nil
	}
}
