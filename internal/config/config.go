// Package config provides YAML-based game configuration loading for the
// chef-grid platform.
package config

import "fmt"

// ChefConfig contains all configuration for the sandwich chef game.
type ChefConfig struct {
	Board    ChefBoard    `yaml:"board"`
	Gameplay ChefGameplay `yaml:"gameplay"`
}

// ChefBoard defines the board geometry.
type ChefBoard struct {
	// Size is the full board width and height in cells, counting the
	// decorative corners and the out-of-play perimeter ring. Must be odd
	// (so a center start cell exists) and at least 5.
	Size int `yaml:"size"`
}

// ChefGameplay defines session rules.
type ChefGameplay struct {
	// TargetRounds ends the session after this many delivered sandwiches.
	// 0 means endless play.
	TargetRounds int `yaml:"target_rounds"`
}

// Validate checks the configuration for values the game cannot run with.
func (c ChefConfig) Validate() error {
	if c.Board.Size < 5 {
		return fmt.Errorf("config: board size %d is below the minimum of 5", c.Board.Size)
	}
	if c.Board.Size%2 == 0 {
		return fmt.Errorf("config: board size %d must be odd", c.Board.Size)
	}
	if c.Gameplay.TargetRounds < 0 {
		return fmt.Errorf("config: target_rounds %d must not be negative", c.Gameplay.TargetRounds)
	}
	return nil
}
