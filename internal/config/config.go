// Package config provides YAML-based configuration loading for the maze game,
// embedded default levels, and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// MazeConfig contains all configuration for a maze session.
type MazeConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	TickRate   int              `yaml:"tick_rate"`
	Render     RenderConfig     `yaml:"render"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	LevelsDir  string           `yaml:"levels_dir"` // Empty = embedded levels
	Levels     []string         `yaml:"levels"`     // Ordered level file names
}

// ScreenConfig is the size of the playfield in world units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig controls how many world units map onto one terminal cell.
// Zero on either axis means fit the world to the terminal.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Margins are insets applied to a bounding box to obtain its collider.
type Margins struct {
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// PlayerConfig defines the player's spawn point, size and movement.
type PlayerConfig struct {
	SpawnX       int     `yaml:"spawn_x"`
	SpawnY       int     `yaml:"spawn_y"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        int     `yaml:"speed"`
	StepInterval int     `yaml:"step_interval"` // Ticks between step cues while moving; 0 disables
	Collider     Margins `yaml:"collider"`
}

// EnemyConfig defines the roaming enemy.
type EnemyConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       int     `yaml:"speed"`
	RerollOdds  int     `yaml:"reroll_odds"`  // Direction re-roll chance is 1 in RerollOdds per tick
	SpawnMargin int     `yaml:"spawn_margin"` // Spawn range is [0, screen-SpawnMargin] on each axis
	Collider    Margins `yaml:"collider"`
}

// Validate checks the settings that the session cannot recover from.
// Entity geometry is validated when entities are constructed.
func (c MazeConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.TickRate))
	}
	if c.Render.CellWidth < 0 || c.Render.CellHeight < 0 {
		errs = append(errs, fmt.Errorf("render cell size %dx%d must not be negative", c.Render.CellWidth, c.Render.CellHeight))
	}
	if c.Enemy.RerollOdds <= 0 {
		errs = append(errs, fmt.Errorf("enemy reroll_odds %d must be positive", c.Enemy.RerollOdds))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("no levels configured"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
