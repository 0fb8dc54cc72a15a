package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts the enemy for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed = max(1, cfg.Enemy.Speed-1)
		cfg.Enemy.RerollOdds = cfg.Enemy.RerollOdds + 30
	case DifficultyHard:
		cfg.Enemy.Speed++
		cfg.Enemy.RerollOdds = max(1, cfg.Enemy.RerollOdds-20)
	}
}
