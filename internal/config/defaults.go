package config

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/levels/*.txt
var defaultLevels embed.FS

// DefaultMazeConfig returns the built-in configuration. It matches the
// embedded defaults/maze.yaml and is used if that file cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Screen:   ScreenConfig{Width: 800, Height: 600},
		TickRate: 60,
		Player: PlayerConfig{
			SpawnX:       50,
			SpawnY:       50,
			Width:        20,
			Height:       20,
			Speed:        5,
			StepInterval: 15,
		},
		Enemy: EnemyConfig{
			Width:       120,
			Height:      120,
			Speed:       2,
			RerollOdds:  51,
			SpawnMargin: 40,
			Collider:    Margins{Left: 20, Right: 20, Top: 20, Bottom: 20},
		},
		Difficulty: DifficultyNormal,
		Levels:     []string{"level1.txt", "level2.txt"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}

// LevelFS returns the filesystem level names are resolved against:
// the configured directory, or the embedded default levels.
func LevelFS(cfg MazeConfig) fs.FS {
	if cfg.LevelsDir != "" {
		return os.DirFS(expandHome(cfg.LevelsDir))
	}
	sub, err := fs.Sub(defaultLevels, "defaults/levels")
	if err != nil {
		// Only fails for an invalid path literal.
		panic(err)
	}
	return sub
}
