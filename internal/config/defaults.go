package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in settings. It matches defaults/blockfall.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{FPS: 60},
		Input: InputConfig{
			CellPixels:   25,
			ColumnPixels: 12.5,
			RowPixels:    25,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
		Effects: EffectsConfig{
			Particles: true,
			Shake:     true,
		},
	}
}
