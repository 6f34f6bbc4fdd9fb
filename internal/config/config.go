// Package config loads the YAML settings for presentation and input.
package config

import (
	"errors"
	"fmt"
)

// Config is the full settings file.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Effects EffectsConfig `yaml:"effects"`
}

// DisplayConfig controls the frame loop.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// InputConfig maps terminal mouse cells onto the virtual pixels the
// gesture translator works in.
type InputConfig struct {
	CellPixels   float64 `yaml:"cell_pixels"`   // Size of one board cell
	ColumnPixels float64 `yaml:"column_pixels"` // Width of one terminal column
	RowPixels    float64 `yaml:"row_pixels"`    // Height of one terminal row
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// EffectsConfig toggles visual effects.
type EffectsConfig struct {
	Particles bool `yaml:"particles"`
	Shake     bool `yaml:"shake"`
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in [1, 240], got %d", c.Display.FPS))
	}
	if c.Input.CellPixels <= 0 {
		errs = append(errs, fmt.Errorf("input.cell_pixels must be positive, got %v", c.Input.CellPixels))
	}
	if c.Input.ColumnPixels <= 0 {
		errs = append(errs, fmt.Errorf("input.column_pixels must be positive, got %v", c.Input.ColumnPixels))
	}
	if c.Input.RowPixels <= 0 {
		errs = append(errs, fmt.Errorf("input.row_pixels must be positive, got %v", c.Input.RowPixels))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
