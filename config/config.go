// Package config holds the file-backed settings for the sonogram CLI.
// Settings mirror the command line flags; a YAML file supplies defaults
// that flags can still override.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the full configuration for one spectrogram run.
type Settings struct {
	Input    InputSettings    `yaml:"input"`
	Spectral SpectralSettings `yaml:"spectral"`
	Output   OutputSettings   `yaml:"output"`
	Quiet    bool             `yaml:"quiet"`
}

// InputSettings selects and preprocesses the audio source.
type InputSettings struct {
	Channel    int  `yaml:"channel"`    // 1-based channel to extract
	Downsample int  `yaml:"downsample"` // averaging divisor, 1 disables
	Normalise  bool `yaml:"normalise"`  // rescale peak amplitude to 1
}

// SpectralSettings controls the framing and transform stage.
type SpectralSettings struct {
	NumBins  int    `yaml:"num_bins"`  // FFT frame length in samples
	StepSize int    `yaml:"step_size"` // frame stride, 0 means num_bins
	Window   string `yaml:"window"`    // rectangular, hann or blackman_harris
}

// OutputSettings controls rendering and export.
type OutputSettings struct {
	Width     int    `yaml:"width"`      // output width in pixels
	Height    int    `yaml:"height"`     // output height in pixels
	FreqScale string `yaml:"freq_scale"` // linear or log
	Gradient  string `yaml:"gradient"`   // colour theme name
}

// Default returns the settings used when no file or flag says otherwise.
func Default() *Settings {
	return &Settings{
		Input: InputSettings{
			Channel:    1,
			Downsample: 1,
		},
		Spectral: SpectralSettings{
			NumBins: 2048,
			Window:  "rectangular",
		},
		Output: OutputSettings{
			Width:     512,
			Height:    512,
			FreqScale: "linear",
			Gradient:  "default",
		},
	}
}

// Validate checks the settings are inside the pipeline's contract.  It
// mirrors the builder's checks so a bad file fails before any audio is
// read.
func (s *Settings) Validate() error {
	if s.Input.Channel < 1 {
		return fmt.Errorf("input.channel must be 1 or greater, got %d", s.Input.Channel)
	}
	if s.Input.Downsample < 1 {
		return fmt.Errorf("input.downsample must be 1 or greater, got %d", s.Input.Downsample)
	}
	if s.Spectral.NumBins <= 16 {
		return fmt.Errorf("spectral.num_bins must be greater than 16, got %d", s.Spectral.NumBins)
	}
	if s.Spectral.StepSize < 0 || s.Spectral.StepSize > s.Spectral.NumBins {
		return fmt.Errorf("spectral.step_size must be between 0 and num_bins, got %d", s.Spectral.StepSize)
	}
	if s.Output.Width < 1 || s.Output.Height < 1 {
		return fmt.Errorf("output size must be positive, got %dx%d", s.Output.Width, s.Output.Height)
	}
	return nil
}

// Load reads settings from a YAML file layered over the defaults.  An
// empty path returns the defaults unchanged.
func Load(path string) (*Settings, error) {
	settings := Default()

	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return settings, nil
}
