package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sonogram "github.com/RyanBlaney/sonido-sonogram"
	"github.com/RyanBlaney/sonido-sonogram/config"
	"github.com/RyanBlaney/sonido-sonogram/freqscale"
	"github.com/RyanBlaney/sonido-sonogram/logging"
	"github.com/RyanBlaney/sonido-sonogram/render"
)

// cliFlags holds the raw flag values.  They are merged over the config
// file in run, with explicitly set flags winning.
type cliFlags struct {
	wav        string
	pngOut     string
	csvOut     string
	configPath string

	channel    int
	downsample int
	normalise  bool
	scale      float64

	numBins  int
	stepSize int
	window   string

	width     int
	height    int
	freqScale string
	gradient  string

	quiet bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:           "sonogram",
		Short:         "Render a spectrogram of a WAV file as PNG or CSV",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.wav, "wav", "w", "",
		"Path of the WAV file to analyse (required)")
	rootCmd.Flags().StringVarP(&flags.pngOut, "png", "p", "",
		"Write the spectrogram as a PNG image to this path")
	rootCmd.Flags().StringVarP(&flags.csvOut, "csv", "c", "",
		"Write the spectrogram as a CSV table to this path")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path of a YAML config file supplying defaults for the other flags")

	rootCmd.Flags().IntVar(&flags.channel, "channel", 1,
		"Audio channel to analyse, starting at 1")
	rootCmd.Flags().IntVar(&flags.downsample, "downsample", 1,
		"Downsample the signal by averaging groups of this many samples")
	rootCmd.Flags().BoolVar(&flags.normalise, "normalise", false,
		"Rescale the signal so the peak amplitude is 1")
	rootCmd.Flags().Float64Var(&flags.scale, "scale", 1.0,
		"Multiply every sample by this factor before analysis")

	rootCmd.Flags().IntVar(&flags.numBins, "num-bins", 2048,
		"FFT frame length in samples")
	rootCmd.Flags().IntVar(&flags.stepSize, "step-size", 0,
		"Stride between frames in samples, 0 means num-bins")
	rootCmd.Flags().StringVar(&flags.window, "window-function", "rectangular",
		"Window function: rectangular, hann or blackman_harris")

	rootCmd.Flags().IntVar(&flags.width, "width", 512,
		"Output width in pixels")
	rootCmd.Flags().IntVar(&flags.height, "height", 512,
		"Output height in pixels")
	rootCmd.Flags().StringVar(&flags.freqScale, "freq-scale", "linear",
		"Frequency axis scale: linear or log")
	rootCmd.Flags().StringVar(&flags.gradient, "gradient", "default",
		"Colour theme: default, audacity, rainbow, black-white or white-black")

	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"Suppress progress output")

	rootCmd.MarkFlagRequired("wav")

	return rootCmd
}

// mergeSettings layers the flag values over the config file settings.
// Only flags the user actually set override the file.
func mergeSettings(cmd *cobra.Command, flags *cliFlags) (*config.Settings, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("channel") {
		settings.Input.Channel = flags.channel
	}
	if cmd.Flags().Changed("downsample") {
		settings.Input.Downsample = flags.downsample
	}
	if cmd.Flags().Changed("normalise") {
		settings.Input.Normalise = flags.normalise
	}
	if cmd.Flags().Changed("num-bins") {
		settings.Spectral.NumBins = flags.numBins
	}
	if cmd.Flags().Changed("step-size") {
		settings.Spectral.StepSize = flags.stepSize
	}
	if cmd.Flags().Changed("window-function") {
		settings.Spectral.Window = flags.window
	}
	if cmd.Flags().Changed("width") {
		settings.Output.Width = flags.width
	}
	if cmd.Flags().Changed("height") {
		settings.Output.Height = flags.height
	}
	if cmd.Flags().Changed("freq-scale") {
		settings.Output.FreqScale = flags.freqScale
	}
	if cmd.Flags().Changed("gradient") {
		settings.Output.Gradient = flags.gradient
	}
	if cmd.Flags().Changed("quiet") {
		settings.Quiet = flags.quiet
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func run(cmd *cobra.Command, flags *cliFlags) error {
	if flags.pngOut == "" && flags.csvOut == "" {
		return fmt.Errorf("nothing to do: pass --png, --csv or both")
	}

	settings, err := mergeSettings(cmd, flags)
	if err != nil {
		return err
	}

	var logger logging.Logger = &logging.NoOpLogger{}
	if !settings.Quiet {
		logger = logging.NewDefaultLogger()
	}

	scale, err := freqscale.ByName(settings.Output.FreqScale)
	if err != nil {
		return err
	}
	gradient, err := render.ThemeByName(settings.Output.Gradient)
	if err != nil {
		return err
	}

	stepSize := settings.Spectral.StepSize
	if stepSize == 0 {
		stepSize = settings.Spectral.NumBins
	}

	builder := sonogram.NewSpecOptionsBuilder(settings.Spectral.NumBins).
		SetStepSize(stepSize).
		SetWindowFn(settings.Spectral.Window).
		SetGradient(gradient).
		SetLogger(logger).
		Channel(settings.Input.Channel).
		LoadDataFromFile(flags.wav).
		Downsample(settings.Input.Downsample)
	if flags.scale != 1.0 {
		builder.Scale(flags.scale)
	}
	if settings.Input.Normalise {
		builder.Normalise()
	}

	spectrograph, err := builder.Build()
	if err != nil {
		return err
	}

	spectrogram, err := spectrograph.Compute()
	if err != nil {
		return err
	}

	width, height := settings.Output.Width, settings.Output.Height
	if flags.pngOut != "" {
		if err := spectrogram.ToPNG(flags.pngOut, scale, gradient, width, height); err != nil {
			return err
		}
	}
	if flags.csvOut != "" {
		if err := spectrogram.ToCSV(flags.csvOut, scale, width, height); err != nil {
			return err
		}
	}

	return nil
}
