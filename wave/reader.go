// Package wave reads 16-bit PCM WAV files into normalised sample
// buffers for the spectrogram pipeline.
package wave

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

var (
	// ErrInvalidCodec means the file is not WAV or not 16-bit PCM.
	ErrInvalidCodec = errors.New("wave: only 16-bit PCM wav data is supported")

	// ErrInvalidChannel means the requested channel does not exist in
	// the file.
	ErrInvalidChannel = errors.New("wave: channel out of range")
)

// maxInt16 normalises 16-bit samples into [-1, 1]
const maxInt16 = 32767.0

// File is the decoded content of a WAV file: one selected channel of
// samples normalised to [-1, 1] plus the stream parameters.
type File struct {
	Samples    []float64
	SampleRate int
	Channels   int
	BitDepth   int
}

// ReadFile decodes a WAV file and de-interleaves the given 1-based
// channel.  Only 16-bit PCM data is accepted; anything else returns
// ErrInvalidCodec.
func ReadFile(path string, channel int) (*File, error) {
	if channel < 1 {
		return nil, fmt.Errorf("%w: channel must be 1 or greater, got %d", ErrInvalidChannel, channel)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a valid wav file", ErrInvalidCodec, path)
	}

	if decoder.BitDepth != 16 {
		return nil, fmt.Errorf("%w: file has %d bits per sample", ErrInvalidCodec, decoder.BitDepth)
	}

	numChans := int(decoder.NumChans)
	if channel > numChans {
		return nil, fmt.Errorf("%w: channel %d requested but file has %d channel(s)", ErrInvalidChannel, channel, numChans)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	// De-interleave the selected channel and normalise
	frames := len(buf.Data) / numChans
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		samples[i] = float64(buf.Data[i*numChans+channel-1]) / maxInt16
	}

	return &File{
		Samples:    samples,
		SampleRate: int(decoder.SampleRate),
		Channels:   numChans,
		BitDepth:   int(decoder.BitDepth),
	}, nil
}
