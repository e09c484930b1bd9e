package sonogram

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"

	"github.com/RyanBlaney/sonido-sonogram/freqscale"
	"github.com/RyanBlaney/sonido-sonogram/logging"
	"github.com/RyanBlaney/sonido-sonogram/render"
	"github.com/RyanBlaney/sonido-sonogram/spectral"
)

// Spectrogram is the computed magnitude matrix together with everything
// needed to render it.  The matrix itself is never mutated by render
// calls, so the same Spectrogram can be rendered repeatedly with
// different scales, gradients and resolutions.
type Spectrogram struct {
	matrix     *spectral.Matrix
	sampleRate int
	gradient   *render.Gradient
	logger     logging.Logger
}

// Width returns the number of time columns in the matrix.
func (s *Spectrogram) Width() int {
	return s.matrix.Width
}

// Height returns the number of frequency rows in the matrix.
func (s *Spectrogram) Height() int {
	return s.matrix.Height
}

// SampleRate returns the sample rate of the analysed signal in Hz, for
// labelling the frequency axis.
func (s *Spectrogram) SampleRate() int {
	return s.sampleRate
}

// MinMax returns the minimum and maximum raw magnitudes of the matrix.
func (s *Spectrogram) MinMax() (float64, float64) {
	return spectral.MinMax(s.matrix.Data)
}

// ToBuffer maps the matrix to a scalar buffer of imgWidth x imgHeight
// dB values: it remaps the frequency axis through the chosen scale,
// converts to decibels, resamples to the target resolution and flips
// the rows so the lowest frequency ends up at the bottom of the image.
// That flip happens exactly once in the pipeline, here.
func (s *Spectrogram) ToBuffer(scale freqscale.Scale, imgWidth, imgHeight int) ([]float64, error) {
	width, height := s.matrix.Width, s.matrix.Height

	var buf []float64
	switch scale {
	case freqscale.Linear:
		buf = make([]float64, len(s.matrix.Data))
		copy(buf, s.matrix.Data)
	case freqscale.Log:
		remapped, err := s.remapLog()
		if err != nil {
			return nil, err
		}
		buf = remapped
	default:
		return nil, fmt.Errorf("unknown frequency scale: %d", scale)
	}

	spectral.ToDB(buf)

	resized, err := render.Resample(buf, width, height, imgWidth, imgHeight)
	if err != nil {
		return nil, err
	}

	flipRows(resized, imgWidth, imgHeight)
	return resized, nil
}

// remapLog integrates each column over the log-scaled bin ranges,
// producing a buffer of the same dimensions with the low end of the
// spectrum expanded.  The scaler gives its finest spans to rows near 0,
// so it is composed against the reversed frequency axis: output row y
// counts down from Nyquist, and its span [f1, f2) is mirrored back into
// the natural-order column as [height-f2, height-f1).
func (s *Spectrogram) remapLog() ([]float64, error) {
	width, height := s.matrix.Width, s.matrix.Height

	scaler, err := freqscale.NewScaler(freqscale.Log, float64(height), float64(height))
	if err != nil {
		return nil, err
	}

	buf := make([]float64, width*height)
	column := make([]float64, height)

	for w := 0; w < width; w++ {
		for h := 0; h < height; h++ {
			column[h] = s.matrix.At(w, h)
		}
		for y := 0; y < height; y++ {
			f1, f2 := scaler.Scale(height - 1 - y)
			buf[y*width+w] = freqscale.Integrate(float64(height)-f2, float64(height)-f1, column)
		}
	}

	return buf, nil
}

// RGBABytes renders the spectrogram to a row-major RGBA byte buffer of
// imgWidth x imgHeight pixels, 4 bytes per pixel.  Unless the gradient
// domain was locked, it is set to the computed dB range first.  A nil
// gradient uses the builder's gradient.
func (s *Spectrogram) RGBABytes(scale freqscale.Scale, gradient *render.Gradient, imgWidth, imgHeight int) ([]byte, error) {
	if gradient == nil {
		gradient = s.gradient
	}
	if err := gradient.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGradient, err)
	}

	buf, err := s.ToBuffer(scale, imgWidth, imgHeight)
	if err != nil {
		return nil, err
	}

	if !gradient.Locked() {
		min, max := spectral.MinMax(buf)
		gradient.SetMin(min)
		gradient.SetMax(max)
	}
	if err := gradient.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGradient, err)
	}

	img := make([]byte, 0, len(buf)*4)
	for _, val := range buf {
		c := gradient.GetColour(val)
		img = append(img, c.R, c.G, c.B, c.A)
	}

	return img, nil
}

// PNGBytes renders the spectrogram and encodes it as a PNG in memory.
func (s *Spectrogram) PNGBytes(scale freqscale.Scale, gradient *render.Gradient, imgWidth, imgHeight int) ([]byte, error) {
	var out bytes.Buffer
	if err := s.WritePNG(&out, scale, gradient, imgWidth, imgHeight); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WritePNG renders the spectrogram and encodes it as a PNG to w.
func (s *Spectrogram) WritePNG(w io.Writer, scale freqscale.Scale, gradient *render.Gradient, imgWidth, imgHeight int) error {
	rgba, err := s.RGBABytes(scale, gradient, imgWidth, imgHeight)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	copy(img.Pix, rgba)

	return png.Encode(w, img)
}

// ToPNG renders the spectrogram and saves it as a PNG file.
func (s *Spectrogram) ToPNG(path string, scale freqscale.Scale, gradient *render.Gradient, imgWidth, imgHeight int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png file: %w", err)
	}
	defer f.Close()

	if err := s.WritePNG(f, scale, gradient, imgWidth, imgHeight); err != nil {
		return err
	}

	s.logger.Info("png written", logging.Fields{
		"path":   path,
		"width":  imgWidth,
		"height": imgHeight,
	})

	return f.Close()
}

// WriteCSV writes the dB buffer as CSV to w: a header row of column
// indices, then rows of dB values, highest frequency first.
func (s *Spectrogram) WriteCSV(w io.Writer, scale freqscale.Scale, cols, rows int) error {
	buf, err := s.ToBuffer(scale, cols, rows)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	record := make([]string, cols)
	for x := range record {
		record[x] = strconv.Itoa(x)
	}
	if err := writer.Write(record); err != nil {
		return err
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			record[x] = strconv.FormatFloat(buf[y*cols+x], 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ToCSV writes the dB buffer as a CSV file.
func (s *Spectrogram) ToCSV(path string, scale freqscale.Scale, cols, rows int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	if err := s.WriteCSV(f, scale, cols, rows); err != nil {
		return err
	}

	s.logger.Info("csv written", logging.Fields{
		"path": path,
		"cols": cols,
		"rows": rows,
	})

	return f.Close()
}

// DBRange returns the dB range of the rendered buffer at the matrix's
// native resolution, for legend rendering.
func (s *Spectrogram) DBRange(scale freqscale.Scale) (float64, float64, error) {
	buf, err := s.ToBuffer(scale, s.matrix.Width, s.matrix.Height)
	if err != nil {
		return 0, 0, err
	}

	min, max := spectral.MinMax(buf)
	return min, max, nil
}

// flipRows reverses the row order of a row-major buffer in place.
func flipRows(buf []float64, width, height int) {
	for y := 0; y < height/2; y++ {
		top := buf[y*width : (y+1)*width]
		bottom := buf[(height-1-y)*width : (height-y)*width]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}
