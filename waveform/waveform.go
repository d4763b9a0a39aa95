package waveform

import "errors"
import "fmt"
import "io"
import "math"
import "os"

import "github.com/faiface/beep/wav"

var (
	ErrNoSamples = errors.New("waveform: no samples")
	ErrFormat    = errors.New("waveform: invalid wav container")
)

// Waveform is a mono sample vector with its sample rate.
type Waveform struct {
	SampleRate int

	// Channels and Precision describe the source container, Precision is
	// in bytes per sample.
	Channels  int
	Precision int
	Samples   []float64
}

// Load reads the wav file at path.
func Load(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}
	defer f.Close()

	w, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Decode reads a wav stream from r.
func Decode(r io.Reader) (*Waveform, error) {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer stream.Close()

	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrFormat, format.SampleRate)
	}

	w := &Waveform{
		SampleRate: int(format.SampleRate),
		Channels:   format.NumChannels,
		Precision:  format.Precision,
	}
	if n := stream.Len(); n > 0 {
		w.Samples = make([]float64, 0, n)
	}

	var buf = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			w.Samples = append(w.Samples, restore(buf[i][0], format.Precision))
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if len(w.Samples) == 0 {
		return nil, ErrNoSamples
	}
	return w, nil
}

// restore maps a decoded sample in [-1, 1] back onto the stored integer scale.
func restore(v float64, precision int) float64 {
	if precision == 1 {
		return math.Round((v + 1) / 2 * 255)
	}
	return math.Round(v * (math.Exp2(float64(precision*8-1)) - 1))
}

// Time returns the time in seconds of sample i.
func (w *Waveform) Time(i int) float64 {
	return float64(i) / float64(w.SampleRate)
}

// Duration returns the time of the last sample.
func (w *Waveform) Duration() float64 {
	return w.Time(len(w.Samples) - 1)
}

// Span returns the first and last sample times.
func (w *Waveform) Span() (min, max float64) {
	return 0, w.Duration()
}
