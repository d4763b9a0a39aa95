package tone

import "errors"
import "fmt"
import "io"
import "math"
import "os"
import "strings"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"

// FullScale is the amplitude that maps onto the largest sample value.
const FullScale = 2000.0

var (
	ErrShape     = errors.New("tone: unknown wave shape")
	ErrPrecision = errors.New("tone: unsupported sample size")
	ErrChannels  = errors.New("tone: unsupported channel count")
	ErrRate      = errors.New("tone: sample rate must be positive")
)

// Shape selects the waveform of a Tone.
type Shape int

const (
	Sine Shape = iota
	Sawtooth
	Square
	Triangle
)

var shapeNames = [...]string{"sine", "sawtooth", "square", "triangle"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the shape called name.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrShape, name)
}

// at evaluates one period-normalized waveform at frequency f and time t.
func (s Shape) at(f, t float64) float64 {
	switch s {
	case Sawtooth:
		return f*t - math.Floor(f*t)
	case Square:
		if math.Sin(2*math.Pi*f*t) >= 0 {
			return 1
		}
		return -1
	case Triangle:
		return 2*math.Abs(2*(f*t-math.Floor(0.5+f*t))) - 1
	default:
		return math.Sin(2 * math.Pi * f * t)
	}
}

// Tone represents the configuration of a generated signal.
type Tone struct {
	SampleRate int
	// Precision is the sample size in bytes, 1 to 3.
	Precision int
	Channels  int
	Shape     Shape
	Frequency float64
	Amplitude float64
	// Duration in seconds.
	Duration float64
}

// NewTone creates a new Tone instance with default values.
func NewTone() *Tone {
	return &Tone{
		SampleRate: 16000,
		Precision:  2,
		Channels:   1,
		Shape:      Sine,
		Frequency:  440,
		Amplitude:  1000,
		Duration:   1,
	}
}

// Len returns the number of frames in the tone.
func (t *Tone) Len() int {
	return int(float64(t.SampleRate) * t.Duration)
}

// At returns frame i of channel ch, scaled to [-1, 1].
func (t *Tone) At(ch, i int) float64 {
	at := float64(i) / float64(t.SampleRate)
	if ch == 1 && t.Frequency != 0 {
		at += 1 / (2 * t.Frequency)
	}
	v := t.Amplitude * t.Shape.at(t.Frequency, at) / FullScale
	return math.Max(-1, math.Min(1, v))
}

// Format returns the container format of the tone.
func (t *Tone) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(t.SampleRate),
		NumChannels: t.Channels,
		Precision:   t.Precision,
	}
}

func (t *Tone) validate() error {
	if t.SampleRate <= 0 {
		return ErrRate
	}
	if t.Precision < 1 || t.Precision > 3 {
		return fmt.Errorf("%w: %d bits", ErrPrecision, t.Precision*8)
	}
	if t.Channels < 1 || t.Channels > 2 {
		return fmt.Errorf("%w: %d", ErrChannels, t.Channels)
	}
	if int(t.Shape) < 0 || int(t.Shape) >= len(shapeNames) {
		return fmt.Errorf("%w: %v", ErrShape, t.Shape)
	}
	return nil
}

// Streamer returns the tone as a beep stream. A mono tone carries the same
// value in both stream channels.
func (t *Tone) Streamer() beep.Streamer {
	return &streamer{t: t}
}

type streamer struct {
	t   *Tone
	pos int
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos < s.t.Len() {
		left := s.t.At(0, s.pos)
		right := left
		if s.t.Channels == 2 {
			right = s.t.At(1, s.pos)
		}
		samples[n] = [2]float64{left, right}
		n++
		s.pos++
	}
	return n, n > 0
}

func (s *streamer) Err() error { return nil }

// Encode writes the tone to w as a PCM WAV file.
func (t *Tone) Encode(w io.WriteSeeker) error {
	if err := t.validate(); err != nil {
		return err
	}
	if err := wav.Encode(w, t.Streamer(), t.Format()); err != nil {
		return fmt.Errorf("tone: encode: %w", err)
	}
	return nil
}

// WriteFile writes the tone to a WAV file at path.
func (t *Tone) WriteFile(path string) error {
	if err := t.validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	return nil
}
