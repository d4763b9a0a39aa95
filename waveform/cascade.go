package waveform

import "errors"
import "fmt"
import "io"
import "os"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"

var ErrMismatch = errors.New("waveform: inputs differ in format")

// Cascade writes the wav files at paths one after another into w. All inputs
// must share sample rate, channel count and sample size.
func Cascade(w io.WriteSeeker, paths ...string) error {
	if len(paths) == 0 {
		return ErrNoSamples
	}

	var (
		format  beep.Format
		streams []beep.StreamSeekCloser
	)
	defer func() {
		for _, s := range streams {
			s.Close()
		}
	}()

	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("waveform: %w", err)
		}
		s, fm, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("%s: %w: %v", path, ErrFormat, err)
		}
		streams = append(streams, s)

		if i == 0 {
			format = fm
		} else if fm != format {
			return fmt.Errorf("%s: %w: %d Hz %d ch %d bit, want %d Hz %d ch %d bit", path, ErrMismatch,
				fm.SampleRate, fm.NumChannels, fm.Precision*8,
				format.SampleRate, format.NumChannels, format.Precision*8)
		}
	}

	seq := make([]beep.Streamer, len(streams))
	for i, s := range streams {
		seq[i] = s
	}
	if err := wav.Encode(w, beep.Seq(seq...), format); err != nil {
		return fmt.Errorf("waveform: encode: %w", err)
	}
	for i, s := range streams {
		if err := s.Err(); err != nil {
			return fmt.Errorf("%s: %w: %v", paths[i], ErrFormat, err)
		}
	}
	return nil
}

// CascadeFile writes the concatenation of paths to the wav file out. No file
// is left behind when cascading fails.
func CascadeFile(out string, paths ...string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("waveform: %w", err)
	}
	if err := Cascade(f, paths...); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("waveform: %w", err)
	}
	return nil
}
