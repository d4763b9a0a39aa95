package waveform

import "errors"
import "os"
import "path/filepath"
import "testing"

import "github.com/neurlang/spectshow/internal/testsupport"

func TestCascadeFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	out := filepath.Join(dir, "out.wav")
	testsupport.WriteWAV(t, a, 8000, 1, 16, []int32{100, 200, 300})
	testsupport.WriteWAV(t, b, 8000, 1, 16, []int32{-400, -500})

	if err := CascadeFile(out, a, b, a); err != nil {
		t.Fatalf("cascade: %v", err)
	}
	w, err := Load(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.SampleRate != 8000 || w.Channels != 1 || w.Precision != 2 {
		t.Fatalf("unexpected format %+v", w)
	}
	near(t, w.Samples, []float64{100, 200, 300, -400, -500, 100, 200, 300})
}

func TestCascadeFormatMismatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	out := filepath.Join(dir, "out.wav")
	testsupport.WriteWAV(t, a, 8000, 1, 16, []int32{1, 2})
	testsupport.WriteWAV(t, b, 16000, 1, 16, []int32{3, 4})

	if err := CascadeFile(out, a, b); !errors.Is(err, ErrMismatch) {
		t.Fatalf("err = %v, want ErrMismatch", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output left behind: %v", err)
	}
}

func TestCascadeMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.wav")
	if err := CascadeFile(out, filepath.Join(dir, "nope.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
	if err := CascadeFile(out); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("err = %v, want ErrNoSamples", err)
	}
}
