package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neurlang/spectshow/tone"
	"github.com/neurlang/spectshow/waveform"
)

func writeTone(t *testing.T, path string, rate int, seconds float64) {
	t.Helper()
	tn := tone.NewTone()
	tn.SampleRate = rate
	tn.Duration = seconds
	if err := tn.WriteFile(path); err != nil {
		t.Fatalf("write tone: %v", err)
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"list.txt"}, {"a", "b", "c"}} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 1 {
			t.Errorf("run(%q) = %d, want 1", args, code)
		}
		if !strings.Contains(stdout.String(), "Usage: cascade") {
			t.Errorf("run(%q) stdout = %q", args, stdout.String())
		}
	}
}

func TestRunJoinsList(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	writeTone(t, a, 8000, 0.25)
	writeTone(t, b, 8000, 0.5)

	list := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(list, []byte(a+"\n\n"+b+"\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	out := filepath.Join(dir, "out.wav")

	var stdout, stderr bytes.Buffer
	if code := run([]string{list, out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	w, err := waveform.Load(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(w.Samples) != 6000 {
		t.Fatalf("got %d samples, want 6000", len(w.Samples))
	}
}

func TestRunMismatchedRates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	writeTone(t, a, 8000, 0.1)
	writeTone(t, b, 16000, 0.1)

	list := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(list, []byte(a+"\n"+b+"\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	out := filepath.Join(dir, "out.wav")

	var stdout, stderr bytes.Buffer
	if code := run([]string{list, out}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output left behind: %v", err)
	}
}
