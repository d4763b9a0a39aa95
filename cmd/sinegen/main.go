package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neurlang/spectshow/tone"
)

const usage = "Usage: sinegen sample_rate bits channels wavetype freq amplitude seconds out_wav"

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stdout, usage)
		return 1
	default:
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		return 2
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "sinegen sample_rate bits channels wavetype freq amplitude seconds out_wav",
		Short:         "Write a synthetic tone as a WAV file",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Amplitudes may be negative, so nothing is parsed as a flag.
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 8 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTone(args[:7])
			if err != nil {
				return err
			}
			return t.WriteFile(args[7])
		},
	}
}

func parseTone(args []string) (*tone.Tone, error) {
	t := tone.NewTone()

	ints := []struct {
		name string
		dst  *int
	}{
		{"sample rate", &t.SampleRate},
		{"bits", &t.Precision},
		{"channels", &t.Channels},
	}
	for i, v := range ints {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = n
	}
	if t.Precision%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", tone.ErrPrecision, t.Precision)
	}
	t.Precision /= 8

	shape, err := tone.ParseShape(args[3])
	if err != nil {
		return nil, err
	}
	t.Shape = shape

	floats := []struct {
		name string
		dst  *float64
	}{
		{"frequency", &t.Frequency},
		{"amplitude", &t.Amplitude},
		{"duration", &t.Duration},
	}
	for i, v := range floats {
		f, err := strconv.ParseFloat(args[4+i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = f
	}
	return t, nil
}
