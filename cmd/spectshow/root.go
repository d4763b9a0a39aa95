package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/neurlang/spectshow/render"
	"github.com/neurlang/spectshow/spectrogram"
	"github.com/neurlang/spectshow/waveform"
)

var errUsage = errors.New("usage")

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "spectshow in_wav in_txt out_pdf",
		Short:         "Render a waveform and its spectrogram to PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Every argument is a path, including ones that look like flags.
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(args[0], args[1], args[2])
		},
	}
}

// show loads both inputs and writes the figure to outPath.
func show(wavPath, txtPath, outPath string) error {
	table, err := spectrogram.Load(txtPath)
	if err != nil {
		return err
	}

	wave, err := waveform.Load(wavPath)
	if err != nil {
		return err
	}

	return render.NewFigure().Save(outPath, wave, table)
}
