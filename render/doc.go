// Package render draws a waveform above its spectrogram on a single PDF page.
//
// The two plots share the horizontal time range covering both inputs. The
// spectrogram is drawn as a grey scale cell mesh with a colour bar to its right.
// Figure holds the page geometry; NewFigure returns the defaults.
package render
