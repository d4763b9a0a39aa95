// Package tone synthesizes periodic test signals and writes them as PCM WAV files.
//
// Supported shapes are sine, sawtooth, square and triangle. Amplitudes use a
// full scale of 2000, so an amplitude of 1000 fills half of the sample range.
// For stereo output the second channel is shifted by half a period.
package tone
