// Package waveform reads uncompressed WAV audio into a sample vector.
//
// Samples keep the integer scale stored in the container: 8-bit files yield
// unsigned values in [0, 255], wider PCM yields signed values. Only the first
// channel of multi-channel audio is kept. No resampling or normalization is
// applied.
package waveform
