// Package spectrogram loads precomputed spectrogram tables from text files.
//
// The expected layout is whitespace separated:
//
//	time_index <f1> <f2> ... <fN>
//	<t1> <m1_1> <m1_2> ... <m1_N>
//	<t2> <m2_1> <m2_2> ... <m2_N>
//
// The header's first token is a label and is discarded. Magnitudes are kept
// exactly as written (decibels, negative values included); the package does
// no signal processing of its own.
package spectrogram
