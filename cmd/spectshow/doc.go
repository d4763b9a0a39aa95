// Command spectshow renders an audio waveform and its precomputed spectrogram as a PDF page.
//
// The waveform is drawn on top, the spectrogram below it as a grey scale cell mesh
// with a magnitude colour bar. Both plots share the time range covering the two inputs.
//
// Usage:
//
//	spectshow <in_wav> <in_txt> <out_pdf>
//
// in_txt holds the spectrogram table: a header "time_index <f1> ... <fN>" followed
// by one line "<t> <m1> ... <mN>" per time index. out_pdf is overwritten.
//
// Exit status is 1 for a wrong argument count and 2 when loading or rendering fails.
package main
