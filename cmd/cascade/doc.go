// Command cascade joins WAV files end to end.
//
// Usage:
//
//	cascade <list_file> <out_wav>
//
// list_file names one input WAV per line; blank lines are ignored. All inputs
// must share sample rate, channel count and sample size.
package main
