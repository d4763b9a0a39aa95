// Command sinegen writes a synthetic tone as a PCM WAV file.
//
// Usage:
//
//	sinegen <sample_rate> <bits> <channels> <sine|sawtooth|square|triangle> <freq> <amplitude> <seconds> <out_wav>
//
// bits is 8, 16 or 24 and channels is 1 or 2. An amplitude of 2000 is full
// scale. In stereo the second channel is shifted by half a period.
package main
