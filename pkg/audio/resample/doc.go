// ABOUTME: Audio resampling package using frame repetition and decimation
// ABOUTME: Converts audio between different sample rates without filtering
// Package resample provides audio sample rate conversion.
//
// The converter is deliberately naive: it drops frames to downsample by an
// integer factor, averages neighbouring frames to double the rate, and
// repeats frames for any other upsampling ratio. There is no anti-aliasing
// filter. Downsampling by a non-integer factor is not supported.
//
// Channel interleaving is preserved and frames are never split.
//
// Example:
//
//	if !resample.Supported(44100, 48000) {
//	    return resample.ErrUnsupportedRate
//	}
//	out := resample.Rate(samples, 44100, 48000, 2)
package resample
