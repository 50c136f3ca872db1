// ABOUTME: Conversion pipeline package
// ABOUTME: Bridges a producer's PCM format to a consumer's PCM format
// Package pipeline composes the convert, remix and resample stages.
//
// A Converter is built once from the source and destination formats. New
// rejects pairs the stages cannot bridge, so Convert never reaches a
// contract violation inside a stage.
//
// Example:
//
//	conv, err := pipeline.New(
//	    audio.Format{SampleFormat: audio.I16, SampleRate: 22050, Channels: 1},
//	    audio.Format{SampleFormat: audio.F32, SampleRate: 44100, Channels: 2},
//	)
//	out, err := conv.Convert(buf)
package pipeline
