// ABOUTME: Test tone generator package
// ABOUTME: Produces sine wave buffers in any sample representation
// Package tone generates sine wave test signals.
//
// The wave is computed in float32 and converted to the requested
// representation with the convert package, so a tone rendered as I16 and one
// rendered as F32 then converted to I16 are identical.
//
// Example:
//
//	buf, err := tone.Buffer(audio.Format{SampleFormat: audio.I16, SampleRate: 44100, Channels: 2},
//	    440, 0.5, time.Second)
package tone
