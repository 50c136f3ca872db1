// ABOUTME: Audio encoder package for uncompressed PCM sinks
// ABOUTME: Provides Encoder interface, a raw PCM encoder and a WAV writer
// Package encode writes audio.Buffer values as uncompressed audio.
//
// Supports: raw little-endian PCM in all four sample representations, and
// WAV files (I16 and U16 as 16-bit, U24 as 24-bit, F32 as 32-bit float).
//
// Example:
//
//	encoder, err := encode.NewPCM(buf.Format)
//	data, err := encoder.Encode(buf)
//
//	err = encode.WriteWAV(file, buf)
package encode
