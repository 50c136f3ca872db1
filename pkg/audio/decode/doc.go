// ABOUTME: Audio decoder package for uncompressed PCM sources
// ABOUTME: Provides Decoder interface, a raw PCM decoder and a WAV reader
// Package decode turns uncompressed audio into audio.Buffer values.
//
// Supports: raw little-endian PCM in all four sample representations, and
// WAV files with 16-bit, 24-bit or 32-bit integer samples or 32-bit float
// samples.
//
// Samples keep their native precision: 16-bit WAV data becomes I16, 24-bit
// and 32-bit integer data becomes U24, float data becomes F32.
//
// Example:
//
//	decoder, err := decode.NewPCM(format)
//	buf, err := decoder.Decode(rawBytes)
//
//	buf, err = decode.ReadWAV(file)
package decode
