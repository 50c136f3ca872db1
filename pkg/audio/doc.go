// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines SampleFormat, Format and Buffer for interleaved PCM
// Package audio provides the fundamental types shared by the conversion packages.
//
// This package defines:
//   - SampleFormat: the four sample representations (I16, U16, U24, F32)
//   - Sample: the Go element types backing them (int16, uint16, uint32, float32)
//   - Format: representation, sample rate and channel count of a stream
//   - Buffer: interleaved samples tagged with their Format
//
// Buffers are always interleaved: for C channels, elements [0, C) are
// frame 0, [C, 2C) frame 1 and so on.
//
// Example:
//
//	buf, err := audio.NewBuffer([]int16{0, 0, 100, -100}, 44100, 2)
//	fmt.Println(buf.Format) // i16 44100Hz 2ch
//	fmt.Println(buf.Frames()) // 2
package audio
