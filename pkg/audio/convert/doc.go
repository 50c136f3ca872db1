// ABOUTME: Sample format conversion package
// ABOUTME: Converts interleaved PCM between I16, U16, U24 and F32
// Package convert reinterprets sample values between representations.
//
// Only values change: the output always has the same length and layout as
// the input, and the input is never modified. Conversions are lossy where the
// target has less precision (U24 to U16 truncates the low byte, F32 to the
// integer formats truncates; the unsigned targets add their offset first).
//
// Direct rules exist for I16<->U16, U16<->U24, I16<->F32 and F32->U16/U24.
// Every other pair is composed through U16 or I16.
//
// Example:
//
//	f32 := convert.To[float32](pcm16)
//	u24 := convert.ToU24(f32)
package convert
