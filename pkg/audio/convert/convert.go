// ABOUTME: Sample representation conversion entry points
// ABOUTME: Dispatches over the 4x4 pairs of I16, U16, U24 and F32
package convert

import (
	"errors"
	"fmt"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
)

// ErrUnknownType is returned when a sample container is not one of the
// four supported slice types
var ErrUnknownType = errors.New("unknown sample container")

// ToI16 converts samples of any representation to I16
func ToI16[T audio.Sample](in []T) []int16 {
	switch s := any(in).(type) {
	case []int16:
		return clone(s)
	case []uint16:
		return u16ToI16(s)
	case []uint32:
		return u16ToI16(u24ToU16(s))
	case []float32:
		return f32ToI16(s)
	}
	panic(fmt.Sprintf("convert: unsupported sample type %T", in))
}

// ToU16 converts samples of any representation to U16
func ToU16[T audio.Sample](in []T) []uint16 {
	switch s := any(in).(type) {
	case []int16:
		return i16ToU16(s)
	case []uint16:
		return clone(s)
	case []uint32:
		return u24ToU16(s)
	case []float32:
		return f32ToU16(s)
	}
	panic(fmt.Sprintf("convert: unsupported sample type %T", in))
}

// ToU24 converts samples of any representation to U24
func ToU24[T audio.Sample](in []T) []uint32 {
	switch s := any(in).(type) {
	case []int16:
		return u16ToU24(i16ToU16(s))
	case []uint16:
		return u16ToU24(s)
	case []uint32:
		return clone(s)
	case []float32:
		return f32ToU24(s)
	}
	panic(fmt.Sprintf("convert: unsupported sample type %T", in))
}

// ToF32 converts samples of any representation to F32.
//
// U16 and U24 go through I16 first. For U24 this drops the low 8 bits; the
// result matches what every other consumer of this package has always seen,
// so it is kept.
func ToF32[T audio.Sample](in []T) []float32 {
	switch s := any(in).(type) {
	case []int16:
		return i16ToF32(s)
	case []uint16:
		return i16ToF32(u16ToI16(s))
	case []uint32:
		return i16ToF32(u16ToI16(u24ToU16(s)))
	case []float32:
		return clone(s)
	}
	panic(fmt.Sprintf("convert: unsupported sample type %T", in))
}

// To converts samples from representation S to representation D.
// Output length always equals input length.
//
//	f := convert.To[float32]([]int16{0, -16384, 32767})
func To[D, S audio.Sample](in []S) []D {
	var out any
	switch audio.FormatOf[D]() {
	case audio.I16:
		out = ToI16(in)
	case audio.U16:
		out = ToU16(in)
	case audio.U24:
		out = ToU24(in)
	default:
		out = ToF32(in)
	}
	return out.([]D)
}

// Samples converts an untyped sample container to the target representation
func Samples(in any, to audio.SampleFormat) (any, error) {
	switch s := in.(type) {
	case []int16:
		return dispatch(s, to)
	case []uint16:
		return dispatch(s, to)
	case []uint32:
		return dispatch(s, to)
	case []float32:
		return dispatch(s, to)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownType, in)
}

func dispatch[T audio.Sample](in []T, to audio.SampleFormat) (any, error) {
	switch to {
	case audio.I16:
		return ToI16(in), nil
	case audio.U16:
		return ToU16(in), nil
	case audio.U24:
		return ToU24(in), nil
	case audio.F32:
		return ToF32(in), nil
	}
	return nil, fmt.Errorf("%w: target sample format %s", audio.ErrInvalidFormat, to)
}

// Buffer converts b to the target representation, keeping rate and channels
func Buffer(b audio.Buffer, to audio.SampleFormat) (audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return audio.Buffer{}, err
	}

	samples, err := Samples(b.Samples, to)
	if err != nil {
		return audio.Buffer{}, err
	}

	out := b
	out.Format.SampleFormat = to
	out.Samples = samples
	return out, nil
}
