// ABOUTME: Direct sample representation conversion rules
// ABOUTME: Every other pair of representations is composed from these
package convert

import "github.com/Resonate-Protocol/resonate-pcm/pkg/audio"

func clone[T audio.Sample](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func i16ToU16(in []int16) []uint16 {
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = uint16(int32(v) + audio.U16Zero)
	}
	return out
}

func u16ToI16(in []uint16) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		out[i] = int16(int32(v) - audio.U16Zero)
	}
	return out
}

// u16ToU24 widens without adding precision
func u16ToU24(in []uint16) []uint32 {
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(v) << 8
	}
	return out
}

// u24ToU16 drops the low 8 bits
func u24ToU16(in []uint32) []uint16 {
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = uint16(v >> 8)
	}
	return out
}

// i16ToF32 scales asymmetrically: the int16 range is one step longer on the
// negative side.
func i16ToF32(in []int16) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		if v > 0 {
			out[i] = float32(v) / 32767.0
		} else {
			out[i] = float32(v) / 32768.0
		}
	}
	return out
}

func f32ToI16(in []float32) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		out[i] = int16(scale(v, 32767.0, 32768.0))
	}
	return out
}

func f32ToU16(in []float32) []uint16 {
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = uint16(biased(v, 32767.0, 32768.0, audio.U16Zero, 65535))
	}
	return out
}

func f32ToU24(in []float32) []uint32 {
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(biased24(v))
	}
	return out
}

// scale multiplies v by pos (v >= 0) or neg (v < 0) and truncates toward
// zero. Values outside [-1, 1] saturate at [-neg, pos]; NaN is silence.
func scale(v, pos, neg float32) int32 {
	if v != v {
		return 0
	}
	if v >= 0 {
		x := v * pos
		if x > pos {
			x = pos
		}
		return int32(x)
	}
	x := v * neg
	if x < -neg {
		x = -neg
	}
	return int32(x)
}

// biased adds zero to the scaled value before truncating, so negative
// fractions round down rather than toward the midpoint. The result is
// clamped to [0, top]; NaN is zero.
func biased(v, pos, neg, zero, top float32) float32 {
	if v != v {
		return zero
	}
	x := v * neg
	if v >= 0 {
		x = v * pos
	}
	x += zero
	if x < 0 {
		return 0
	}
	if x > top {
		return top
	}
	return x
}

// biased24 is biased for U24. The sum needs float64 since float32 has no
// fractional bits left between 2^23 and 2^24.
func biased24(v float32) float64 {
	if v != v {
		return audio.U24Zero
	}
	x := float64(v) * -audio.Min24Bit
	if v >= 0 {
		x = float64(v) * audio.Max24Bit
	}
	x += audio.U24Zero
	if x < 0 {
		return 0
	}
	if x > 0xFFFFFF {
		return 0xFFFFFF
	}
	return x
}
