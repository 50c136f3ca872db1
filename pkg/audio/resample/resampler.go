// ABOUTME: Naive sample rate converter for interleaved PCM
// ABOUTME: Decimates, doubles with interpolation, or duplicates frames
package resample

import (
	"errors"
	"fmt"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
)

// ErrUnsupportedRate is returned for downsampling by a non-integer factor
var ErrUnsupportedRate = errors.New("unsupported sample rate conversion")

// Supported reports whether Rate can convert from one rate to another.
// Downsampling is only possible by an integer factor.
func Supported(from, to int) bool {
	if from <= 0 || to <= 0 {
		return false
	}
	return from%to == 0 || to > from
}

// Rate converts interleaved samples from one sample rate to another without
// filtering. Cases, checked in order:
//
//  1. from is a multiple of to: keep the first frame of every from/to frames
//  2. to is exactly twice from: insert the average of each pair of
//     neighbouring frames between them, so N frames become 2N-1
//  3. to > from: repeat frames so the output keeps pace with the target rate
//
// Any other pair panics, as do non-positive rates or channel counts and
// input that is not made of whole frames.
func Rate[T audio.Sample](in []T, from, to, channels int) []T {
	if from <= 0 || to <= 0 {
		panic(fmt.Sprintf("resample: sample rates must be positive, got %d -> %d", from, to))
	}
	if channels <= 0 {
		panic(fmt.Sprintf("resample: channel count must be positive, got %d", channels))
	}
	if len(in)%channels != 0 {
		panic(fmt.Sprintf("resample: %d samples is not a whole number of %d-channel frames", len(in), channels))
	}

	switch {
	case from%to == 0:
		return decimate(in, from/to, channels)
	case to == from*2:
		return double(in, channels)
	case to > from:
		return duplicate(in, from, to, channels)
	}
	panic(fmt.Sprintf("resample: %v: %d Hz -> %d Hz is not an integer downsampling factor", ErrUnsupportedRate, from, to))
}

func decimate[T audio.Sample](in []T, factor, channels int) []T {
	group := factor * channels
	out := make([]T, 0, (len(in)+group-1)/group*channels)
	for i := 0; i < len(in); i += group {
		out = append(out, in[i:i+channels]...)
	}
	return out
}

func double[T audio.Sample](in []T, channels int) []T {
	frames := len(in) / channels
	if frames == 0 {
		return []T{}
	}

	out := make([]T, 0, (2*frames-1)*channels)
	out = append(out, in[:channels]...)

	for f := 1; f < frames; f++ {
		prev := in[(f-1)*channels : f*channels]
		cur := in[f*channels : (f+1)*channels]
		for ch := range cur {
			out = append(out, audio.Interpolate(prev[ch], cur[ch]))
		}
		out = append(out, cur...)
	}
	return out
}

// duplicate counts time in units of 1/(from*to) seconds. desiredTime is where
// the output should be after each input frame and pushTime is where it is.
// While the output lags, the current frame is pushed again.
func duplicate[T audio.Sample](in []T, from, to, channels int) []T {
	out := make([]T, 0, OutputSamples(len(in), from, to, channels))

	var desiredTime, pushTime int64
	for i := 0; i < len(in); i += channels {
		frame := in[i : i+channels]

		out = append(out, frame...)
		desiredTime += int64(to)
		pushTime += int64(from)

		for desiredTime-pushTime > 0 {
			out = append(out, frame...)
			pushTime += int64(from)
		}
	}
	return out
}

// OutputSamples returns how many samples Rate produces for inputSamples
// interleaved samples, or 0 when the conversion is not supported
func OutputSamples(inputSamples, from, to, channels int) int {
	if !Supported(from, to) || channels <= 0 {
		return 0
	}

	frames := inputSamples / channels
	switch {
	case from%to == 0:
		factor := from / to
		return (frames + factor - 1) / factor * channels
	case to == from*2:
		if frames == 0 {
			return 0
		}
		return (2*frames - 1) * channels
	}

	// every input frame i ends with pushTime at the first multiple of from
	// that reaches i*to
	total := (int64(frames)*int64(to) + int64(from) - 1) / int64(from)
	return int(total) * channels
}

// Buffer converts b to the target sample rate. Unlike Rate it reports
// unsupported or invalid input as an error.
func Buffer(b audio.Buffer, to int) (audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return audio.Buffer{}, err
	}

	from := b.Format.SampleRate
	if !Supported(from, to) {
		return audio.Buffer{}, fmt.Errorf("%w: %d Hz -> %d Hz", ErrUnsupportedRate, from, to)
	}

	channels := b.Format.Channels
	out := b
	out.Format.SampleRate = to

	switch s := b.Samples.(type) {
	case []int16:
		out.Samples = Rate(s, from, to, channels)
	case []uint16:
		out.Samples = Rate(s, from, to, channels)
	case []uint32:
		out.Samples = Rate(s, from, to, channels)
	case []float32:
		out.Samples = Rate(s, from, to, channels)
	}
	return out, nil
}
