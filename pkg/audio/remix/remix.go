// ABOUTME: Channel count conversion for interleaved PCM
// ABOUTME: Drops trailing channels or replays the source frame cyclically
package remix

import (
	"fmt"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
)

// Channels converts interleaved samples from one channel count to another.
//
// The first min(from, to) channels of every frame are copied in order. When
// to > from, extra channel i takes the value of source channel i % from, so
// 2 -> 4 gives [c0, c1, c0, c1]. When to < from, the trailing channels are
// dropped.
//
// Panics if from or to is not positive or len(in) is not a multiple of from.
func Channels[T audio.Sample](in []T, from, to int) []T {
	if from <= 0 {
		panic(fmt.Sprintf("remix: source channel count must be positive, got %d", from))
	}
	if to <= 0 {
		panic(fmt.Sprintf("remix: target channel count must be positive, got %d", to))
	}
	if len(in)%from != 0 {
		panic(fmt.Sprintf("remix: %d samples is not a whole number of %d-channel frames", len(in), from))
	}

	frames := len(in) / from
	out := make([]T, 0, frames*to)
	common := min(from, to)

	for f := 0; f < frames; f++ {
		frame := in[f*from : (f+1)*from]

		out = append(out, frame[:common]...)

		for i := 0; i < to-from; i++ {
			out = append(out, frame[i%len(frame)])
		}
	}

	return out
}

// Buffer converts b to the target channel count. Unlike Channels it reports
// invalid input as an error.
func Buffer(b audio.Buffer, to int) (audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return audio.Buffer{}, err
	}
	if to <= 0 {
		return audio.Buffer{}, fmt.Errorf("%w: target channel count must be positive, got %d", audio.ErrInvalidFormat, to)
	}

	from := b.Format.Channels
	out := b
	out.Format.Channels = to

	switch s := b.Samples.(type) {
	case []int16:
		out.Samples = Channels(s, from, to)
	case []uint16:
		out.Samples = Channels(s, from, to)
	case []uint32:
		out.Samples = Channels(s, from, to)
	case []float32:
		out.Samples = Channels(s, from, to)
	}
	return out, nil
}
