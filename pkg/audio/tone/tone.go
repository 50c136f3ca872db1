// ABOUTME: Test tone generator
// ABOUTME: Generates sine waves for testing conversion paths
package tone

import (
	"fmt"
	"time"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/convert"
	"github.com/chewxy/math32"
)

// DefaultFrequency is A4
const DefaultFrequency = 440.0

// Generate renders frames of a sine wave with every channel carrying the
// same value. amplitude is clamped to [0, 1].
func Generate[T audio.Sample](frequency float64, amplitude float32, sampleRate, channels, frames int) []T {
	amplitude = math32.Max(0, math32.Min(1, amplitude))

	wave := make([]float32, frames*channels)
	step := float32(2 * frequency / float64(sampleRate))

	for i := 0; i < frames; i++ {
		// phase in cycles, wrapped so long tones keep float32 precision
		phase := math32.Mod(float32(i)*step, 2)
		value := amplitude * math32.Sin(math32.Pi*phase)

		for ch := 0; ch < channels; ch++ {
			wave[i*channels+ch] = value
		}
	}

	return convert.To[T](wave)
}

// Buffer renders a tone of the given duration in format f
func Buffer(f audio.Format, frequency float64, amplitude float32, d time.Duration) (audio.Buffer, error) {
	if err := f.Validate(); err != nil {
		return audio.Buffer{}, err
	}
	if frequency <= 0 {
		return audio.Buffer{}, fmt.Errorf("frequency must be positive, got %v", frequency)
	}
	if d < 0 {
		return audio.Buffer{}, fmt.Errorf("duration must not be negative, got %v", d)
	}

	frames := int(d * time.Duration(f.SampleRate) / time.Second)

	buf := audio.Buffer{Format: f}
	switch f.SampleFormat {
	case audio.I16:
		buf.Samples = Generate[int16](frequency, amplitude, f.SampleRate, f.Channels, frames)
	case audio.U16:
		buf.Samples = Generate[uint16](frequency, amplitude, f.SampleRate, f.Channels, frames)
	case audio.U24:
		buf.Samples = Generate[uint32](frequency, amplitude, f.SampleRate, f.Channels, frames)
	case audio.F32:
		buf.Samples = Generate[float32](frequency, amplitude, f.SampleRate, f.Channels, frames)
	}
	return buf, nil
}

// Peak returns the largest absolute sample value of b on the canonical
// [-1, 1] scale
func Peak(b audio.Buffer) (float32, error) {
	samples, err := convert.Samples(b.Samples, audio.F32)
	if err != nil {
		return 0, err
	}

	var peak float32
	for _, s := range samples.([]float32) {
		peak = math32.Max(peak, math32.Abs(s))
	}
	return peak, nil
}
