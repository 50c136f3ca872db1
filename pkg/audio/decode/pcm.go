// ABOUTME: PCM audio decoder
// ABOUTME: Decodes raw little-endian I16, U16, U24 and F32 samples
package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
)

// PCMDecoder decodes raw PCM audio
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid format for PCM decoder: %w", err)
	}

	return &PCMDecoder{
		format: format,
	}, nil
}

// Decode converts PCM bytes to samples. The data must hold whole frames.
func (d *PCMDecoder) Decode(data []byte) (audio.Buffer, error) {
	size := d.format.SampleFormat.SampleSize()
	if len(data)%size != 0 {
		return audio.Buffer{}, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte samples",
			audio.ErrMisaligned, len(data), size)
	}

	n := len(data) / size
	if n%d.format.Channels != 0 {
		return audio.Buffer{}, fmt.Errorf("%w: %d samples, %d channels", audio.ErrMisaligned, n, d.format.Channels)
	}

	buf := audio.Buffer{Format: d.format}

	switch d.format.SampleFormat {
	case audio.I16:
		samples := make([]int16, n)
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
		}
		buf.Samples = samples
	case audio.U16:
		samples := make([]uint16, n)
		for i := range samples {
			samples[i] = binary.LittleEndian.Uint16(data[i*2:])
		}
		buf.Samples = samples
	case audio.U24:
		// one 32-bit cell per sample
		samples := make([]uint32, n)
		for i := range samples {
			samples[i] = binary.LittleEndian.Uint32(data[i*4:])
		}
		buf.Samples = samples
	case audio.F32:
		samples := make([]float32, n)
		for i := range samples {
			samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		}
		buf.Samples = samples
	}

	return buf, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}
