// ABOUTME: PCM audio encoder
// ABOUTME: Encodes I16, U16, U24 and F32 samples to raw little-endian bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
)

// PCMEncoder encodes raw PCM audio
type PCMEncoder struct {
	format audio.Format
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid format for PCM encoder: %w", err)
	}

	return &PCMEncoder{
		format: format,
	}, nil
}

// Encode converts samples to PCM bytes
func (e *PCMEncoder) Encode(buf audio.Buffer) ([]byte, error) {
	if buf.Format != e.format {
		return nil, fmt.Errorf("%w: buffer is %s, encoder expects %s", audio.ErrInvalidFormat, buf.Format, e.format)
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	size := e.format.SampleFormat.SampleSize()
	output := make([]byte, buf.Len()*size)

	switch samples := buf.Samples.(type) {
	case []int16:
		for i, s := range samples {
			binary.LittleEndian.PutUint16(output[i*2:], uint16(s))
		}
	case []uint16:
		for i, s := range samples {
			binary.LittleEndian.PutUint16(output[i*2:], s)
		}
	case []uint32:
		for i, s := range samples {
			binary.LittleEndian.PutUint32(output[i*4:], s)
		}
	case []float32:
		for i, s := range samples {
			binary.LittleEndian.PutUint32(output[i*4:], math.Float32bits(s))
		}
	}

	return output, nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
