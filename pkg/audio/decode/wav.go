// ABOUTME: WAV file reader
// ABOUTME: Reads integer and float WAV data into PCM buffers using go-audio/wav
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// ReadWAV decodes a whole WAV file.
//
// 8-bit samples become U16. 16-bit samples become I16. 24-bit and 32-bit integer samples become U24
// (32-bit data loses its low byte). 32-bit float samples become F32.
func ReadWAV(r io.ReadSeeker) (audio.Buffer, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return audio.Buffer{}, errors.New("invalid WAV file format")
	}

	format := audio.Format{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
	}

	if d.WavAudioFormat == wavFormatFloat {
		if d.BitDepth != 32 {
			return audio.Buffer{}, fmt.Errorf("unsupported float bit depth: %d (supported: 32)", d.BitDepth)
		}
		return readFloatWAV(d, format)
	}

	if d.WavAudioFormat != wavFormatPCM {
		return audio.Buffer{}, fmt.Errorf("unsupported WAV audio format tag: %d", d.WavAudioFormat)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	var buf audio.Buffer
	switch d.BitDepth {
	case 8:
		// 8-bit WAV is unsigned with 128 as silence
		samples := make([]uint16, len(pcm.Data))
		for i, v := range pcm.Data {
			samples[i] = uint16(v) << 8
		}
		buf.Samples = samples
		format.SampleFormat = audio.U16
	case 16:
		samples := make([]int16, len(pcm.Data))
		for i, v := range pcm.Data {
			samples[i] = int16(v)
		}
		buf.Samples = samples
		format.SampleFormat = audio.I16
	case 24:
		samples := make([]uint32, len(pcm.Data))
		for i, v := range pcm.Data {
			samples[i] = uint32(int32(v) + audio.U24Zero)
		}
		buf.Samples = samples
		format.SampleFormat = audio.U24
	case 32:
		samples := make([]uint32, len(pcm.Data))
		for i, v := range pcm.Data {
			samples[i] = uint32(int32(v)>>8 + audio.U24Zero)
		}
		buf.Samples = samples
		format.SampleFormat = audio.U24
	default:
		return audio.Buffer{}, fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", d.BitDepth)
	}

	buf.Format = format
	if err := buf.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("invalid WAV data: %w", err)
	}
	return buf, nil
}

// readFloatWAV reads the data chunk directly since the IEEE float samples
// are already in F32 layout
func readFloatWAV(d *wav.Decoder, format audio.Format) (audio.Buffer, error) {
	if err := d.FwdToPCM(); err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to locate WAV data chunk: %w", err)
	}

	data, err := io.ReadAll(io.LimitReader(d.PCMChunk, int64(d.PCMChunk.Size)))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	// drop a trailing partial sample rather than fail on padded chunks
	data = data[:len(data)/4*4]

	format.SampleFormat = audio.F32
	dec, err := NewPCM(format)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("invalid WAV data: %w", err)
	}
	return dec.Decode(data)
}
