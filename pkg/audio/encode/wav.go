// ABOUTME: WAV file writer
// ABOUTME: Writes PCM buffers as integer or float WAV using go-audio/wav
package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/convert"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// WriteWAV writes buf as a complete WAV file.
//
// I16 is written as 16-bit PCM, U16 is shifted to signed 16-bit PCM, U24 is
// written as signed 24-bit PCM and F32 as 32-bit IEEE float.
func WriteWAV(w io.WriteSeeker, buf audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	bitDepth, audioFormat, data := wavSamples(buf)

	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, buf.Format.Channels, audioFormat)

	pcm := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			SampleRate:  buf.Format.SampleRate,
			NumChannels: buf.Format.Channels,
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("failed to write WAV samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// wavSamples maps buf onto the integer cells go-audio writes
func wavSamples(buf audio.Buffer) (bitDepth, audioFormat int, data []int) {
	data = make([]int, buf.Len())

	switch samples := buf.Samples.(type) {
	case []int16:
		for i, s := range samples {
			data[i] = int(s)
		}
		return 16, wavFormatPCM, data
	case []uint16:
		for i, s := range convert.ToI16(samples) {
			data[i] = int(s)
		}
		return 16, wavFormatPCM, data
	case []uint32:
		for i, s := range samples {
			data[i] = int(int32(s) - audio.U24Zero)
		}
		return 24, wavFormatPCM, data
	case []float32:
		// go-audio writes 32-bit cells verbatim, so carry the IEEE bits
		for i, s := range samples {
			data[i] = int(int32(math.Float32bits(s)))
		}
		return 32, wavFormatFloat, data
	}
	return 16, wavFormatPCM, data
}
