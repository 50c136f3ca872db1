// ABOUTME: File level PCM reading and writing
// ABOUTME: Routes .wav paths through the WAV codec and everything else through raw PCM
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/decode"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/encode"
)

// IsWAV reports whether path is handled by the WAV codec
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// ReadFile loads a whole file. raw describes the layout of non-WAV files
// and is ignored for WAV input.
func ReadFile(path string, raw audio.Format) (audio.Buffer, error) {
	if IsWAV(path) {
		f, err := os.Open(path)
		if err != nil {
			return audio.Buffer{}, err
		}
		defer f.Close()

		buf, err := decode.ReadWAV(f)
		if err != nil {
			return audio.Buffer{}, fmt.Errorf("%s: %w", path, err)
		}
		return buf, nil
	}

	dec, err := decode.NewPCM(raw)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("raw input format: %w", err)
	}
	defer dec.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return audio.Buffer{}, err
	}

	buf, err := dec.Decode(data)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// WriteFile stores buf at path, creating or truncating it
func WriteFile(path string, buf audio.Buffer) error {
	if IsWAV(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := encode.WriteWAV(f, buf); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		return f.Close()
	}

	enc, err := encode.NewPCM(buf.Format)
	if err != nil {
		return err
	}
	defer enc.Close()

	data, err := enc.Encode(buf)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
