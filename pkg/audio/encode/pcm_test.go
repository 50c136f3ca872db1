// ABOUTME: Unit tests for PCM encoder
// ABOUTME: Tests raw encoding of all four sample representations
package encode

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/decode"
)

func TestNewPCM(t *testing.T) {
	tests := []struct {
		name        string
		format      audio.Format
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid i16",
			format:  audio.Format{SampleFormat: audio.I16, SampleRate: 48000, Channels: 2},
			wantErr: false,
		},
		{
			name:    "valid u24",
			format:  audio.Format{SampleFormat: audio.U24, SampleRate: 96000, Channels: 2},
			wantErr: false,
		},
		{
			name:        "unknown sample format",
			format:      audio.Format{SampleRate: 48000, Channels: 2},
			wantErr:     true,
			errContains: "unknown sample format",
		},
		{
			name:        "zero channels",
			format:      audio.Format{SampleFormat: audio.F32, SampleRate: 48000},
			wantErr:     true,
			errContains: "channel count must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPCM() expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewPCM() error = %v, want error containing %v", err, tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("NewPCM() unexpected error = %v", err)
				}
				if encoder == nil {
					t.Errorf("NewPCM() returned nil encoder")
				}
			}
		})
	}
}

func TestPCMEncoder_Encode16Bit(t *testing.T) {
	buf, err := audio.NewBuffer([]int16{0, 256, -1, 32767}, 48000, 2)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	encoder, err := NewPCM(buf.Format)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	output, err := encoder.Encode(buf)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	expected := []byte{0x00, 0x00, 0x00, 0x01, 0xFF, 0xFF, 0xFF, 0x7F}
	if !bytes.Equal(output, expected) {
		t.Errorf("Encode() = %v, want %v", output, expected)
	}
}

func TestPCMEncoder_EncodeU24Cells(t *testing.T) {
	buf, err := audio.NewBuffer([]uint32{0x800000, 0xFFFFFF}, 48000, 1)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	encoder, err := NewPCM(buf.Format)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}

	output, err := encoder.Encode(buf)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	// 4 bytes per sample
	expected := []byte{0x00, 0x00, 0x80, 0x00, 0xFF, 0xFF, 0xFF, 0x00}
	if !bytes.Equal(output, expected) {
		t.Errorf("Encode() = %v, want %v", output, expected)
	}
}

func TestPCMEncoder_FormatMismatch(t *testing.T) {
	encoder, err := NewPCM(audio.Format{SampleFormat: audio.F32, SampleRate: 48000, Channels: 2})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}

	buf, err := audio.NewBuffer([]int16{1, 2}, 48000, 2)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	if _, err := encoder.Encode(buf); !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("Encode() error = %v, want ErrInvalidFormat", err)
	}
}

func TestPCMRoundTrip(t *testing.T) {
	buffers := []any{
		[]int16{-32768, -1, 0, 1, 32767, 12345},
		[]uint16{0, 1, 32768, 65535, 4242, 9},
		[]uint32{0, 0x800000, 0xFFFFFF, 0x123456, 7, 8},
		[]float32{-1.0, -0.25, 0, 0.125, 1.0, 0.333},
	}

	for _, samples := range buffers {
		var buf audio.Buffer
		var err error
		switch s := samples.(type) {
		case []int16:
			buf, err = audio.NewBuffer(s, 44100, 2)
		case []uint16:
			buf, err = audio.NewBuffer(s, 44100, 2)
		case []uint32:
			buf, err = audio.NewBuffer(s, 44100, 2)
		case []float32:
			buf, err = audio.NewBuffer(s, 44100, 2)
		}
		if err != nil {
			t.Fatalf("NewBuffer() failed: %v", err)
		}

		encoder, err := NewPCM(buf.Format)
		if err != nil {
			t.Fatalf("NewPCM() failed: %v", err)
		}
		data, err := encoder.Encode(buf)
		if err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}

		decoder, err := decode.NewPCM(buf.Format)
		if err != nil {
			t.Fatalf("decode.NewPCM() failed: %v", err)
		}
		got, err := decoder.Decode(data)
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}

		if !reflect.DeepEqual(got, buf) {
			t.Errorf("%s round-trip: got %v, want %v", buf.Format.SampleFormat, got.Samples, buf.Samples)
		}
	}
}

func TestPCMEncoder_Close(t *testing.T) {
	encoder, err := NewPCM(audio.Format{SampleFormat: audio.I16, SampleRate: 48000, Channels: 2})
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}

	if err := encoder.Close(); err != nil {
		t.Errorf("Close() unexpected error = %v", err)
	}
}
