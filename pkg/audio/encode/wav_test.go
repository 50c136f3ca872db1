// ABOUTME: Tests for WAV writer
// ABOUTME: Writes WAV files to disk and reads them back through the decoder
package encode

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/decode"
)

func writeAndRead(t *testing.T, buf audio.Buffer) audio.Buffer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := WriteWAV(f, buf); err != nil {
		f.Close()
		t.Fatalf("WriteWAV() failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer in.Close()

	got, err := decode.ReadWAV(in)
	if err != nil {
		t.Fatalf("ReadWAV() failed: %v", err)
	}
	return got
}

func TestWAVRoundTrip16Bit(t *testing.T) {
	buf, err := audio.NewBuffer([]int16{0, -1, 32767, -32768, 1234, -4321}, 44100, 2)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	got := writeAndRead(t, buf)
	if !reflect.DeepEqual(got, buf) {
		t.Errorf("got %v %v, want %v %v", got.Format, got.Samples, buf.Format, buf.Samples)
	}
}

func TestWAVRoundTrip24Bit(t *testing.T) {
	buf, err := audio.NewBuffer([]uint32{0, 0x800000, 0xFFFFFF, 0x123456}, 96000, 1)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	got := writeAndRead(t, buf)
	if !reflect.DeepEqual(got, buf) {
		t.Errorf("got %v %v, want %v %v", got.Format, got.Samples, buf.Format, buf.Samples)
	}
}

func TestWAVWritesU16AsSigned(t *testing.T) {
	buf, err := audio.NewBuffer([]uint16{0, 32768, 65535}, 8000, 1)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	got := writeAndRead(t, buf)
	want := []int16{-32768, 0, 32767}
	if !reflect.DeepEqual(got.Samples, want) {
		t.Errorf("got %v, want %v", got.Samples, want)
	}
	if got.Format.SampleFormat != audio.I16 {
		t.Errorf("expected I16, got %s", got.Format.SampleFormat)
	}
}

func TestWAVRoundTripFloat(t *testing.T) {
	buf, err := audio.NewBuffer([]float32{0, 0.5, -0.5, 1, -1, 0.123}, 48000, 2)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	got := writeAndRead(t, buf)
	if !reflect.DeepEqual(got, buf) {
		t.Errorf("got %v %v, want %v %v", got.Format, got.Samples, buf.Format, buf.Samples)
	}
}

func TestWriteWAVInvalidBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	bad := audio.Buffer{
		Format:  audio.Format{SampleFormat: audio.I16, SampleRate: 44100, Channels: 2},
		Samples: []int16{1, 2, 3},
	}
	if err := WriteWAV(f, bad); err == nil {
		t.Error("expected error for misaligned buffer")
	}
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav file"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer f.Close()

	if _, err := decode.ReadWAV(f); err == nil {
		t.Error("expected error for invalid WAV file")
	}
}
