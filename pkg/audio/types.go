// ABOUTME: Audio type definitions
// ABOUTME: Defines sample representations, stream formats and interleaved buffers
package audio

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23

	// Native zero of the unsigned representations
	U16Zero = 32768
	U24Zero = 0x800000
)

var (
	// ErrInvalidFormat is returned when a Format has a zero channel count,
	// a non-positive rate or an unknown sample format
	ErrInvalidFormat = errors.New("invalid audio format")

	// ErrMisaligned is returned when a buffer does not hold whole frames
	ErrMisaligned = errors.New("buffer length is not a multiple of the channel count")
)

// SampleFormat identifies the numeric representation of a sample
type SampleFormat int

const (
	// I16 is signed 16-bit, zero at 0
	I16 SampleFormat = iota + 1
	// U16 is unsigned 16-bit, zero at 32768
	U16
	// U24 is unsigned 24-bit range stored in a 32-bit cell, zero at 8388608
	U24
	// F32 is 32-bit float in [-1.0, 1.0], zero at 0.0
	F32
)

// Formats lists every supported representation
var Formats = []SampleFormat{I16, U16, U24, F32}

// Valid reports whether f is one of the known representations
func (f SampleFormat) Valid() bool {
	return f >= I16 && f <= F32
}

// SampleSize returns the size in bytes of one sample cell
func (f SampleFormat) SampleSize() int {
	switch f {
	case I16, U16:
		return 2
	case U24, F32:
		return 4
	}
	return 0
}

// Zero returns the native value that represents silence
func (f SampleFormat) Zero() float64 {
	switch f {
	case U16:
		return U16Zero
	case U24:
		return U24Zero
	}
	return 0
}

func (f SampleFormat) String() string {
	switch f {
	case I16:
		return "i16"
	case U16:
		return "u16"
	case U24:
		return "u24"
	case F32:
		return "f32"
	}
	return fmt.Sprintf("SampleFormat(%d)", int(f))
}

// ParseSampleFormat parses names like "i16", "s16le", "u24" or "float"
func ParseSampleFormat(s string) (SampleFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i16", "s16", "s16le", "int16":
		return I16, nil
	case "u16", "u16le", "uint16":
		return U16, nil
	case "u24", "u24le":
		return U24, nil
	case "f32", "f32le", "float", "float32":
		return F32, nil
	}
	return 0, fmt.Errorf("%w: unknown sample format %q (supported: i16, u16, u24, f32)", ErrInvalidFormat, s)
}

// Sample is the set of Go element types backing the four representations.
// uint32 carries U24.
type Sample interface {
	int16 | uint16 | uint32 | float32
}

// FormatOf returns the representation carried by element type T
func FormatOf[T Sample]() SampleFormat {
	var zero T
	switch any(zero).(type) {
	case int16:
		return I16
	case uint16:
		return U16
	case uint32:
		return U24
	}
	return F32
}

// Interpolate returns (a + b) / 2 in the representation's own arithmetic.
// Integer sums are widened so they cannot wrap; division truncates.
func Interpolate[T Sample](a, b T) T {
	switch any(a).(type) {
	case int16:
		return T((int32(a) + int32(b)) / 2)
	case uint16:
		return T((uint32(a) + uint32(b)) / 2)
	case uint32:
		return T((uint64(a) + uint64(b)) / 2)
	}
	return (a + b) / 2
}

// Format describes the parameters of an interleaved PCM stream
type Format struct {
	SampleFormat SampleFormat
	SampleRate   int
	Channels     int
}

// Validate checks that every field is usable
func (f Format) Validate() error {
	if !f.SampleFormat.Valid() {
		return fmt.Errorf("%w: unknown sample format %d", ErrInvalidFormat, int(f.SampleFormat))
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidFormat, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidFormat, f.Channels)
	}
	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch", f.SampleFormat, f.SampleRate, f.Channels)
}

// Buffer holds interleaved samples. Samples is a []int16, []uint16,
// []uint32 or []float32 matching Format.SampleFormat.
type Buffer struct {
	Format  Format
	Samples any
}

// NewBuffer wraps samples in a validated Buffer
func NewBuffer[T Sample](samples []T, sampleRate, channels int) (Buffer, error) {
	b := Buffer{
		Format: Format{
			SampleFormat: FormatOf[T](),
			SampleRate:   sampleRate,
			Channels:     channels,
		},
		Samples: samples,
	}
	if err := b.Validate(); err != nil {
		return Buffer{}, err
	}
	return b, nil
}

// SamplesOf returns the typed samples of b when T matches its representation
func SamplesOf[T Sample](b Buffer) ([]T, bool) {
	s, ok := b.Samples.([]T)
	return s, ok
}

// Len returns the number of samples across all channels
func (b Buffer) Len() int {
	switch s := b.Samples.(type) {
	case []int16:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []float32:
		return len(s)
	}
	return 0
}

// Frames returns the number of frames (one sample per channel)
func (b Buffer) Frames() int {
	if b.Format.Channels <= 0 {
		return 0
	}
	return b.Len() / b.Format.Channels
}

// Duration returns the playback length of the buffer
func (b Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Format.SampleRate)
}

// Validate checks the format, the element type and frame alignment
func (b Buffer) Validate() error {
	if err := b.Format.Validate(); err != nil {
		return err
	}

	var want SampleFormat
	switch b.Samples.(type) {
	case []int16:
		want = I16
	case []uint16:
		want = U16
	case []uint32:
		want = U24
	case []float32:
		want = F32
	default:
		return fmt.Errorf("%w: unsupported sample container %T", ErrInvalidFormat, b.Samples)
	}
	if want != b.Format.SampleFormat {
		return fmt.Errorf("%w: samples are %s but format says %s", ErrInvalidFormat, want, b.Format.SampleFormat)
	}

	if b.Len()%b.Format.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrMisaligned, b.Len(), b.Format.Channels)
	}
	return nil
}
