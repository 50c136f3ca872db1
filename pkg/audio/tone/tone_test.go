// ABOUTME: Tests for test tone generator
// ABOUTME: Checks sizes, channel duplication and peak measurement
package tone

import (
	"testing"
	"time"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	// 1 Hz at 4 Hz sample rate: 0, 1, 0, -1
	wave := Generate[float32](1, 1, 4, 2, 4)
	require.Len(t, wave, 8)

	assert.InDelta(t, 0, wave[0], 1e-6)
	assert.InDelta(t, 1, wave[2], 1e-6)
	assert.InDelta(t, 0, wave[4], 1e-6)
	assert.InDelta(t, -1, wave[6], 1e-6)

	for i := 0; i < len(wave); i += 2 {
		assert.Equal(t, wave[i], wave[i+1], "channels differ in frame %d", i/2)
	}
}

func TestGenerateMatchesConversion(t *testing.T) {
	f32 := Generate[float32](440, 0.5, 44100, 1, 256)
	i16 := Generate[int16](440, 0.5, 44100, 1, 256)
	assert.Equal(t, convert.ToI16(f32), i16)
}

func TestGenerateClampsAmplitude(t *testing.T) {
	wave := Generate[float32](1, 3, 4, 1, 4)
	assert.InDelta(t, 1, wave[1], 1e-6)
}

func TestBuffer(t *testing.T) {
	for _, sf := range audio.Formats {
		t.Run(sf.String(), func(t *testing.T) {
			f := audio.Format{SampleFormat: sf, SampleRate: 8000, Channels: 2}
			buf, err := Buffer(f, DefaultFrequency, 0.5, 250*time.Millisecond)
			require.NoError(t, err)
			require.NoError(t, buf.Validate())

			assert.Equal(t, f, buf.Format)
			assert.Equal(t, 2000, buf.Frames())
			assert.Equal(t, 250*time.Millisecond, buf.Duration())

			peak, err := Peak(buf)
			require.NoError(t, err)
			assert.InDelta(t, 0.5, peak, 0.01)
		})
	}
}

func TestBufferErrors(t *testing.T) {
	_, err := Buffer(audio.Format{SampleFormat: audio.I16, SampleRate: 8000}, 440, 1, time.Second)
	assert.ErrorIs(t, err, audio.ErrInvalidFormat)

	_, err = Buffer(audio.Format{SampleFormat: audio.I16, SampleRate: 8000, Channels: 1}, 0, 1, time.Second)
	assert.Error(t, err)

	_, err = Buffer(audio.Format{SampleFormat: audio.I16, SampleRate: 8000, Channels: 1}, 440, 1, -time.Second)
	assert.Error(t, err)
}

func TestPeakSilence(t *testing.T) {
	buf, err := audio.NewBuffer([]uint16{32768, 32768}, 8000, 1)
	require.NoError(t, err)

	peak, err := Peak(buf)
	require.NoError(t, err)
	assert.Equal(t, float32(0), peak)
}
