// ABOUTME: Tests for channel remapping
// ABOUTME: Covers dropping, replaying and contract violations
package remix

import (
	"testing"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveChannels(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 1, 2}, Channels([]uint16{1, 2, 3, 1, 2, 3}, 3, 2))
	assert.Equal(t, []uint16{1, 1}, Channels([]uint16{1, 2, 3, 4, 1, 2, 3, 4}, 4, 1))
}

func TestAddChannels(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 1, 1, 2, 1}, Channels([]uint16{1, 2, 1, 2}, 2, 3))
	assert.Equal(t, []uint16{1, 2, 1, 2, 1, 2, 1, 2}, Channels([]uint16{1, 2, 1, 2}, 2, 4))
}

func TestAddChannelsReplaysFromFirstChannel(t *testing.T) {
	// extras start again at channel 0, not after the copied channels
	assert.Equal(t, []int16{7, 8, 9, 7, 8, 9, 7}, Channels([]int16{7, 8, 9}, 3, 7))
}

func TestMonoToStereo(t *testing.T) {
	assert.Equal(t, []float32{0.5, 0.5, -0.25, -0.25}, Channels([]float32{0.5, -0.25}, 1, 2))
}

func TestSameChannelCount(t *testing.T) {
	in := []uint32{1, 2, 3, 4}
	out := Channels(in, 2, 2)
	assert.Equal(t, in, out)

	out[0] = 99
	assert.Equal(t, uint32(1), in[0], "output must not share the input")
}

func TestOutputLength(t *testing.T) {
	tests := []struct {
		from, to int
		frames   int
	}{
		{1, 2, 10},
		{2, 1, 10},
		{2, 6, 3},
		{6, 2, 3},
		{5, 5, 0},
	}

	for _, tt := range tests {
		out := Channels(make([]int16, tt.frames*tt.from), tt.from, tt.to)
		assert.Len(t, out, tt.frames*tt.to, "from=%d to=%d", tt.from, tt.to)
	}
}

func TestConvertChannelsWrongDataLen(t *testing.T) {
	require.Panics(t, func() {
		Channels([]uint16{1, 2, 3}, 2, 1)
	})
}

func TestZeroChannelsPanics(t *testing.T) {
	require.Panics(t, func() { Channels([]uint16{1, 2}, 0, 1) })
	require.Panics(t, func() { Channels([]uint16{1, 2}, 2, 0) })
}

func TestBuffer(t *testing.T) {
	buf, err := audio.NewBuffer([]float32{0.1, 0.2, 0.3, 0.4}, 48000, 2)
	require.NoError(t, err)

	out, err := Buffer(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Format.Channels)
	assert.Equal(t, 48000, out.Format.SampleRate)
	assert.Equal(t, []float32{0.1, 0.3}, out.Samples)
}

func TestBufferErrors(t *testing.T) {
	buf, err := audio.NewBuffer([]int16{1, 2}, 48000, 2)
	require.NoError(t, err)

	_, err = Buffer(buf, 0)
	assert.ErrorIs(t, err, audio.ErrInvalidFormat)

	_, err = Buffer(audio.Buffer{Format: buf.Format, Samples: []int16{1, 2, 3}}, 1)
	assert.ErrorIs(t, err, audio.ErrMisaligned)
}
