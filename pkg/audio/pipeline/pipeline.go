// ABOUTME: Conversion pipeline from one PCM format to another
// ABOUTME: Chains sample format, channel and rate conversion
package pipeline

import (
	"fmt"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/convert"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/remix"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/resample"
)

// Converter adapts buffers in the source format to the destination format.
// It holds no state between calls and is safe for concurrent use.
type Converter struct {
	src audio.Format
	dst audio.Format
}

// New creates a converter, rejecting formats the stages cannot bridge
func New(src, dst audio.Format) (*Converter, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("source format: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return nil, fmt.Errorf("destination format: %w", err)
	}
	if !resample.Supported(src.SampleRate, dst.SampleRate) {
		return nil, fmt.Errorf("%w: %d Hz -> %d Hz", resample.ErrUnsupportedRate, src.SampleRate, dst.SampleRate)
	}

	return &Converter{
		src: src,
		dst: dst,
	}, nil
}

// Source returns the format accepted by Convert
func (c *Converter) Source() audio.Format {
	return c.src
}

// Destination returns the format produced by Convert
func (c *Converter) Destination() audio.Format {
	return c.dst
}

// Passthrough reports whether Convert only copies
func (c *Converter) Passthrough() bool {
	return c.src == c.dst
}

// Convert applies sample format, then channel, then rate conversion. Stages
// whose source and destination already agree are skipped.
func (c *Converter) Convert(b audio.Buffer) (audio.Buffer, error) {
	if b.Format != c.src {
		return audio.Buffer{}, fmt.Errorf("%w: buffer is %s, converter expects %s", audio.ErrInvalidFormat, b.Format, c.src)
	}
	if err := b.Validate(); err != nil {
		return audio.Buffer{}, err
	}

	var err error
	out := b

	if c.Passthrough() {
		return convert.Buffer(out, c.dst.SampleFormat)
	}

	if out.Format.SampleFormat != c.dst.SampleFormat {
		if out, err = convert.Buffer(out, c.dst.SampleFormat); err != nil {
			return audio.Buffer{}, fmt.Errorf("sample format: %w", err)
		}
	}

	if out.Format.Channels != c.dst.Channels {
		if out, err = remix.Buffer(out, c.dst.Channels); err != nil {
			return audio.Buffer{}, fmt.Errorf("channels: %w", err)
		}
	}

	if out.Format.SampleRate != c.dst.SampleRate {
		if out, err = resample.Buffer(out, c.dst.SampleRate); err != nil {
			return audio.Buffer{}, fmt.Errorf("sample rate: %w", err)
		}
	}

	return out, nil
}

// OutputSamples returns how many samples Convert produces for a buffer of
// inputSamples samples
func (c *Converter) OutputSamples(inputSamples int) int {
	frames := inputSamples / c.src.Channels
	remixed := frames * c.dst.Channels
	return resample.OutputSamples(remixed, c.src.SampleRate, c.dst.SampleRate, c.dst.Channels)
}
