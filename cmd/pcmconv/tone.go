// ABOUTME: tone command
// ABOUTME: Writes a sine test tone in any supported format
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/tone"
	"github.com/spf13/cobra"
)

func newToneCmd() *cobra.Command {
	var (
		out       string
		format    string
		rate      int
		channels  int
		freq      float64
		amplitude float32
		duration  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Generate a sine test tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := audio.ParseSampleFormat(format)
			if err != nil {
				return err
			}

			f := audio.Format{SampleFormat: sf, SampleRate: rate, Channels: channels}
			buf, err := tone.Buffer(f, freq, amplitude, duration)
			if err != nil {
				return err
			}

			if err := batch.WriteFile(out, buf); err != nil {
				return err
			}

			log.Printf("Wrote %v %.1f Hz tone to %s (%s)", duration, freq, out, f)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d frames\n", out, f, buf.Frames())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "Output file (.wav for WAV, anything else raw PCM)")
	flags.StringVarP(&format, "format", "f", "f32", "Sample format: i16, u16, u24, f32")
	flags.IntVarP(&rate, "rate", "r", 48000, "Sample rate in Hz")
	flags.IntVarP(&channels, "channels", "c", 2, "Channel count")
	flags.Float64Var(&freq, "freq", tone.DefaultFrequency, "Tone frequency in Hz")
	flags.Float32Var(&amplitude, "amplitude", 0.5, "Peak amplitude between 0 and 1")
	flags.DurationVarP(&duration, "duration", "d", 2*time.Second, "Tone length")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
