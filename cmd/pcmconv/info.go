// ABOUTME: info command
// ABOUTME: Prints format, length and peak level of audio files
package main

import (
	"fmt"
	"log"

	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/tone"
	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [files...]",
		Short: "Show format, duration and peak level of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rawFromConfig(a.v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				buf, err := batch.ReadFile(path, raw)
				if err != nil {
					log.Printf("Failed to read %s: %v", path, err)
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed++
					continue
				}

				peak, err := tone.Peak(buf)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s: %s, %d frames, %v, peak %s\n",
					path, buf.Format, buf.Frames(), buf.Duration(), formatPeak(peak))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}

// formatPeak renders a linear peak level with its dBFS equivalent
func formatPeak(peak float32) string {
	if peak <= 0 {
		return "0.000 (-inf dBFS)"
	}
	return fmt.Sprintf("%.3f (%.1f dBFS)", peak, 20*math32.Log10(peak))
}
