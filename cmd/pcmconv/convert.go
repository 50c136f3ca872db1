// ABOUTME: convert command
// ABOUTME: Converts files in parallel with an optional progress TUI
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	"github.com/Resonate-Protocol/resonate-pcm/internal/ui"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert audio files to a target format",
		Long: `Convert WAV or raw PCM files to a target sample format, channel count
and sample rate. Files ending in .wav are read and written as WAV, anything
else is treated as headerless little-endian PCM described by --raw-*.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "Target sample format: i16, u16, u24, f32 (default: keep source)")
	flags.IntP("rate", "r", 0, "Target sample rate in Hz (default: keep source)")
	flags.IntP("channels", "c", 0, "Target channel count (default: keep source)")
	flags.IntP("workers", "w", 0, "Files converted in parallel (default: number of CPUs)")
	flags.StringP("out-dir", "o", "", "Output directory (default: next to each input)")
	flags.String("out-ext", "", "Output extension, e.g. wav or raw (default: keep input extension)")
	flags.Bool("no-tui", false, "Disable TUI, use streaming logs instead")

	bind := map[string]string{
		"target.format":   "format",
		"target.rate":     "rate",
		"target.channels": "channels",
		"workers":         "workers",
		"out-dir":         "out-dir",
		"out-ext":         "out-ext",
		"no-tui":          "no-tui",
	}
	for key, flag := range bind {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func runConvert(cmd *cobra.Command, a *app, args []string) error {
	target, err := targetFromConfig(a.v)
	if err != nil {
		return err
	}
	raw, err := rawFromConfig(a.v)
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(batch.Config{
		Target:   target,
		Workers:  a.v.GetInt("workers"),
		RawInput: raw,
	})
	if err != nil {
		return err
	}

	outDir := a.v.GetString("out-dir")
	outExt := a.v.GetString("out-ext")
	jobs := make([]batch.Job, len(args))
	for i, input := range args {
		jobs[i] = batch.NewJob(input, outDir, outExt)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("Converting %d files to %s with %d workers", len(jobs), describeTarget(target), runner.Workers())

	var summary batch.Summary
	if a.usesTUI(cmd) {
		summary, err = runWithTUI(ctx, cancel, runner, jobs, describeTarget(target))
	} else {
		summary, err = runner.Run(ctx, jobs, nil)
	}

	out := cmd.OutOrStdout()
	for _, res := range summary.Results {
		if res.Err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", res.Job.Input, res.Err)
			continue
		}
		fmt.Fprintf(out, "ok   %s -> %s (%s, %d frames)\n", res.Job.Input, res.Job.Output, res.Destination, res.OutputFrames)
	}

	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, len(jobs))
	}
	return nil
}

// runWithTUI drives the runner in the background while the TUI owns the
// terminal. Quitting the TUI early cancels the batch.
func runWithTUI(ctx context.Context, cancel context.CancelFunc, runner *batch.Runner, jobs []batch.Job, target string) (batch.Summary, error) {
	prog := ui.Run(target, runner.Workers(), cancel)

	var summary batch.Summary
	var runErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		summary, runErr = runner.Run(ctx, jobs, ui.Reporter(prog))
		prog.Send(ui.DoneMsg{Summary: summary, Err: runErr})
	}()

	if _, err := prog.Run(); err != nil {
		cancel()
		<-done
		return summary, fmt.Errorf("TUI error: %w", err)
	}

	<-done
	return summary, runErr
}
