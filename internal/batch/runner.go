// ABOUTME: Bounded parallel file conversion
// ABOUTME: Runs conversion jobs through the pipeline on an errgroup worker limit
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio/pipeline"
	"golang.org/x/sync/errgroup"
)

// Target is the destination format. Zero fields keep the source's value.
type Target struct {
	SampleFormat audio.SampleFormat
	SampleRate   int
	Channels     int
}

// Resolve fills the unset fields of t from src
func (t Target) Resolve(src audio.Format) audio.Format {
	dst := src
	if t.SampleFormat != 0 {
		dst.SampleFormat = t.SampleFormat
	}
	if t.SampleRate != 0 {
		dst.SampleRate = t.SampleRate
	}
	if t.Channels != 0 {
		dst.Channels = t.Channels
	}
	return dst
}

// Config holds runner configuration
type Config struct {
	Target Target

	// Workers bounds the number of files converted at once. Zero uses
	// the number of CPUs.
	Workers int

	// RawInput describes every input that is not a WAV file
	RawInput audio.Format
}

// Runner converts batches of files
type Runner struct {
	config Config
}

// NewRunner validates config and creates a runner
func NewRunner(config Config) (*Runner, error) {
	if config.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}

	t := config.Target
	if t.SampleFormat != 0 && !t.SampleFormat.Valid() {
		return nil, fmt.Errorf("%w: unknown target sample format %d", audio.ErrInvalidFormat, t.SampleFormat)
	}
	if t.SampleRate < 0 {
		return nil, fmt.Errorf("%w: target sample rate must not be negative", audio.ErrInvalidFormat)
	}
	if t.Channels < 0 {
		return nil, fmt.Errorf("%w: target channel count must not be negative", audio.ErrInvalidFormat)
	}

	return &Runner{config: config}, nil
}

// Workers returns the effective worker limit
func (r *Runner) Workers() int {
	return r.config.Workers
}

// Run converts every job. A failed job is recorded in the summary and does
// not stop the others. progress, if non-nil, is called from worker
// goroutines but never concurrently. Run returns an error only when ctx is
// cancelled, in which case jobs that never started carry ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []Job, progress func(Progress)) (Summary, error) {
	summary := Summary{Results: make([]Result, len(jobs))}
	started := make([]bool, len(jobs))

	var mu sync.Mutex
	report := func(res Result, state State) {
		mu.Lock()
		defer mu.Unlock()

		switch state {
		case StateDone:
			summary.Succeeded++
		case StateFailed:
			summary.Failed++
		}
		if progress != nil {
			progress(Progress{
				Result:    res,
				State:     state,
				Completed: summary.Succeeded,
				Failed:    summary.Failed,
				Total:     len(jobs),
			})
		}
	}

	for _, job := range jobs {
		report(Result{Job: job}, StateQueued)
	}

	g := new(errgroup.Group)
	g.SetLimit(r.config.Workers)

	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}

		i, job := i, job
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			started[i] = true

			report(Result{Job: job}, StateRunning)
			res := r.convert(job)
			summary.Results[i] = res

			if res.Err != nil {
				log.Printf("Failed to convert %s: %v", job.Input, res.Err)
				report(res, StateFailed)
			} else {
				log.Printf("Converted %s (%s) -> %s (%s) in %v",
					job.Input, res.Source, job.Output, res.Destination, res.Elapsed)
				report(res, StateDone)
			}
			return nil
		})
	}

	// workers never return errors, failures live in the results
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		for i, job := range jobs {
			if !started[i] {
				summary.Results[i] = Result{Job: job, Err: err}
			}
		}
		return summary, err
	}
	return summary, nil
}

// convert runs one job end to end
func (r *Runner) convert(job Job) (res Result) {
	res.Job = job
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
	}()

	in, err := ReadFile(job.Input, r.config.RawInput)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		return res
	}
	res.Source = in.Format
	res.InputFrames = in.Frames()

	dst := r.config.Target.Resolve(in.Format)
	res.Destination = dst

	conv, err := pipeline.New(in.Format, dst)
	if err != nil {
		res.Err = err
		return res
	}

	out, err := conv.Convert(in)
	if err != nil {
		res.Err = err
		return res
	}
	res.OutputFrames = out.Frames()

	if dir := filepath.Dir(job.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			res.Err = fmt.Errorf("create output directory: %w", err)
			return res
		}
	}

	if err := WriteFile(job.Output, out); err != nil {
		res.Err = fmt.Errorf("write: %w", err)
	}
	return res
}
