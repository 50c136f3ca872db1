// ABOUTME: Batch job and progress types
// ABOUTME: Describes one file conversion and the events reported while running it
package batch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/google/uuid"
)

// Job converts one input file into one output file
type Job struct {
	ID     uuid.UUID
	Input  string
	Output string
}

// NewJob places the output in outDir with the input's base name and the
// given extension. An empty outDir keeps the input's directory and an
// empty ext keeps the input's extension.
func NewJob(input, outDir, ext string) Job {
	dir, base := filepath.Split(input)
	if outDir != "" {
		dir = outDir
	}

	inExt := filepath.Ext(base)
	if ext == "" {
		ext = inExt
	} else if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	name := strings.TrimSuffix(base, inExt) + ext
	output := filepath.Join(dir, name)
	if filepath.Clean(output) == filepath.Clean(input) {
		name = strings.TrimSuffix(base, inExt) + ".converted" + ext
		output = filepath.Join(dir, name)
	}

	return Job{
		ID:     uuid.New(),
		Input:  input,
		Output: output,
	}
}

// State is the lifecycle position of a job
type State int

const (
	StateQueued State = iota
	StateRunning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one job
type Result struct {
	Job          Job
	Source       audio.Format
	Destination  audio.Format
	InputFrames  int
	OutputFrames int
	Elapsed      time.Duration
	Err          error
}

// Progress is reported whenever a job changes state. Completed and Failed
// count finished jobs across the whole batch at the time of the event.
type Progress struct {
	Result
	State     State
	Completed int
	Failed    int
	Total     int
}

// Summary collects every job's result in submission order
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// Errors returns the failures keyed by input path
func (s Summary) Errors() map[string]error {
	errs := make(map[string]error)
	for _, r := range s.Results {
		if r.Err != nil {
			errs[r.Job.Input] = r.Err
		}
	}
	return errs
}
