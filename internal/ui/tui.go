// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the batch progress view
package ui

import (
	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// NewModel creates a new TUI model. cancel is called when the user quits
// before the batch finishes and may be nil.
func NewModel(target string, workers int, cancel func()) Model {
	return Model{
		target:  target,
		workers: workers,
		running: make(map[uuid.UUID]string),
		cancel:  cancel,
	}
}

// Run creates the TUI program; the caller starts it with Run on the
// returned program
func Run(target string, workers int, cancel func()) *tea.Program {
	return tea.NewProgram(NewModel(target, workers, cancel), tea.WithAltScreen())
}

// Reporter returns a runner progress callback that forwards events to p
func Reporter(p *tea.Program) func(batch.Progress) {
	return func(progress batch.Progress) {
		p.Send(ProgressMsg(progress))
	}
}
