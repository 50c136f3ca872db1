// ABOUTME: Bubbletea model for batch conversion TUI
// ABOUTME: Defines batch progress state and update logic
package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// maxRecent bounds the finished-job list
const maxRecent = 8

// Model represents the TUI state
type Model struct {
	// Batch
	target    string
	workers   int
	total     int
	completed int
	failed    int

	// Jobs
	running map[uuid.UUID]string
	recent  []string
	errors  []string

	// Final state
	finished bool
	runErr   error

	// Display
	showErrors bool
	cancel     func()

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ProgressMsg:
		m.applyProgress(batch.Progress(msg))
	case DoneMsg:
		m.finished = true
		m.runErr = msg.Err
		m.completed = msg.Summary.Succeeded
		m.failed = msg.Summary.Failed
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderProgress()
	s += m.renderJobs()

	if m.showErrors {
		s += m.renderErrors()
	}

	s += m.renderHelp()

	return s
}

// renderHeader renders the target format and worker count
func (m Model) renderHeader() string {
	status := "Converting"
	switch {
	case m.finished && m.runErr != nil:
		status = "Stopped: " + m.runErr.Error()
	case m.finished:
		status = "Finished"
	}

	return fmt.Sprintf(`┌─ PCM Converter ──────────────────────────────────────┐
│ Target:  %-43s │
│ Workers: %-43d │
│ Status:  %-43s │
├──────────────────────────────────────────────────────┤
`, truncate(m.target, 43), m.workers, truncate(status, 43))
}

// renderProgress renders the overall progress bar
func (m Model) renderProgress() string {
	done := m.completed + m.failed
	bar := renderBar(done, m.total, 30)

	return fmt.Sprintf("│ [%s] %4d/%-4d%-10s │\n"+
		"│ OK: %-6d Failed: %-6d%-27s │\n",
		bar, done, m.total, "",
		m.completed, m.failed, "")
}

// renderJobs renders files in flight and recently finished
func (m Model) renderJobs() string {
	s := "├──────────────────────────────────────────────────────┤\n"

	if len(m.running) == 0 && len(m.recent) == 0 {
		return s + "│ No jobs yet                                          │\n"
	}

	names := make([]string, 0, len(m.running))
	for _, name := range m.running {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s += fmt.Sprintf("│ ▶ %-50s │\n", truncate(name, 50))
	}
	for _, line := range m.recent {
		s += fmt.Sprintf("│ %-52s │\n", truncate(line, 52))
	}
	return s
}

// renderErrors renders every failure seen so far
func (m Model) renderErrors() string {
	s := "├──────────────────────────────────────────────────────┤\n"
	if len(m.errors) == 0 {
		return s + "│ No errors                                            │\n"
	}
	for _, e := range m.errors {
		s += fmt.Sprintf("│ %-52s │\n", truncate(e, 52))
	}
	return s
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `├──────────────────────────────────────────────────────┤
│ e:Errors  q:Quit                                     │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.cancel != nil && !m.finished {
			m.cancel()
		}
		return m, tea.Quit
	case "e":
		m.showErrors = !m.showErrors
	}

	return m, nil
}

// applyProgress updates model from a runner event
func (m *Model) applyProgress(p batch.Progress) {
	m.total = p.Total
	m.completed = p.Completed
	m.failed = p.Failed

	name := filepath.Base(p.Job.Input)

	switch p.State {
	case batch.StateRunning:
		m.running[p.Job.ID] = name
	case batch.StateDone:
		delete(m.running, p.Job.ID)
		m.pushRecent(fmt.Sprintf("✓ %s -> %s", name, p.Destination))
	case batch.StateFailed:
		delete(m.running, p.Job.ID)
		m.pushRecent("✗ " + name)
		m.errors = append(m.errors, fmt.Sprintf("%s: %v", name, p.Err))
	}
}

func (m *Model) pushRecent(line string) {
	m.recent = append(m.recent, line)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[len(m.recent)-maxRecent:]
	}
}

// ProgressMsg carries one runner event into the TUI
type ProgressMsg batch.Progress

// DoneMsg is sent once the runner returns and closes the TUI
type DoneMsg struct {
	Summary batch.Summary
	Err     error
}

// Utility functions
func renderBar(value, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// truncate shortens s to length runes, ending in "..." when cut
func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
