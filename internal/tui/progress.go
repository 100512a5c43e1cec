package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/EmundoT/solbench/internal/core"
)

var (
	progressStyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	progressStyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	progressStyleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// NewProgressTracker picks a tracker for the output mode: none for quiet and
// JSON, a live bar on a terminal, plain lines otherwise.
func NewProgressTracker(label string, mode core.OutputMode) core.ProgressTracker {
	if mode != core.OutputNormal {
		return NewNoOpProgressTracker()
	}
	if IsTerminal() {
		return NewBubbleteaProgressTracker(0, label)
	}
	return NewTextProgressTracker(label)
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return isTerminalFd(os.Stdout.Fd())
}

func isTerminalFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ========================================
// Bubbletea Progress Model
// ========================================

type progressModel struct {
	current int
	total   int
	label   string
	file    string
	started time.Time
	done    bool
	failed  bool
	err     error
	width   int
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case progressIncrementMsg:
		m.current++
		m.file = msg.file
	case progressSetTotalMsg:
		m.total = msg.total
	case progressCompleteMsg:
		m.done = true
		return m, tea.Quit
	case progressFailMsg:
		m.failed = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	elapsed := time.Since(m.started).Round(time.Second)
	if m.done {
		return progressStyleSuccess.Render(fmt.Sprintf("✓ %s (%d/%d in %s)", m.label, m.current, m.total, elapsed)) + "\n"
	}
	if m.failed {
		return progressStyleErr.Render(fmt.Sprintf("✗ %s (failed after %d/%d: %v)", m.label, m.current, m.total, m.err)) + "\n"
	}

	barWidth := 40
	if m.width > 0 && m.width < 80 {
		barWidth = 20
	}
	filled := 0
	if m.total > 0 {
		filled = m.current * barWidth / m.total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	status := fmt.Sprintf("[%s] %d/%d %s", bar, m.current, m.total, elapsed)
	if m.file != "" {
		status += " - " + m.file
	}
	return fmt.Sprintf("%s\n%s", progressStyleTitle.Render(m.label), status)
}

type progressIncrementMsg struct {
	file string
}

type progressSetTotalMsg struct {
	total int
}

type progressCompleteMsg struct{}

type progressFailMsg struct {
	err error
}

// ========================================
// BubbleteaProgressTracker Implementation
// ========================================

// BubbleteaProgressTracker renders a live progress bar
type BubbleteaProgressTracker struct {
	program *tea.Program
	done    chan struct{}
}

// NewBubbleteaProgressTracker starts the progress program in the background.
func NewBubbleteaProgressTracker(total int, label string) *BubbleteaProgressTracker {
	return newBubbleteaProgressTracker(progressModel{
		total:   total,
		label:   label,
		started: time.Now(),
	})
}

func newBubbleteaProgressTracker(m progressModel, opts ...tea.ProgramOption) *BubbleteaProgressTracker {
	tracker := &BubbleteaProgressTracker{
		program: tea.NewProgram(m, opts...),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(tracker.done)
		_, _ = tracker.program.Run()
	}()

	return tracker
}

// Increment records one finished file.
func (t *BubbleteaProgressTracker) Increment(file string) {
	t.program.Send(progressIncrementMsg{file: file})
}

// SetTotal sets the number of files in the run.
func (t *BubbleteaProgressTracker) SetTotal(total int) {
	t.program.Send(progressSetTotalMsg{total: total})
}

// Complete renders the final line and waits for the program to exit.
func (t *BubbleteaProgressTracker) Complete() {
	t.program.Send(progressCompleteMsg{})
	<-t.done
}

// Fail renders the failure line and waits for the program to exit.
func (t *BubbleteaProgressTracker) Fail(err error) {
	t.program.Send(progressFailMsg{err: err})
	<-t.done
}

// ========================================
// Text Progress (Non-TTY)
// ========================================

// TextProgressTracker prints one line per finished file
type TextProgressTracker struct {
	current int
	total   int
	label   string
}

// NewTextProgressTracker creates a new text progress tracker
func NewTextProgressTracker(label string) *TextProgressTracker {
	return &TextProgressTracker{label: label}
}

// Increment prints the finished file.
func (t *TextProgressTracker) Increment(file string) {
	t.current++
	msg := fmt.Sprintf("  [%d/%d]", t.current, t.total)
	if file != "" {
		msg += " " + file
	}
	fmt.Println(msg)
}

// SetTotal announces the run.
func (t *TextProgressTracker) SetTotal(total int) {
	t.total = total
	fmt.Printf("Starting: %s (0/%d)\n", t.label, total)
}

// Complete marks the operation as complete.
func (t *TextProgressTracker) Complete() {
	fmt.Printf("✓ %s: Completed (%d/%d)\n", t.label, t.current, t.total)
}

// Fail marks the operation as failed with an error.
func (t *TextProgressTracker) Fail(err error) {
	fmt.Printf("✗ %s: Failed - %v\n", t.label, err)
}

// ========================================
// No-Op Progress (Quiet/JSON)
// ========================================

// NoOpProgressTracker does nothing (for quiet/JSON/testing modes)
type NoOpProgressTracker struct{}

// NewNoOpProgressTracker creates a new no-op progress tracker
func NewNoOpProgressTracker() *NoOpProgressTracker {
	return &NoOpProgressTracker{}
}

// Increment does nothing (no-op implementation).
func (t *NoOpProgressTracker) Increment(_ string) {}

// SetTotal does nothing (no-op implementation).
func (t *NoOpProgressTracker) SetTotal(_ int) {}

// Complete does nothing (no-op implementation).
func (t *NoOpProgressTracker) Complete() {}

// Fail does nothing (no-op implementation).
func (t *NoOpProgressTracker) Fail(_ error) {}
