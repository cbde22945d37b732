package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpanesar/sscreen/internal/screen"
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"})
	liveStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"})
	deadStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"})
)

// SelectionError reports an interactive selection that could not be
// completed. It is always surfaced to the user, never treated as fatal.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string { return e.Reason }

var (
	ErrOutOfRange    = &SelectionError{Reason: "selection out of range"}
	ErrNotRecognised = &SelectionError{Reason: "selection not recognised"}
	ErrInterrupted   = &SelectionError{Reason: "input interrupted"}
)

// Prompter runs the interactive prompts of the CLI front-end.
type Prompter struct {
	console Console
}

func New(console Console) *Prompter {
	return &Prompter{console: console}
}

// Select shows a numbered session list and returns the user's pick. Lists
// of zero or one sessions short-circuit without prompting: nil for zero,
// the only entry for one.
func (p *Prompter) Select(msg string, sessions []screen.Session) (*screen.Session, error) {
	if len(sessions) == 0 {
		return nil, nil
	}
	if len(sessions) == 1 {
		return &sessions[0], nil
	}

	p.console.WriteLine(msg)
	for i, s := range sessions {
		status := statusStyle(s.Status).Render(s.Status.String())
		p.console.WriteLine(fmt.Sprintf("    #%d %s (%s) [%s]", i+1, s.Name, s.ID, status))
	}

	line, err := p.console.ReadLine("#: ")
	if err != nil {
		return nil, ErrInterrupted
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, ErrNotRecognised
	}
	if n < 1 || n > len(sessions) {
		return nil, ErrOutOfRange
	}
	return &sessions[n-1], nil
}

// Confirm asks a yes/no question. Anything but a leading y (either case)
// counts as no, including empty input and read failures.
func (p *Prompter) Confirm(msg string) bool {
	p.console.WriteLine(msg)
	line, err := p.console.ReadLine("(y/n): ")
	if err != nil || line == "" {
		return false
	}
	return line[0] == 'y' || line[0] == 'Y'
}

// List prints the session table the way the list action shows it.
func (p *Prompter) List(sessions []screen.Session) {
	if len(sessions) == 0 {
		p.console.WriteLine("no open sessions")
		return
	}
	for i, s := range sessions {
		p.console.WriteLine(fmt.Sprintf("    %s%d %s (%s)", s.Status.Icon(), i+1, s.Name, s.ID))
	}
}

func statusStyle(s screen.Status) lipgloss.Style {
	switch s {
	case screen.Attached, screen.Multi:
		return liveStyle
	case screen.Dead, screen.Unreachable:
		return deadStyle
	default:
		return dimStyle
	}
}
