package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpanesar/sscreen/internal/screen"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	yellowColor = lipgloss.AdaptiveColor{Light: "#7D5A00", Dark: "#F1FA8C"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	statusLive = lipgloss.NewStyle().
			Foreground(greenColor)

	statusIdle = lipgloss.NewStyle().
			Foreground(yellowColor)

	statusDead = lipgloss.NewStyle().
			Foreground(redColor).
			Bold(true)

	statusDim = lipgloss.NewStyle().
			Foreground(dimColor)

	hostStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	confirmLabelStyle = lipgloss.NewStyle().
				Foreground(redColor).
				Bold(true).
				PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

func statusCell(s screen.Status) string {
	label := "[" + s.String() + "]"
	switch s {
	case screen.Attached, screen.Multi:
		return statusLive.Render(label)
	case screen.Detached:
		return statusIdle.Render(label)
	case screen.Dead, screen.Unreachable:
		return statusDead.Render(label)
	default:
		return statusDim.Render(label)
	}
}

func (m Model) View() string {
	if m.quitting && m.AttachTarget == "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("sscreen"))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no open sessions"))
		b.WriteString("\n")
	}

	for i, s := range m.filtered {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		row := fmt.Sprintf("%s %s (%s) %s",
			s.Status.Icon(),
			pad(s.Name, 20),
			pad(s.ID, 8),
			statusCell(s.Status),
		)
		if s.Host != "" {
			row += " " + hostStyle.Render("@"+s.Host)
		}
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}

		b.WriteString(cursor + row + "\n")
	}

	b.WriteString("\n")

	if m.confirmKill != nil {
		b.WriteString(confirmLabelStyle.Render(
			fmt.Sprintf("Kill session %q? enter confirms, any other key cancels", m.confirmKill.Name)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(inputLabelStyle.Render(" > "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter attach · ctrl+k kill · q quit"))
	b.WriteString("\n")

	return b.String()
}
