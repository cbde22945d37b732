package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpanesar/sscreen/internal/screen"
)

const pollInterval = 2 * time.Second

type tickMsg time.Time

// hostSessionsMsg carries a refreshed snapshot from one dispatcher. These
// replace only that host's entries in the session list.
type hostSessionsMsg struct {
	Host     string
	Sessions []screen.Session
}

type Model struct {
	dispatchers   []screen.Dispatcher
	sessions      []screen.Session
	filtered      []screen.Session
	cursor        int
	input         textinput.Model
	confirmKill   *screen.Session
	width, height int

	// AttachTarget and AttachDispatcher are set when the user picks a
	// session; the caller performs the actual attach after the TUI exits.
	AttachTarget     string
	AttachDispatcher screen.Dispatcher

	quitting bool
}

func NewModel(dispatchers []screen.Dispatcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 48

	return Model{
		dispatchers: dispatchers,
		input:       ti,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd()}
	cmds = append(cmds, m.refreshCmds()...)
	return tea.Batch(cmds...)
}

// refreshCmds queries every dispatcher, each in its own command so a slow
// remote host cannot stall the others.
func (m Model) refreshCmds() []tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.dispatchers {
		d := d
		cmds = append(cmds, func() tea.Msg {
			return hostSessionsMsg{
				Host:     d.HostName(),
				Sessions: screen.NewRegistry(d).List(),
			}
		})
	}
	return cmds
}

func (m Model) findDispatcher(host string) screen.Dispatcher {
	for _, d := range m.dispatchers {
		if d.HostName() == host {
			return d
		}
	}
	return &screen.LocalDispatcher{}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case hostSessionsMsg:
		var kept []screen.Session
		for _, s := range m.sessions {
			if s.Host != msg.Host {
				kept = append(kept, s)
			}
		}
		m.sessions = append(kept, msg.Sessions...)
		m.applyFilter()
		return m, nil

	case tickMsg:
		cmds := append(m.refreshCmds(), tickCmd())
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if key.Matches(msg, keys.CtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.Escape) {
		if m.confirmKill != nil {
			m.confirmKill = nil
			return m, nil
		}
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	// If kill confirmation is pending, only Enter proceeds
	if m.confirmKill != nil {
		if key.Matches(msg, keys.Enter) {
			return m.executeKill()
		}
		// Any other key cancels
		m.confirmKill = nil
		return m, nil
	}

	if key.Matches(msg, keys.Kill) {
		if sel := m.selectedSession(); sel != nil {
			m.confirmKill = sel
		}
		return m, nil
	}

	// q quits only when the filter is empty
	if key.Matches(msg, keys.Quit) && m.input.Value() == "" {
		m.quitting = true
		return m, tea.Quit
	}

	// Navigation: only when the filter is empty
	if m.input.Value() == "" {
		if key.Matches(msg, keys.Up) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
		if key.Matches(msg, keys.Down) {
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	if key.Matches(msg, keys.Enter) {
		sel := m.selectedSession()
		if sel == nil {
			return m, nil
		}
		// Dead entries cannot be attached; they get wiped via ctrl+k.
		if sel.Status == screen.Dead || sel.Status == screen.Unreachable {
			return m, nil
		}
		m.AttachTarget = sel.Target()
		m.AttachDispatcher = m.findDispatcher(sel.Host)
		m.quitting = true
		return m, tea.Quit
	}

	// Default: update the filter input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) executeKill() (Model, tea.Cmd) {
	if m.confirmKill == nil {
		return m, nil
	}
	disp := m.findDispatcher(m.confirmKill.Host)
	_ = screen.NewController(disp).Kill(*m.confirmKill)
	m.confirmKill = nil
	return m, tea.Batch(m.refreshCmds()...)
}

func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = m.sessions
	} else {
		lower := strings.ToLower(query)
		m.filtered = nil
		for _, s := range m.sessions {
			if strings.Contains(strings.ToLower(s.Name), lower) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) selectedSession() *screen.Session {
	if len(m.filtered) == 0 {
		return nil
	}
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	s := m.filtered[m.cursor]
	return &s
}
