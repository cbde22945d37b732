package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jpanesar/sscreen/internal/screen"
	"github.com/jpanesar/sscreen/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse sessions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		dispatchers := []screen.Dispatcher{&screen.LocalDispatcher{Bin: cfg.ScreenBin}}
		for nick, h := range cfg.Hosts {
			dispatchers = append(dispatchers, &screen.SSHDispatcher{
				Nickname: nick,
				Host:     h.Host,
				User:     h.User,
				SSHKey:   h.SSHKey,
			})
		}

		for {
			m := tui.NewModel(dispatchers)
			p := tea.NewProgram(m, tea.WithAltScreen())

			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}

			final := finalModel.(tui.Model)
			if final.AttachTarget == "" {
				break
			}

			// Attach as a child process; returns when the user detaches
			// and the browser restarts.
			_ = final.AttachDispatcher.Attach(final.AttachTarget)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
