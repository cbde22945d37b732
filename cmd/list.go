package cmd

import "github.com/jpanesar/sscreen/internal/screen"

// listSessions prints the current session table.
func listSessions(host string) error {
	sessions := screen.NewRegistry(resolveDispatcher(host)).List()
	newPrompter().List(sessions)
	return nil
}
