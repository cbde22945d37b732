package cmd

import (
	"os"

	"github.com/jpanesar/sscreen/internal/screen"
)

// detachSession detaches the enclosing screen session, identified via $STY.
func detachSession() error {
	current, err := screen.CurrentSession(os.Getenv("STY"))
	if err != nil {
		return err
	}
	return resolveDispatcher("").Detach(current.Target())
}
