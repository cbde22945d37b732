package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpanesar/sscreen/internal/screen"
)

// updateDirectory sets the enclosing session's default directory. An empty
// newdir means the caller's current working directory.
func updateDirectory(newdir string) error {
	if newdir == "" {
		newdir = os.Getenv("PWD")
		if newdir == "" {
			return fmt.Errorf("could not get current directory")
		}
	} else {
		abs, err := filepath.Abs(newdir)
		if err != nil {
			return err
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		newdir = abs
	}

	info, err := os.Stat(newdir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory does not exist: %s", newdir)
	}

	if !screen.InSession(os.Getenv("STY")) {
		return screen.ErrNoConnectedSession
	}
	if err := resolveDispatcher("").ChangeDirectory(newdir); err != nil {
		return err
	}
	fmt.Printf("Success: directory changed to '%s'\n", newdir)
	return nil
}
