package screen

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// LocalDispatcher runs screen commands on the local machine.
type LocalDispatcher struct {
	// Bin overrides the screen binary path. Empty means look up "screen"
	// on PATH.
	Bin string
}

func (l *LocalDispatcher) HostName() string { return "" }

func (l *LocalDispatcher) bin() (string, error) {
	if l.Bin != "" {
		return l.Bin, nil
	}
	path, err := exec.LookPath("screen")
	if err != nil {
		return "", fmt.Errorf("screen not found: %w", err)
	}
	return path, nil
}

func (l *LocalDispatcher) run(args ...string) error {
	bin, err := l.bin()
	if err != nil {
		return err
	}
	log.Debug("running screen", "args", args)
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (l *LocalDispatcher) ListSessions() (string, error) {
	bin, err := l.bin()
	if err != nil {
		return "", err
	}
	out, err := exec.Command(bin, "-ls").Output()
	return string(out), err
}

func (l *LocalDispatcher) CreateDetached(name string) error {
	return l.run("-d", "-m", "-S", name)
}

// Attach hands the terminal over to screen; returns when the user detaches
// or the session ends.
func (l *LocalDispatcher) Attach(target string) error {
	bin, err := l.bin()
	if err != nil {
		return err
	}
	cmd := exec.Command(bin, "-D", "-R", target)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (l *LocalDispatcher) Detach(target string) error {
	return l.run("-D", target)
}

func (l *LocalDispatcher) Terminate(id string) error {
	return l.run("-X", "-S", id, "quit")
}

func (l *LocalDispatcher) Wipe(target string) error {
	// screen -wipe reports a non-zero exit even when the entry was
	// removed, so the status is not meaningful here.
	_ = l.run("-wipe", target)
	return nil
}

func (l *LocalDispatcher) ChangeDirectory(dir string) error {
	return l.run("-X", "chdir", dir)
}
