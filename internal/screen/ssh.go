package screen

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SSHDispatcher runs screen commands on a remote host over SSH.
type SSHDispatcher struct {
	Nickname string
	Host     string
	User     string
	SSHKey   string
}

func (s *SSHDispatcher) HostName() string { return s.Nickname }

func (s *SSHDispatcher) sshArgs() []string {
	args := []string{
		"-o", "ControlMaster=auto",
		"-o", "ControlPath=/tmp/sscreen-ssh-%r@%h:%p",
		"-o", "ControlPersist=60",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if s.SSHKey != "" {
		args = append(args, "-i", s.SSHKey)
	}
	args = append(args, fmt.Sprintf("%s@%s", s.User, s.Host))
	return args
}

func (s *SSHDispatcher) run(remoteCmd string) (string, error) {
	args := append(s.sshArgs(), remoteCmd)
	out, err := exec.Command("ssh", args...).Output()
	return string(out), err
}

func (s *SSHDispatcher) ListSessions() (string, error) {
	return s.run("screen -ls")
}

func (s *SSHDispatcher) CreateDetached(name string) error {
	_, err := s.run("screen -d -m -S " + shellQuote(name))
	return err
}

// Attach allocates a remote TTY and hands the terminal over to screen on
// the other end.
func (s *SSHDispatcher) Attach(target string) error {
	args := []string{"-t"}
	args = append(args, s.sshArgs()...)
	args = append(args, "screen -D -R "+shellQuote(target))
	cmd := exec.Command("ssh", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (s *SSHDispatcher) Detach(target string) error {
	_, err := s.run("screen -D " + shellQuote(target))
	return err
}

func (s *SSHDispatcher) Terminate(id string) error {
	_, err := s.run("screen -X -S " + shellQuote(id) + " quit")
	return err
}

func (s *SSHDispatcher) Wipe(target string) error {
	// Exit status is unreliable after a wipe, same as locally.
	s.run("screen -wipe " + shellQuote(target))
	return nil
}

func (s *SSHDispatcher) ChangeDirectory(dir string) error {
	_, err := s.run("screen -X chdir " + shellQuote(dir))
	return err
}

// shellQuote wraps a string in single quotes, escaping any single quotes
// inside.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
