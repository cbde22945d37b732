package screen

// Dispatcher abstracts the screen binary so operations can run locally or
// over SSH.
type Dispatcher interface {
	HostName() string
	// ListSessions returns raw `screen -ls` output. screen exits non-zero
	// when no sessions exist, so the output is returned alongside any
	// error and callers decide what a failure means.
	ListSessions() (string, error)
	// CreateDetached starts a new named session without attaching to it.
	CreateDetached(name string) error
	// Attach binds the terminal to target with detach-and-reattach
	// semantics. target is a bare name or "<id>.<name>".
	Attach(target string) error
	// Detach releases target ("<id>.<name>") from its terminal, leaving it
	// running.
	Detach(target string) error
	// Terminate asks a running session to quit.
	Terminate(id string) error
	// Wipe removes a dead session's entry from screen's table.
	Wipe(target string) error
	// ChangeDirectory sets the default directory of the enclosing session.
	ChangeDirectory(dir string) error
}
