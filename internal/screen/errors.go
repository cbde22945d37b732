package screen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName rejects session names screen would misparse as ids.
	ErrInvalidName = errors.New("session name must not begin with numeric character")

	// ErrSessionUnreachable means a connect was attempted against a dead
	// or unreachable record. Run guards against this; direct Connect
	// callers must handle it.
	ErrSessionUnreachable = errors.New("session is unreachable")

	// ErrConnectionFailed means the target was dead and had to be wiped;
	// the user must retry to get a fresh session.
	ErrConnectionFailed = errors.New("unreachable session has been wiped, please try connecting again")

	// ErrNoConnectedSession means an operation needed the process to be
	// inside a screen session and it was not.
	ErrNoConnectedSession = errors.New("not in screen session")
)

// AmbiguousError signals that no name was given while several sessions are
// running. It is a control-flow signal rather than a failure: callers hand
// the candidate list to interactive selection.
type AmbiguousError struct {
	Sessions []Session
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d sessions running, cannot choose one automatically", len(e.Sessions))
}
