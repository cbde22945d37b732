package screen

import (
	"fmt"
	"strings"
)

// DefaultSessionName is used when no name is given and no sessions exist.
const DefaultSessionName = "main"

// Session is one screen session as reported by the lister. ID is empty only
// for a session that has not been observed in a listing yet (one about to
// be created). Records are rebuilt on every listing and never mutated.
type Session struct {
	Name   string
	ID     string
	Status Status
	Host   string // empty for local, config nickname for remote
}

// Target returns the "<id>.<name>" form screen expects when an exact
// session must be addressed.
func (s Session) Target() string {
	return s.ID + "." + s.Name
}

func (s Session) String() string {
	return fmt.Sprintf("%s (%s) [%s]", s.Name, s.ID, s.Status)
}

// InSession reports whether sty (the value of $STY) indicates the process
// is running inside a screen session.
func InSession(sty string) bool {
	return sty != ""
}

// CurrentSession derives the enclosing session from sty. The variable
// holds "<id>.<name>"; only the first period separates the two, since the
// name may itself contain periods.
func CurrentSession(sty string) (Session, error) {
	if !InSession(sty) {
		return Session{}, ErrNoConnectedSession
	}
	id, name, ok := strings.Cut(sty, ".")
	if !ok || id == "" || name == "" {
		return Session{}, fmt.Errorf("malformed STY value %q", sty)
	}
	return Session{Name: name, ID: id, Status: Attached}, nil
}
