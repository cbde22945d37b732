package screen

import "github.com/charmbracelet/log"

// Registry queries the dispatcher for the live session table. Nothing is
// cached: every List reflects external state at call time, and callers must
// tolerate sessions appearing or vanishing between calls.
type Registry struct {
	disp Dispatcher
}

func NewRegistry(d Dispatcher) *Registry {
	return &Registry{disp: d}
}

// List returns the current sessions. screen -ls exits non-zero when no
// sessions exist, so a lister failure comes back as an empty set rather
// than an error.
func (r *Registry) List() []Session {
	out, err := r.disp.ListSessions()
	if err != nil {
		log.Debug("session listing failed, treating as empty", "err", err)
		return nil
	}
	sessions := ParseListing(out)
	for i := range sessions {
		sessions[i].Host = r.disp.HostName()
	}
	return sessions
}
