package screen

// Resolver decides which session a command should operate on. It performs
// no I/O: ambiguity is reported to the caller, which may run an interactive
// selection over the candidates.
type Resolver struct {
	// DefaultName names the session created when no name is given and no
	// sessions exist. Empty falls back to DefaultSessionName.
	DefaultName string
}

// Resolve maps an optional requested name and a registry snapshot to a
// single target session.
//
// A requested name always yields a target: the matching record when one
// exists, otherwise a fresh record naming a session to be created. Without
// a name, an empty snapshot yields the default session, a single entry is
// taken as-is, and anything more is ambiguous.
func (r Resolver) Resolve(requested string, sessions []Session) (Session, error) {
	if requested != "" {
		if requested[0] >= '0' && requested[0] <= '9' {
			return Session{}, ErrInvalidName
		}
		for _, s := range sessions {
			if s.Name == requested {
				return s, nil
			}
		}
		return Session{Name: requested}, nil
	}

	switch len(sessions) {
	case 0:
		name := r.DefaultName
		if name == "" {
			name = DefaultSessionName
		}
		return Session{Name: name}, nil
	case 1:
		return sessions[0], nil
	default:
		return Session{}, &AmbiguousError{Sessions: sessions}
	}
}
