package screen

// Controller issues the external command appropriate for a session's
// observed status. It never re-queries state and never transitions a record
// in place: callers obtain status from a registry snapshot and re-list
// afterwards if they need the post-operation status.
type Controller struct {
	disp Dispatcher
}

func NewController(d Dispatcher) *Controller {
	return &Controller{disp: d}
}

// Run connects to the session, creating it first when it does not exist
// yet. A dead or unreachable session is wiped and the operation fails with
// ErrConnectionFailed so the user retries against a clean table.
func (c *Controller) Run(s Session) error {
	switch s.Status {
	case Unknown:
		if err := c.disp.CreateDetached(s.Name); err != nil {
			return err
		}
	case Unreachable, Dead:
		if err := c.Kill(s); err != nil {
			return err
		}
		return ErrConnectionFailed
	}
	return c.Connect(s)
}

// Connect attaches the terminal to s, detaching it elsewhere first when
// needed. A session never observed in a listing is addressed by name
// alone; anything else by its exact "<id>.<name>" target.
func (c *Controller) Connect(s Session) error {
	switch s.Status {
	case Unknown:
		return c.disp.Attach(s.Name)
	case Unreachable, Dead:
		return ErrSessionUnreachable
	default:
		return c.disp.Attach(s.Target())
	}
}

// Kill terminates a running session, or wipes its table entry when it is
// already dead.
func (c *Controller) Kill(s Session) error {
	if s.Status == Dead || s.Status == Unreachable {
		return c.disp.Wipe(s.Target())
	}
	return c.disp.Terminate(s.ID)
}
