package cmd

import (
	"errors"

	"github.com/jpanesar/sscreen/internal/screen"
)

// connectSession resolves the target session and connects to it, creating
// it first when needed. With several sessions running and no name given,
// the user picks one interactively.
func connectSession(host, name string) error {
	cfg := loadConfig()
	disp := resolveDispatcher(host)
	resolver := screen.Resolver{DefaultName: cfg.DefaultSession}

	target, err := resolver.Resolve(name, screen.NewRegistry(disp).List())
	if err != nil {
		var ambiguous *screen.AmbiguousError
		if !errors.As(err, &ambiguous) {
			return err
		}
		picked, err := newPrompter().Select("Please enter session number to reattach:", ambiguous.Sessions)
		if err != nil {
			return err
		}
		target = *picked
	}

	return screen.NewController(disp).Run(target)
}
