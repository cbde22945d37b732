package cmd

import (
	"fmt"

	"github.com/jpanesar/sscreen/internal/screen"
)

// killSession kills one session, found by name or by interactive pick.
func killSession(host, name string) error {
	disp := resolveDispatcher(host)
	sessions := screen.NewRegistry(disp).List()
	p := newPrompter()

	var target *screen.Session
	if name != "" {
		for i := range sessions {
			if sessions[i].Name == name {
				target = &sessions[i]
				break
			}
		}
	}
	if target == nil {
		picked, err := p.Select("Please enter session number to kill:", sessions)
		if err != nil {
			return err
		}
		target = picked
	}
	if target == nil {
		fmt.Println("No sessions found")
		return nil
	}

	if !p.Confirm(fmt.Sprintf("Are you sure you want to kill session %s ?", target.Name)) {
		fmt.Println("session kill aborted")
		return nil
	}
	if err := screen.NewController(disp).Kill(*target); err != nil {
		return err
	}
	fmt.Printf("%s session killed\n", target.Name)
	return nil
}

// killAllSessions kills every running session after one confirmation.
func killAllSessions(host string) error {
	disp := resolveDispatcher(host)
	sessions := screen.NewRegistry(disp).List()
	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	if !newPrompter().Confirm("Are you sure you want to kill all sessions?") {
		fmt.Println("session kill aborted")
		return nil
	}

	controller := screen.NewController(disp)
	for _, s := range sessions {
		if err := controller.Kill(s); err != nil {
			return err
		}
	}
	fmt.Println("all sessions killed")
	return nil
}
