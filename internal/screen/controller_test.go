package screen

import (
	"errors"
	"fmt"
	"testing"
)

// fakeDispatcher records every external command instead of running screen.
type fakeDispatcher struct {
	host      string
	listOut   string
	listErr   error
	createErr error
	calls     []string
}

func (f *fakeDispatcher) HostName() string { return f.host }

func (f *fakeDispatcher) ListSessions() (string, error) {
	f.calls = append(f.calls, "list")
	return f.listOut, f.listErr
}

func (f *fakeDispatcher) CreateDetached(name string) error {
	f.calls = append(f.calls, "create:"+name)
	return f.createErr
}

func (f *fakeDispatcher) Attach(target string) error {
	f.calls = append(f.calls, "attach:"+target)
	return nil
}

func (f *fakeDispatcher) Detach(target string) error {
	f.calls = append(f.calls, "detach:"+target)
	return nil
}

func (f *fakeDispatcher) Terminate(id string) error {
	f.calls = append(f.calls, "terminate:"+id)
	return nil
}

func (f *fakeDispatcher) Wipe(target string) error {
	f.calls = append(f.calls, "wipe:"+target)
	return nil
}

func (f *fakeDispatcher) ChangeDirectory(dir string) error {
	f.calls = append(f.calls, "chdir:"+dir)
	return nil
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

func TestControllerRun(t *testing.T) {
	tests := []struct {
		name      string
		session   Session
		wantCalls []string
		wantErr   error
	}{
		{
			name:      "unknown creates then connects by name",
			session:   Session{Name: "work"},
			wantCalls: []string{"create:work", "attach:work"},
		},
		{
			name:      "detached reattaches by exact target",
			session:   Session{Name: "work", ID: "99", Status: Detached},
			wantCalls: []string{"attach:99.work"},
		},
		{
			name:      "attached detaches elsewhere and reattaches",
			session:   Session{Name: "work", ID: "99", Status: Attached},
			wantCalls: []string{"attach:99.work"},
		},
		{
			name:      "dead wipes and reports connection failure",
			session:   Session{Name: "work", ID: "99", Status: Dead},
			wantCalls: []string{"wipe:99.work"},
			wantErr:   ErrConnectionFailed,
		},
		{
			name:      "unreachable wipes and reports connection failure",
			session:   Session{Name: "work", ID: "99", Status: Unreachable},
			wantCalls: []string{"wipe:99.work"},
			wantErr:   ErrConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disp := &fakeDispatcher{}
			err := NewController(disp).Run(tt.session)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			assertCalls(t, disp.calls, tt.wantCalls)
		})
	}
}

func TestControllerRunCreateFailure(t *testing.T) {
	disp := &fakeDispatcher{createErr: fmt.Errorf("screen exited 1")}
	err := NewController(disp).Run(Session{Name: "work"})
	if err == nil {
		t.Fatal("Run() error = nil, want create failure")
	}
	assertCalls(t, disp.calls, []string{"create:work"})
}

func TestControllerConnect(t *testing.T) {
	t.Run("dead session is refused without a command", func(t *testing.T) {
		disp := &fakeDispatcher{}
		err := NewController(disp).Connect(Session{Name: "work", ID: "99", Status: Dead})
		if !errors.Is(err, ErrSessionUnreachable) {
			t.Errorf("Connect() error = %v, want ErrSessionUnreachable", err)
		}
		assertCalls(t, disp.calls, nil)
	})

	t.Run("unknown attaches by name alone", func(t *testing.T) {
		disp := &fakeDispatcher{}
		if err := NewController(disp).Connect(Session{Name: "work"}); err != nil {
			t.Fatalf("Connect() error = %v", err)
		}
		assertCalls(t, disp.calls, []string{"attach:work"})
	})

	t.Run("multi attaches by exact target", func(t *testing.T) {
		disp := &fakeDispatcher{}
		if err := NewController(disp).Connect(Session{Name: "work", ID: "99", Status: Multi}); err != nil {
			t.Fatalf("Connect() error = %v", err)
		}
		assertCalls(t, disp.calls, []string{"attach:99.work"})
	})
}

func TestControllerKill(t *testing.T) {
	tests := []struct {
		name      string
		session   Session
		wantCalls []string
	}{
		{
			name:      "running session is terminated by id",
			session:   Session{Name: "work", ID: "99", Status: Attached},
			wantCalls: []string{"terminate:99"},
		},
		{
			name:      "detached session is terminated by id",
			session:   Session{Name: "work", ID: "99", Status: Detached},
			wantCalls: []string{"terminate:99"},
		},
		{
			name:      "dead session is wiped by exact target",
			session:   Session{Name: "work", ID: "99", Status: Dead},
			wantCalls: []string{"wipe:99.work"},
		},
		{
			name:      "unreachable session is wiped by exact target",
			session:   Session{Name: "work", ID: "99", Status: Unreachable},
			wantCalls: []string{"wipe:99.work"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disp := &fakeDispatcher{}
			if err := NewController(disp).Kill(tt.session); err != nil {
				t.Fatalf("Kill() error = %v", err)
			}
			assertCalls(t, disp.calls, tt.wantCalls)
		})
	}
}
