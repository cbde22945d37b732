package screen

import (
	"fmt"
	"testing"
)

func TestRegistryList(t *testing.T) {
	disp := &fakeDispatcher{
		host: "dev",
		listOut: "Header\n" +
			"\t12.main\t(Attached)\n" +
			"\t34.scratch\t(Detached)\n" +
			"Footer\n(2 Sockets)",
	}

	got := NewRegistry(disp).List()
	if len(got) != 2 {
		t.Fatalf("List() returned %d sessions, want 2", len(got))
	}
	for _, s := range got {
		if s.Host != "dev" {
			t.Errorf("session %q has host %q, want %q", s.Name, s.Host, "dev")
		}
	}
}

// screen -ls exits non-zero when no sessions exist, so the registry treats
// any lister failure as an empty table. This deliberately conflates a
// missing binary with zero sessions; the original tool behaves the same
// way.
func TestRegistryListFailureMeansEmpty(t *testing.T) {
	disp := &fakeDispatcher{listErr: fmt.Errorf("exit status 1")}

	got := NewRegistry(disp).List()
	if len(got) != 0 {
		t.Errorf("List() returned %d sessions, want 0", len(got))
	}
}
