package screen

import "testing"

func TestParseListing(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect []Session
	}{
		{
			name: "single detached session without date column",
			raw:  "Header\n\t12345.work\t(Detached)\nFooter\n(2 Sockets)",
			expect: []Session{
				{Name: "work", ID: "12345", Status: Detached},
			},
		},
		{
			name: "full listing with date column",
			raw: "There are screens on:\n" +
				"\t1234.main\t(01/02/2026 10:00:00 AM)\t(Attached)\n" +
				"\t5678.scratch\t(01/02/2026 09:00:00 AM)\t(Detached)\n" +
				"2 Sockets in /run/screen/S-jas.\n",
			expect: []Session{
				{Name: "main", ID: "1234", Status: Attached},
				{Name: "scratch", ID: "5678", Status: Detached},
			},
		},
		{
			name: "session name containing periods round-trips",
			raw:  "Header\n\t777.my.dotted.name\t(Detached)\nFooter\n(1 Socket)",
			expect: []Session{
				{Name: "my.dotted.name", ID: "777", Status: Detached},
			},
		},
		{
			name: "dead session",
			raw:  "There is a screen on:\n\t999.old\t(Dead ???)\nRemove dead screens with 'screen -wipe'.\n(1 Socket)",
			expect: []Session{
				{Name: "old", ID: "999", Status: Dead},
			},
		},
		{
			name: "carriage returns stripped",
			raw:  "Header\r\n\t42.win\t(Attached)\r\nFooter\r\n(1 Socket)\r\n",
			expect: []Session{
				{Name: "win", ID: "42", Status: Attached},
			},
		},
		{
			name: "malformed lines skipped, rest still parses",
			raw: "Header\n" +
				"garbage without tabs\n" +
				"\tnodots\t(Attached)\n" +
				"\t11.ok\t(Detached)\n" +
				"Footer\n(1 Socket)",
			expect: []Session{
				{Name: "ok", ID: "11", Status: Detached},
			},
		},
		{
			name:   "empty output",
			raw:    "",
			expect: nil,
		},
		{
			name:   "header and footer only",
			raw:    "No Sockets found in /run/screen/S-jas.\n",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListing(tt.raw)
			if len(got) != len(tt.expect) {
				t.Fatalf("ParseListing() returned %d sessions, want %d: %v", len(got), len(tt.expect), got)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("session %d = %+v, want %+v", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestParseListingPreservesOrder(t *testing.T) {
	raw := "Header\n" +
		"\t3.charlie\t(Detached)\n" +
		"\t1.alpha\t(Attached)\n" +
		"\t2.bravo\t(Detached)\n" +
		"Footer\n(3 Sockets)"

	got := ParseListing(raw)
	want := []string{"charlie", "alpha", "bravo"}
	if len(got) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}
