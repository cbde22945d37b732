package screen

import (
	"strings"

	"github.com/charmbracelet/log"
)

// fieldSep replaces tabs during normalization so field splitting stays
// unambiguous.
const fieldSep = "~"

// ParseListing parses raw `screen -ls` output into Sessions, preserving
// line order. The first line (header) and last two lines (socket summary)
// are discarded. Lines that fail to decode are skipped with a warning;
// the rest of the listing still parses.
func ParseListing(raw string) []Session {
	raw = strings.ReplaceAll(raw, "\t", fieldSep)
	raw = strings.ReplaceAll(raw, "\r", "")
	lines := strings.Split(raw, "\n")
	if len(lines) < 3 {
		return nil
	}
	lines = lines[1 : len(lines)-2]

	var sessions []Session
	for _, line := range lines {
		fields := strings.Split(line, fieldSep)
		if len(fields) < 3 {
			log.Warn("skipping malformed session line", "line", line)
			continue
		}

		// The identifier is "<id>.<name>". Only the first period separates
		// the two; the name may legally contain periods of its own.
		id, name, ok := strings.Cut(fields[1], ".")
		if !ok || id == "" {
			log.Warn("skipping session line with malformed identifier", "identifier", fields[1])
			continue
		}

		// The status is the last field. Some screen builds omit the date
		// column, so counting from the end works for both layouts.
		token := strings.Trim(fields[len(fields)-1], "()")
		sessions = append(sessions, Session{
			Name:   name,
			ID:     id,
			Status: ParseStatus(token),
		})
	}
	return sessions
}
