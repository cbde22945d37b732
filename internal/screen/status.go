package screen

import "strings"

// Status classifies a session's reachability as reported by the lister.
type Status int

const (
	Unknown Status = iota
	Attached
	Detached
	Multi
	Unreachable
	Dead
)

var statusNames = [...]string{"unknown", "attached", "detached", "multi", "unreachable", "dead"}

func (s Status) String() string {
	if s < Unknown || s > Dead {
		return "unknown"
	}
	return statusNames[s]
}

// Icon returns the single-character marker used in session listings.
func (s Status) Icon() string {
	icons := [...]string{"?", ">", "#", ">", "?", "X"}
	if s < Unknown || s > Dead {
		return "?"
	}
	return icons[s]
}

// statusMatchThreshold is the minimum similarity for a token to count as a
// near-miss of a canonical status name.
const statusMatchThreshold = 0.6

// ParseStatus maps a raw status token to the nearest canonical Status.
// screen's wording varies across versions ("Dead ???", "Multi-attached"),
// so the token is fuzzy-matched against the canonical names rather than
// compared exactly. A token with no close neighbor maps to Unknown.
func ParseStatus(token string) Status {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Unknown
	}

	best := Unknown
	bestScore := 0.0
	for i, name := range statusNames {
		if score := similarity(token, name); score > bestScore {
			bestScore = score
			best = Status(i)
		}
	}
	if bestScore < statusMatchThreshold {
		return Unknown
	}
	return best
}

// similarity returns a ratio in [0, 1]: twice the length of the longest
// common subsequence over the combined length of both strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
		clear(cur)
	}
	return prev[len(b)]
}
