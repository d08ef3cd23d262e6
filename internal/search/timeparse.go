package search

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	minutesPattern = regexp.MustCompile(`(\d+)\s*min`)
	hoursPattern   = regexp.MustCompile(`(\d+)\s*hour`)
	numberPattern  = regexp.MustCompile(`(\d+)`)
)

// quickTokens are the literal time words that mean "under 30 minutes".
var quickTokens = []string{"quick", "fast", "easy", "simple"}

// ParseTimeLimit turns a free-form time token into an exclusive upper bound
// in minutes. "quick"/"fast"/"easy"/"simple" mean under 30; "N minutes" (or
// "under N min", "30-minute") means under N; "N hours" converts. Text that
// parses to nothing returns ok=false and the constraint is ignored, never an
// error.
func ParseTimeLimit(token string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return 0, false
	}

	for _, q := range quickTokens {
		if strings.Contains(t, q) {
			return 30, true
		}
	}

	if m := minutesPattern.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n, true
		}
	}
	if m := hoursPattern.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n * 60, true
		}
	}
	return 0, false
}

// splitList breaks a comma-separated preference value into trimmed,
// non-empty tokens.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
