package analyses

import (
	"strconv"
	"strings"
)

// ParseMatchPercentage returns the first "<digits>%" found on a line that
// mentions "match" (any case) and contains "%". It returns 0 when no line
// qualifies. Values above 100 are returned unchanged.
func ParseMatchPercentage(text string) int {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if !strings.Contains(strings.ToLower(line), "match") || !strings.Contains(line, "%") {
			continue
		}
		if v, ok := firstPercent(line); ok {
			return v
		}
	}
	return 0
}

// firstPercent finds the first run of ASCII digits immediately followed by '%'.
func firstPercent(line string) (int, bool) {
	start := -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if c == '%' && start >= 0 {
			v, err := strconv.Atoi(line[start:i])
			if err != nil {
				return 0, false
			}
			return v, true
		}
		start = -1
	}
	return 0, false
}
