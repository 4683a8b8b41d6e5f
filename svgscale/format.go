package svgscale

import (
	"strconv"
	"strings"
	"time"
)

// DefaultFormat renders a tick value with thousands separators,
// e.g. 12500 as "12,500".
func DefaultFormat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead == 0 {
			lead = 3
		}
		b.WriteString(intPart[:lead])
		for i := lead; i < len(intPart); i += 3 {
			b.WriteByte(',')
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + frac
	if neg {
		out = "-" + out
	}
	return out
}

// DefaultTimeFormat renders a calendar tick as an ISO date.
func DefaultTimeFormat(t time.Time) string {
	return t.Format("2006-01-02")
}
