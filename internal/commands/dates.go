package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDue indicates a due date that could not be parsed.
var ErrInvalidDue = errors.New("invalid due date")

// now is the clock used for defaults and relative dates.
var now = time.Now

// ParseDue parses a due date relative to ref.
// Accepted forms: YYYY-MM-DD, today, tomorrow, yesterday, +Nd, -Nd.
func ParseDue(s string, ref time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "today", "now":
		return ref, nil
	case "tomorrow":
		return ref.AddDate(0, 0, 1), nil
	case "yesterday":
		return ref.AddDate(0, 0, -1), nil
	}

	if len(s) > 2 && (s[0] == '+' || s[0] == '-') && strings.HasSuffix(s, "d") {
		digits := s[1 : len(s)-1]
		if strings.IndexFunc(digits, notDigit) >= 0 {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDue, s)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDue, s)
		}
		if s[0] == '-' {
			n = -n
		}
		return ref.AddDate(0, 0, n), nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, ref.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDue, s)
	}
	return t, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
