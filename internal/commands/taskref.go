package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// minIDPrefix is the shortest id prefix accepted as a task reference.
const minIDPrefix = 4

// TaskRef represents a parsed task reference: either a 1-based position in
// the list or a task id (or a unique id prefix).
type TaskRef struct {
	Position int    // 1-based; 0 when ID is set
	ID       string // full id or prefix; empty when Position is set
}

// IsPosition reports whether the reference is positional.
func (r TaskRef) IsPosition() bool {
	return r.ID == ""
}

func (r TaskRef) String() string {
	if r.IsPosition() {
		return strconv.Itoa(r.Position)
	}
	return r.ID
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrInvalidTaskRef indicates a token that is neither a number nor an id.
	ErrInvalidTaskRef = errors.New("invalid task reference")

	// ErrAmbiguousTaskRef indicates an id prefix matching several tasks.
	ErrAmbiguousTaskRef = errors.New("ambiguous task reference")
)

// ParseTaskRef parses a single task reference.
//
// Parsing rules:
// 1. All digits → position (e.g., 3)
// 2. At least four hex digits or dashes → id or id prefix (e.g., 1f0c)
// 3. Otherwise → error: invalid task reference: <ref>
//
// An id prefix made only of digits reads as a position; a longer prefix
// that includes a letter disambiguates it.
func ParseTaskRef(arg string) (TaskRef, error) {
	token := strings.TrimSpace(arg)
	if token == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	if isAllDigits(token) {
		num, err := strconv.Atoi(token)
		if err != nil {
			return TaskRef{}, fmt.Errorf("%w: %s", ErrInvalidTaskRef, token)
		}
		return TaskRef{Position: num}, nil
	}

	if len(token) >= minIDPrefix && isIDLike(token) {
		return TaskRef{ID: strings.ToLower(token)}, nil
	}

	return TaskRef{}, fmt.Errorf("%w: %s", ErrInvalidTaskRef, token)
}

// ParseTaskRefs parses each argument as a task reference.
func ParseTaskRefs(args []string) ([]TaskRef, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	refs := make([]TaskRef, 0, len(args))
	for _, arg := range args {
		ref, err := ParseTaskRef(arg)
		if err != nil {
			if errors.Is(err, ErrTaskRefRequired) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidTaskRef, arg)
			}
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isIDLike returns true if s looks like a UUID or a UUID prefix.
func isIDLike(s string) bool {
	for _, r := range s {
		if r != '-' && !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return false
		}
	}
	return true
}
