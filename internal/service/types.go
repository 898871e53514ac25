// Package service defines the task model and the store contract.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the progress tag of a task. Any status may follow any other.
type Status int

const (
	// NotStarted is the zero value.
	NotStarted Status = iota
	InProgress
	Completed
)

// Statuses lists every status in display order.
var Statuses = []Status{NotStarted, InProgress, Completed}

// String returns the display label.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Icon returns the icon id used when rendering the status.
func (s Status) Icon() string {
	switch s {
	case InProgress:
		return "hourglass"
	case Completed:
		return "checkmark.circle.fill"
	default:
		return "clock"
	}
}

// Color returns the color id used when rendering the status.
func (s Status) Color() string {
	switch s {
	case InProgress:
		return "blue"
	case Completed:
		return "green"
	default:
		return "orange"
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s >= NotStarted && s <= Completed
}

// ParseStatus parses a status name. Matching is case-insensitive and ignores
// spaces, dashes and underscores, so "In Progress", "in-progress" and
// "InProgress" are equivalent. The short forms todo, doing and done are
// accepted too.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)

	switch key {
	case "notstarted", "todo", "open":
		return NotStarted, nil
	case "inprogress", "doing", "started":
		return InProgress, nil
	case "completed", "done", "complete":
		return Completed, nil
	}
	return NotStarted, fmt.Errorf("%w: %s", ErrInvalidStatus, strings.TrimSpace(s))
}

// Task represents a single task item.
type Task struct {
	ID          string
	Title       string
	Description string
	Due         time.Time
	Status      Status
}

// Draft holds the fields of a task that has not been created yet.
type Draft struct {
	Title       string
	Description string
	Due         time.Time // zero means "at creation"
	Status      Status
}

// Task validates the draft and builds a task with a fresh id.
// The title is trimmed and must not be empty.
func (d Draft) Task(now time.Time) (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	if !d.Status.Valid() {
		return Task{}, fmt.Errorf("%w: %s", ErrInvalidStatus, d.Status)
	}

	due := d.Due
	if due.IsZero() {
		due = now
	}

	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: d.Description,
		Due:         due,
		Status:      d.Status,
	}, nil
}
