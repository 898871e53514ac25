package service

import "errors"

// Store errors.
var (
	// ErrDuplicateID is returned by Create when the id is already taken.
	ErrDuplicateID = errors.New("duplicate task id")

	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrIndexOutOfRange is returned by DeleteAt for a position outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Validation errors raised by collaborators before the store is called.
var (
	// ErrTitleRequired indicates an empty title after trimming.
	ErrTitleRequired = errors.New("title required")

	// ErrInvalidStatus indicates an unknown status name.
	ErrInvalidStatus = errors.New("invalid status")
)

// Store holds the ordered task collection and is its only mutation surface.
// Commands never touch a Task held by the store except through these methods.
//
// Implementations are not required to be safe for concurrent use.
type Store interface {
	// List returns the tasks in insertion order. The slice belongs to the caller.
	List() []Task

	// Get returns the task with the given id.
	Get(id string) (Task, error)

	// Len returns the number of tasks.
	Len() int

	// Create appends a task. Its id must be unused.
	Create(task Task) error

	// Update applies mutate to the task with the given id in place.
	// The id cannot be changed.
	Update(id string, mutate func(*Task)) error

	// Delete removes the task with the given id.
	Delete(id string) error

	// DeleteAt removes the tasks at the given zero-based positions, evaluated
	// against the list before any removal. Out of range positions abort the
	// whole batch.
	DeleteAt(positions ...int) error
}
