package commands

import (
	"fmt"
	"strings"

	"mintodo/internal/service"
)

// findTask resolves a reference against a snapshot of the list and returns
// the task with its zero-based position.
func findTask(tasks []service.Task, ref TaskRef) (service.Task, int, error) {
	if ref.IsPosition() {
		if ref.Position < 1 || ref.Position > len(tasks) {
			return service.Task{}, -1, fmt.Errorf("%w: task number %d", service.ErrIndexOutOfRange, ref.Position)
		}
		return tasks[ref.Position-1], ref.Position - 1, nil
	}

	match := -1
	for i, t := range tasks {
		id := strings.ToLower(t.ID)
		if id == ref.ID {
			return t, i, nil
		}
		if strings.HasPrefix(id, ref.ID) {
			if match >= 0 {
				return service.Task{}, -1, fmt.Errorf("%w: %s", ErrAmbiguousTaskRef, ref.ID)
			}
			match = i
		}
	}
	if match < 0 {
		return service.Task{}, -1, fmt.Errorf("%w: %s", service.ErrNotFound, ref.ID)
	}
	return tasks[match], match, nil
}

// lookupTask parses a single reference from args and resolves it.
// Extra arguments are left to the caller.
func lookupTask(store service.Store, args []string) (service.Task, error) {
	if len(args) == 0 {
		return service.Task{}, ErrTaskRefRequired
	}
	ref, err := ParseTaskRef(args[0])
	if err != nil {
		return service.Task{}, err
	}
	task, _, err := findTask(store.List(), ref)
	return task, err
}
