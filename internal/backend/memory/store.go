// Package memory implements service.Store as an ordered in-memory list.
package memory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"mintodo/internal/service"
)

// Store implements service.Store. It is not safe for concurrent use; the
// owning session serializes all calls.
type Store struct {
	tasks []service.Task
	used  map[string]struct{} // every id ever created, so ids are never reused
	log   *zap.Logger
}

var _ service.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTasks preloads tasks in order. Tasks with a repeated id are skipped.
func WithTasks(tasks ...service.Task) Option {
	return func(s *Store) {
		for _, t := range tasks {
			if _, ok := s.used[t.ID]; ok {
				continue
			}
			s.used[t.ID] = struct{}{}
			s.tasks = append(s.tasks, t)
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		used: make(map[string]struct{}),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLogger replaces the logger used for mutation events. A nil logger
// disables them.
func (s *Store) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// List implements service.Store.
func (s *Store) List() []service.Task {
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Get implements service.Store.
func (s *Store) Get(id string) (service.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// Len implements service.Store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Create implements service.Store.
func (s *Store) Create(task service.Task) error {
	if _, ok := s.used[task.ID]; ok {
		return fmt.Errorf("%w: %s", service.ErrDuplicateID, task.ID)
	}
	s.used[task.ID] = struct{}{}
	s.tasks = append(s.tasks, task)

	s.log.Debug("task created",
		zap.String("id", task.ID),
		zap.String("title", task.Title),
		zap.Stringer("status", task.Status),
		zap.Int("len", len(s.tasks)))
	return nil
}

// Update implements service.Store. The mutator works on a copy; the result is
// written back at the same position with the original id.
func (s *Store) Update(id string, mutate func(*service.Task)) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}

	updated := s.tasks[i]
	mutate(&updated)
	updated.ID = id
	s.tasks[i] = updated

	s.log.Debug("task updated",
		zap.String("id", id),
		zap.Int("position", i),
		zap.Stringer("status", updated.Status))
	return nil
}

// Delete implements service.Store.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.log.Debug("task deleted", zap.String("id", id), zap.Int("position", i))
	return nil
}

// DeleteAt implements service.Store. All positions are checked before any
// task is removed.
func (s *Store) DeleteAt(positions ...int) error {
	if len(positions) == 0 {
		return nil
	}

	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(s.tasks) {
			return fmt.Errorf("%w: %d (len %d)", service.ErrIndexOutOfRange, p, len(s.tasks))
		}
		drop[p] = struct{}{}
	}

	kept := s.tasks[:0:0]
	for i, t := range s.tasks {
		if _, ok := drop[i]; !ok {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	s.log.Debug("tasks deleted by position",
		zap.Ints("positions", sortedKeys(drop)),
		zap.Int("len", len(s.tasks)))
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
