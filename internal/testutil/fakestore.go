// Package testutil provides testing utilities.
package testutil

import (
	"time"

	"mintodo/internal/backend/memory"
	"mintodo/internal/service"
)

// FixedNow is the reference time used by fixtures.
var FixedNow = time.Date(2025, 9, 20, 9, 0, 0, 0, time.UTC)

// FakeStore wraps an in-memory store and lets tests inject errors and
// count calls.
type FakeStore struct {
	*memory.Store

	// Error injection for testing
	CreateErr   error
	UpdateErr   error
	DeleteErr   error
	DeleteAtErr error

	// Call counts
	Creates   int
	Updates   int
	Deletes   int
	DeleteAts int
}

// NewFakeStore creates a FakeStore holding tasks in order.
func NewFakeStore(tasks ...service.Task) *FakeStore {
	return &FakeStore{Store: memory.New(memory.WithTasks(tasks...))}
}

// Task builds a fixture task due days after FixedNow.
func Task(id, title string, status service.Status, days int) service.Task {
	return service.Task{
		ID:     id,
		Title:  title,
		Due:    FixedNow.AddDate(0, 0, days),
		Status: status,
	}
}

// Create implements service.Store.
func (f *FakeStore) Create(task service.Task) error {
	f.Creates++
	if f.CreateErr != nil {
		return f.CreateErr
	}
	return f.Store.Create(task)
}

// Update implements service.Store.
func (f *FakeStore) Update(id string, mutate func(*service.Task)) error {
	f.Updates++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	return f.Store.Update(id, mutate)
}

// Delete implements service.Store.
func (f *FakeStore) Delete(id string) error {
	f.Deletes++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	return f.Store.Delete(id)
}

// DeleteAt implements service.Store.
func (f *FakeStore) DeleteAt(positions ...int) error {
	f.DeleteAts++
	if f.DeleteAtErr != nil {
		return f.DeleteAtErr
	}
	return f.Store.DeleteAt(positions...)
}

// Titles returns the titles in list order.
func (f *FakeStore) Titles() []string {
	tasks := f.List()
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}
