package memory

import (
	"time"

	"mintodo/internal/service"
)

const day = 24 * time.Hour

// Samples returns the three tasks a new session starts with, with due dates
// relative to now. Each call assigns fresh ids.
func Samples(now time.Time) []service.Task {
	drafts := []service.Draft{
		{
			Title:       "Write README for the to-do app",
			Description: "Write introduction and summary",
			Due:         now.Add(2 * day),
			Status:      service.InProgress,
		},
		{
			Title:       "Push to GitHub",
			Description: "Create a repository",
			Due:         now.Add(5 * day),
			Status:      service.NotStarted,
		},
		{
			Title:       "Hand in to-do assignment",
			Description: "Write a short log",
			Due:         now.Add(-day),
			Status:      service.Completed,
		},
	}

	tasks := make([]service.Task, 0, len(drafts))
	for _, d := range drafts {
		t, err := d.Task(now)
		if err != nil {
			panic(err) // titles above are non-empty
		}
		tasks = append(tasks, t)
	}
	return tasks
}
