// Package task defines the items the list manages and their persistence.
package task

import (
	"time"

	"github.com/hay-kot/draglist/pkg/randid"
)

// Task is one reorderable row in the list.
type Task struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Done      bool      `yaml:"done"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Key returns the stable unique id used for reorder tracking.
func (t Task) Key() string { return t.ID }

// New creates a task with a fresh id.
func New(title string) Task {
	return Task{
		ID:        randid.Generate(8),
		Title:     title,
		CreatedAt: time.Now(),
	}
}
