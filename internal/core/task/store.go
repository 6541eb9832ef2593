package task

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a task id does not exist in the store.
var ErrNotFound = errors.New("task not found")

// listFile is the root YAML structure stored on disk. Slice order is the
// list order.
type listFile struct {
	Tasks []Task `yaml:"tasks"`
}

// Store persists the ordered task list to a YAML file. The mutex matters
// for CLI subcommands that touch the store outside the TUI loop; within the
// TUI everything runs on the update goroutine.
type Store struct {
	path string
	mu   sync.RWMutex
}

// NewStore creates a store backed by the YAML file at path. The file is
// created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// List returns all tasks in list order.
func (s *Store) List() ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Tasks, nil
}

// SetOrder replaces the stored list with tasks, preserving their order.
// This is the commit target for completed drags.
func (s *Store) SetOrder(tasks []Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(listFile{Tasks: tasks})
}

// Add appends a task to the end of the list.
func (s *Store) Add(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	file.Tasks = append(file.Tasks, t)
	return s.save(file)
}

// Delete removes the task with the given id. Returns ErrNotFound if absent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	for i, t := range file.Tasks {
		if t.ID == id {
			file.Tasks = append(file.Tasks[:i], file.Tasks[i+1:]...)
			return s.save(file)
		}
	}
	return ErrNotFound
}

// Toggle flips the done flag of the task with the given id.
func (s *Store) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	for i, t := range file.Tasks {
		if t.ID == id {
			file.Tasks[i].Done = !t.Done
			return s.save(file)
		}
	}
	return ErrNotFound
}

// load reads the file, returning an empty list when it doesn't exist yet.
func (s *Store) load() (listFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return listFile{}, nil
		}
		return listFile{}, fmt.Errorf("read tasks file: %w", err)
	}

	var file listFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return listFile{}, fmt.Errorf("parse tasks file: %w", err)
	}
	return file, nil
}

// save writes the file atomically via a temp file in the same directory.
func (s *Store) save(file listFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal tasks file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}
