package store

import (
	"strings"
	"sync"

	"task-api/internal/ids"
	"task-api/internal/model"
)

// TaskStore keeps tasks in insertion order. All access is guarded by mu.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []model.Task
	newID func() string
}

func NewTaskStore() *TaskStore {
	return &TaskStore{newID: ids.NewID}
}

func (s *TaskStore) Create(title string, completed bool) model.Task {
	t := model.Task{
		ID:        s.newID(),
		Title:     title,
		Completed: completed,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	return t
}

// List returns a copy of the tasks whose title contains filter, ignoring case.
// An empty filter matches every task.
func (s *TaskStore) List(filter string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter)
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *TaskStore) Get(id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, model.ErrNotFound
	}
	return s.tasks[i], nil
}

func (s *TaskStore) Update(id string, title string, completed bool) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, model.ErrNotFound
	}
	s.tasks[i].Title = title
	s.tasks[i].Completed = completed
	return s.tasks[i], nil
}

func (s *TaskStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *TaskStore) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := model.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

// indexOf must be called with mu held.
func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
