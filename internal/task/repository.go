package task

import "task-api/internal/model"

type TaskRepository interface {
	Create(title string, completed bool) model.Task
	List(filter string) []model.Task
	Get(id string) (model.Task, error)
	Update(id string, title string, completed bool) (model.Task, error)
	Delete(id string) error
	Stats() model.Stats
}
