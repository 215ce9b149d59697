package task

import "task-api/internal/model"

type Service struct {
	repo TaskRepository
}

func NewService(repo TaskRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(in Input) (model.Task, error) {
	title, completed, err := Validate(in)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(title, completed), nil
}

func (s *Service) List(titleFilter string) []model.Task {
	return s.repo.List(titleFilter)
}

func (s *Service) Get(id string) (model.Task, error) {
	return s.repo.Get(id)
}

// Update resolves the task before validating in, so an unknown id reports
// model.ErrNotFound whatever the body holds.
func (s *Service) Update(id string, in Input) (model.Task, error) {
	if _, err := s.repo.Get(id); err != nil {
		return model.Task{}, err
	}

	title, completed, err := Validate(in)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Update(id, title, completed)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) Stats() model.Stats {
	return s.repo.Stats()
}
