package service

import (
	"context"

	"taskman/internal/core/domain"
	"taskman/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	// An empty partial payload is a no-op: return the stored row unchanged.
	if input.Empty() {
		return s.taskRepository.Get(ctx, id)
	}
	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.taskRepository.Delete(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
