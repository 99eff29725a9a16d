package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) (domain.Task, error) {
	return s.taskRepository.DeleteTask(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
