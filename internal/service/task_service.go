package service

import (
	"time"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type TaskService struct {
	TaskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{TaskRepo: taskRepo}
}

func (s *TaskService) GetTasks(userID uint) ([]model.Task, error) {
	return s.TaskRepo.FindByUser(userID)
}

type CreateTaskRequest struct {
	Title         string     `json:"title" binding:"required"`
	TopicID       *uint      `json:"topicId"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	DueDate       *time.Time `json:"dueDate"`
	Importance    *int       `json:"importance" binding:"omitempty,oneof=1 2 3"`
}

func (s *TaskService) CreateTask(userID uint, req CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		UserID:        userID,
		Title:         req.Title,
		TopicID:       req.TopicID,
		ScheduledDate: req.ScheduledDate,
		DueDate:       req.DueDate,
		Importance:    1,
	}
	if req.Importance != nil {
		task.Importance = *req.Importance
	}
	if err := s.TaskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

type UpdateTaskRequest struct {
	Title         *string    `json:"title"`
	IsCompleted   *bool      `json:"isCompleted"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	DueDate       *time.Time `json:"dueDate"`
	Importance    *int       `json:"importance" binding:"omitempty,oneof=1 2 3"`
}

// UpdateTask applies only the fields present in the request. Only the task's
// owner may update it.
func (s *TaskService) UpdateTask(userID, taskID uint, req UpdateTaskRequest) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(taskID)
	if err != nil || task.UserID != userID {
		return nil, util.ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.ScheduledDate != nil {
		task.ScheduledDate = req.ScheduledDate
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Importance != nil {
		task.Importance = *req.Importance
	}
	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(userID, taskID uint) error {
	task, err := s.TaskRepo.FindByID(taskID)
	if err != nil || task.UserID != userID {
		return util.ErrTaskNotFound
	}
	return s.TaskRepo.Delete(task.ID)
}
