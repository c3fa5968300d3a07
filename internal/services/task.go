package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=task.go -destination=mock_task_test.go -package=services

// TaskRepository is the ownership-scoped task store. Every method takes the
// caller's id; a task owned by someone else reports models.ErrNotFound.
type TaskRepository interface {
	List(ctx context.Context, ownerID int64) ([]models.Task, error)
	Create(ctx context.Context, ownerID int64, input models.TaskInput) (*models.Task, error)
	Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, patch models.TaskPatch) (*models.Task, error)
	Toggle(ctx context.Context, ownerID, taskID int64) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TaskService applies task rules on top of the ownership-scoped repository
// and publishes task events.
type TaskService struct {
	repo        TaskRepository
	kafkaWriter KafkaWriter
}

// NewTaskService creates a new TaskService. kafkaWriter may be nil.
func NewTaskService(repo TaskRepository, kafkaWriter KafkaWriter) *TaskService {
	return &TaskService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "userID", ownerID, "error", err)
		return nil, err
	}
	return tasks, nil
}

// Create validates req and stores a new task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (*models.Task, error) {
	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}
	description, err := normalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.Create(ctx, ownerID, models.TaskInput{Title: title, Description: description})
	if err != nil {
		logger.Log.Errorw("failed to create task", "userID", ownerID, "error", err)
		return nil, err
	}

	s.publishTaskEvent(ctx, models.TaskCreated, task.ID, ownerID, task.Completed)
	return task, nil
}

// Get returns one of the owner's tasks.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	task, err := s.repo.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, s.translate(err, "get", ownerID, taskID)
	}
	return task, nil
}

// Update applies req to one of the owner's tasks. Omitted fields are kept;
// updated_at is refreshed even when nothing else changes.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req models.UpdateTaskRequest) (*models.Task, error) {
	var patch models.TaskPatch

	if req.Title != nil {
		title, err := normalizeTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if req.Description != nil {
		description, err := normalizeDescription(req.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = description
		patch.ClearDescription = description == nil
	}
	patch.Completed = req.Completed

	task, err := s.repo.Update(ctx, ownerID, taskID, patch)
	if err != nil {
		return nil, s.translate(err, "update", ownerID, taskID)
	}

	s.publishTaskEvent(ctx, models.TaskUpdated, task.ID, ownerID, task.Completed)
	return task, nil
}

// Toggle flips the completion flag of one of the owner's tasks.
func (s *TaskService) Toggle(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	task, err := s.repo.Toggle(ctx, ownerID, taskID)
	if err != nil {
		return nil, s.translate(err, "toggle", ownerID, taskID)
	}

	s.publishTaskEvent(ctx, models.TaskToggled, task.ID, ownerID, task.Completed)
	return task, nil
}

// Delete removes one of the owner's tasks.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if err := s.repo.Delete(ctx, ownerID, taskID); err != nil {
		return s.translate(err, "delete", ownerID, taskID)
	}

	s.publishTaskEvent(ctx, models.TaskDeleted, taskID, ownerID, false)
	return nil
}

// translate maps repository errors to service errors. Missing and foreign
// tasks both become ErrTaskNotFound.
func (s *TaskService) translate(err error, op string, ownerID, taskID int64) error {
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Infow("task not found", "op", op, "userID", ownerID, "taskID", taskID)
		return ErrTaskNotFound
	}
	logger.Log.Errorw("task operation failed", "op", op, "userID", ownerID, "taskID", taskID, "error", err)
	return err
}

// publishTaskEvent publishes a task event to Kafka.
func (s *TaskService) publishTaskEvent(ctx context.Context, eventType string, taskID, ownerID int64, completed bool) {
	event := models.TaskEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		TaskID:    taskID,
		UserID:    ownerID,
		Completed: completed,
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal task event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ownerID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish task event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Task event published to Kafka", "event_id", event.EventID, "type", eventType, "task_id", taskID)
	}
}
