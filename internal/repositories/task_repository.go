package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"annotation-registry.com/annotation-registry/internal/constants"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
	model "annotation-registry.com/annotation-registry/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Migrate creates or updates the tasks table.
func (r *TaskRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.Task{}); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return nil
}

// Insert stores a new task. A taken id yields ErrConflict.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Create(task).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return apperrors.Wrapf(apperrors.ErrConflict, "task id %d", task.ID)
	}
	return storageError(err)
}

func (r *TaskRepository) Exists(ctx context.Context, id uint32) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, storageError(err)
	}
	return count > 0, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint32) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrTaskNotFound, "task %d", id)
		}
		return nil, storageError(err)
	}
	return &task, nil
}

// ListByStatus returns tasks in the given status, oldest first. A limit <= 0
// returns every match.
func (r *TaskRepository) ListByStatus(ctx context.Context, status constants.TaskStatus, limit int) ([]model.Task, error) {
	return r.ListByStatusAfter(ctx, status, nil, limit)
}

// Cursor marks a position in the (created_at, id) listing order.
type Cursor struct {
	CreatedAt int64
	ID        uint32
}

// ListByStatusAfter returns up to limit tasks in the given status that sort
// after cursor, oldest first. A nil cursor starts from the beginning.
func (r *TaskRepository) ListByStatusAfter(ctx context.Context, status constants.TaskStatus, after *Cursor, limit int) ([]model.Task, error) {
	tasks := []model.Task{}
	query := r.db.WithContext(ctx).Where("status = ?", status)
	if after != nil {
		query = query.Where("(created_at > ? OR (created_at = ? AND id > ?))", after.CreatedAt, after.CreatedAt, after.ID)
	}
	query = query.Order("created_at asc").Order("id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, storageError(err)
	}

	return tasks, nil
}

// Transition persists a status change made on task, provided the stored row
// is still in status from at the same version. On success task.Version is
// advanced.
func (r *TaskRepository) Transition(ctx context.Context, task *model.Task, from constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ? AND version = ?", task.ID, from, task.Version).
		Updates(map[string]interface{}{
			"status":       task.Status,
			"completed_at": task.CompletedAt,
			"response":     task.Response,
			"version":      gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return storageError(res.Error)
	}

	if res.RowsAffected == 0 {
		current, err := r.FindByID(ctx, task.ID)
		if err != nil {
			return err
		}
		if current.Status != from {
			return apperrors.Wrapf(apperrors.ErrInvalidTransition, "task %d is already %s", task.ID, current.Status)
		}
		return apperrors.Wrapf(apperrors.ErrConflict, "task %d was modified concurrently", task.ID)
	}

	task.Version++
	return nil
}

func storageError(err error) error {
	if errors.Is(err, apperrors.ErrSerializationFailure) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStorageFailure, err)
}

// isUniqueViolation covers dialects that do not translate their constraint
// errors into gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
