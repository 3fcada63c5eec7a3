package model

import (
	"time"

	"annotation-registry.com/annotation-registry/internal/constants"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

type Task struct {
	ID                uint32               `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt         int64                `gorm:"not null;autoCreateTime:false;index:idx_tasks_status_created_at,priority:2" json:"created_at"`
	CompletedAt       int64                `gorm:"not null" json:"completed_at"`
	Instruction       string               `gorm:"type:text;not null" json:"instruction"`
	Status            constants.TaskStatus `gorm:"type:varchar(16);not null;index:idx_tasks_status_created_at,priority:1" json:"status"`
	Urgency           constants.Urgency    `gorm:"type:varchar(16);not null" json:"urgency"`
	TaskType          constants.TaskType   `gorm:"type:varchar(32);not null" json:"task_type"`
	Attachment        string               `gorm:"type:text;not null" json:"attachment"`
	ObjectsToAnnotate ObjectList           `gorm:"not null" json:"objects_to_annotate"`
	WithLabels        bool                 `gorm:"not null" json:"with_labels"`
	Response          Response             `gorm:"not null" json:"response"`
	Params            Params               `gorm:"not null" json:"params"`
	Version           uint                 `gorm:"not null;default:1" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskInput is the validated content of a creation request.
type TaskInput struct {
	Instruction       string
	Urgency           constants.Urgency
	Attachment        string
	AttachmentType    string
	ObjectsToAnnotate []string
	WithLabels        bool
}

// NewTask builds the initial pending record for id.
func NewTask(id uint32, input TaskInput, now time.Time) *Task {
	urgency := input.Urgency
	if urgency == "" {
		urgency = constants.DefaultUrgency
	}

	attachmentType := input.AttachmentType
	if attachmentType == "" {
		attachmentType = constants.DefaultAttachmentType
	}

	objects := make(ObjectList, len(input.ObjectsToAnnotate))
	copy(objects, input.ObjectsToAnnotate)

	return &Task{
		ID:                id,
		CreatedAt:         now.Unix(),
		CompletedAt:       0,
		Instruction:       input.Instruction,
		Status:            constants.StatusPending,
		Urgency:           urgency,
		TaskType:          constants.TaskTypeAnnotation,
		Attachment:        input.Attachment,
		ObjectsToAnnotate: objects,
		WithLabels:        input.WithLabels,
		Response:          EmptyResponse(objects),
		Params:            Params{AttachmentType: attachmentType},
		Version:           1,
	}
}

// ApplySubmission moves a pending task into a terminal state with the
// worker's boxes. The task is left untouched when an error is returned.
func (t *Task) ApplySubmission(status constants.TaskStatus, boxes Response, now time.Time) error {
	if !t.Status.CanTransitionTo(status) {
		if t.Status.Terminal() {
			return apperrors.Wrapf(apperrors.ErrInvalidTransition, "task %d is already %s", t.ID, t.Status)
		}
		return apperrors.Wrapf(apperrors.ErrInvalidTransition, "cannot move task %d from %s to %q", t.ID, t.Status, status)
	}

	for object, box := range boxes {
		if _, ok := t.Response[object]; !ok {
			return apperrors.Wrapf(apperrors.ErrInvalidResponse, "object %q was not requested", object)
		}
		if !box.Valid() {
			return apperrors.Wrapf(apperrors.ErrInvalidResponse, "bounding box for %q is malformed", object)
		}
	}

	merged := make(Response, len(t.Response))
	for object, box := range t.Response {
		merged[object] = box
	}
	for object, box := range boxes {
		merged[object] = box
	}

	t.Response = merged
	t.Status = status
	if status == constants.StatusCompleted {
		t.CompletedAt = now.Unix()
	}
	return nil
}
