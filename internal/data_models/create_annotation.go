package dto

import (
	"strings"

	"annotation-registry.com/annotation-registry/internal/constants"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
	model "annotation-registry.com/annotation-registry/internal/models"
)

type CreateAnnotationRequest struct {
	Instruction       string   `json:"instruction"`
	Urgency           string   `json:"urgency,omitempty"`
	Attachment        string   `json:"attachment"`
	AttachmentType    string   `json:"attachment_type,omitempty"`
	ObjectsToAnnotate []string `json:"objects_to_annotate"`
	WithLabels        bool     `json:"with_labels"`
}

// Input validates the request and returns the task content it describes.
func (r *CreateAnnotationRequest) Input() (model.TaskInput, error) {
	if strings.TrimSpace(r.Instruction) == "" {
		return model.TaskInput{}, apperrors.Wrapf(apperrors.ErrInvalidRequest, "instruction is required")
	}
	if strings.TrimSpace(r.Attachment) == "" {
		return model.TaskInput{}, apperrors.Wrapf(apperrors.ErrInvalidRequest, "attachment is required")
	}
	if len(r.ObjectsToAnnotate) == 0 {
		return model.TaskInput{}, apperrors.Wrapf(apperrors.ErrInvalidRequest, "objects_to_annotate must not be empty")
	}

	seen := make(map[string]struct{}, len(r.ObjectsToAnnotate))
	for _, o := range r.ObjectsToAnnotate {
		if strings.TrimSpace(o) == "" {
			return model.TaskInput{}, apperrors.Wrapf(apperrors.ErrInvalidRequest, "objects_to_annotate must not contain empty names")
		}
		if _, dup := seen[o]; dup {
			return model.TaskInput{}, apperrors.Wrapf(apperrors.ErrInvalidRequest, "object %q is listed twice", o)
		}
		seen[o] = struct{}{}
	}

	urgency, err := constants.ParseUrgency(r.Urgency)
	if err != nil {
		return model.TaskInput{}, apperrors.Wrap(apperrors.ErrInvalidRequest, err)
	}

	return model.TaskInput{
		Instruction:       r.Instruction,
		Urgency:           urgency,
		Attachment:        r.Attachment,
		AttachmentType:    r.AttachmentType,
		ObjectsToAnnotate: r.ObjectsToAnnotate,
		WithLabels:        r.WithLabels,
	}, nil
}
