package dto

import (
	"annotation-registry.com/annotation-registry/internal/constants"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
	model "annotation-registry.com/annotation-registry/internal/models"
)

// SubmitResponseRequest carries a worker's result for a pending task.
type SubmitResponseRequest struct {
	Status   constants.TaskStatus `json:"status"`
	Response model.Response       `json:"response"`
}

func (r *SubmitResponseRequest) Validate() error {
	if !r.Status.Terminal() {
		return apperrors.Wrapf(apperrors.ErrInvalidTransition, "submission status must be %s or %s, got %q",
			constants.StatusCompleted, constants.StatusBroken, r.Status)
	}
	return nil
}
