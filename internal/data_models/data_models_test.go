package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotation-registry.com/annotation-registry/internal/constants"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

func validRequest() CreateAnnotationRequest {
	return CreateAnnotationRequest{
		Instruction:       "find cats",
		Attachment:        "img.png",
		ObjectsToAnnotate: []string{"cat1", "cat2"},
		WithLabels:        true,
	}
}

func TestCreateAnnotationRequest_Input(t *testing.T) {
	req := validRequest()

	input, err := req.Input()

	require.NoError(t, err)
	assert.Equal(t, "find cats", input.Instruction)
	assert.Equal(t, constants.UrgencyWeek, input.Urgency)
	assert.Equal(t, []string{"cat1", "cat2"}, input.ObjectsToAnnotate)
	assert.True(t, input.WithLabels)
}

func TestCreateAnnotationRequest_InputRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateAnnotationRequest)
	}{
		{name: "blank instruction", mutate: func(r *CreateAnnotationRequest) { r.Instruction = "  " }},
		{name: "missing attachment", mutate: func(r *CreateAnnotationRequest) { r.Attachment = "" }},
		{name: "no objects", mutate: func(r *CreateAnnotationRequest) { r.ObjectsToAnnotate = nil }},
		{name: "empty object name", mutate: func(r *CreateAnnotationRequest) { r.ObjectsToAnnotate = []string{"cat", ""} }},
		{name: "duplicate object", mutate: func(r *CreateAnnotationRequest) { r.ObjectsToAnnotate = []string{"cat", "cat"} }},
		{name: "unknown urgency", mutate: func(r *CreateAnnotationRequest) { r.Urgency = "someday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := req.Input()

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))
		})
	}
}

func TestSubmitResponseRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SubmitResponseRequest{Status: constants.StatusCompleted}).Validate())
	assert.NoError(t, (&SubmitResponseRequest{Status: constants.StatusBroken}).Validate())

	err := (&SubmitResponseRequest{Status: constants.StatusPending}).Validate()
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}
