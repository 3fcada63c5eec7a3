package errors

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrStorageFailure, io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, ErrStorageFailure))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "storage failure: unexpected EOF", err.Error())
	assert.Same(t, ErrConflict, Wrap(ErrConflict, nil))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: ErrTaskNotFound, want: http.StatusNotFound},
		{name: "wrapped transition", err: Wrapf(ErrInvalidTransition, "task %d is %s", 7, "completed"), want: http.StatusConflict},
		{name: "exhausted", err: ErrIDSpaceExhausted, want: http.StatusServiceUnavailable},
		{name: "unknown", err: io.EOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
