package errors

import "net/http"

var ErrInvalidTaskID = &Exception{
	Message:    "task id must be an unsigned 32-bit integer",
	StatusCode: http.StatusBadRequest,
}
