package errors

import "net/http"

// ErrConflict is returned by the store when a task id is already taken.
var ErrConflict = &Exception{
	Message:    "task id already exists",
	StatusCode: http.StatusConflict,
}
