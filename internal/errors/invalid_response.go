package errors

import "net/http"

// ErrInvalidResponse is returned when a submission names objects the task
// never asked for.
var ErrInvalidResponse = &Exception{
	Message:    "response does not match objects to annotate",
	StatusCode: http.StatusUnprocessableEntity,
}
