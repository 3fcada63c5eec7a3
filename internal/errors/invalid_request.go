package errors

import "net/http"

var ErrInvalidRequest = &Exception{
	Message:    "invalid request",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
