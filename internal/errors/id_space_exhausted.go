package errors

import "net/http"

var ErrIDSpaceExhausted = &Exception{
	Message:    "no free task id found",
	StatusCode: http.StatusServiceUnavailable,
}
