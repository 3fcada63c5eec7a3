package errors

import "net/http"

// ErrSerializationFailure marks a stored document that cannot be decoded.
var ErrSerializationFailure = &Exception{
	Message:    "stored document cannot be decoded",
	StatusCode: http.StatusInternalServerError,
}
