package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Wrap attaches cause to e so that both errors.Is(err, e) and
// errors.Is(err, cause) hold.
func Wrap(e *Exception, cause error) error {
	if cause == nil {
		return e
	}
	return fmt.Errorf("%w: %w", e, cause)
}

// Wrapf attaches a formatted detail message to e.
func Wrapf(e *Exception, format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
