package validators

import (
	"strconv"
	"strings"

	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

// ParseTaskID parses a path segment into a task id.
func ParseTaskID(raw string) (uint32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidTaskID, "task id is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidTaskID, "%q", raw)
	}
	return uint32(id), nil
}
