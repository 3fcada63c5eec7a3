package queue

import (
	"context"

	model "annotation-registry.com/annotation-registry/internal/models"
)

// TaskQueue announces pending tasks to annotation workers. It is a delivery
// hint only; the task store stays the source of truth.
type TaskQueue interface {
	Announce(ctx context.Context, task *model.Task) error

	Withdraw(ctx context.Context, id uint32) error
}

type NoopTaskQueue struct{}

func (NoopTaskQueue) Announce(context.Context, *model.Task) error { return nil }

func (NoopTaskQueue) Withdraw(context.Context, uint32) error { return nil }
