package queue

import (
	"context"
	"strconv"

	"github.com/redis/rueidis"

	model "annotation-registry.com/annotation-registry/internal/models"
)

// RedisTaskQueue keeps pending task ids in a sorted set scored by creation
// time, so workers can pop the oldest task with ZPOPMIN.
type RedisTaskQueue struct {
	client rueidis.Client
	key    string
}

func NewRedisTaskQueue(client rueidis.Client, queueKey string) *RedisTaskQueue {
	return &RedisTaskQueue{
		client: client,
		key:    queueKey,
	}
}

// Announce adds the task if it is not queued yet; re-announcing is a no-op.
func (r *RedisTaskQueue) Announce(ctx context.Context, task *model.Task) error {
	cmd := r.client.B().Zadd().Key(r.key).Nx().
		ScoreMember().ScoreMember(float64(task.CreatedAt), member(task.ID)).
		Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTaskQueue) Withdraw(ctx context.Context, id uint32) error {
	cmd := r.client.B().Zrem().Key(r.key).Member(member(id)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func member(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
