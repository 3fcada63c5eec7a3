package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	model "annotation-registry.com/annotation-registry/internal/models"
)

const testQueueKey = "annotation:pending"

func setupRedisQueue(t *testing.T) (*RedisTaskQueue, *mock.Client) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	return NewRedisTaskQueue(client, testQueueKey), client
}

func TestRedisTaskQueue_Announce(t *testing.T) {
	q, client := setupRedisQueue(t)
	ctx := context.Background()

	client.EXPECT().
		Do(ctx, mock.Match("ZADD", testQueueKey, "NX", "1700000000", "42")).
		Return(mock.Result(mock.RedisInt64(1)))

	require.NoError(t, q.Announce(ctx, &model.Task{ID: 42, CreatedAt: 1700000000}))
}

func TestRedisTaskQueue_Withdraw(t *testing.T) {
	q, client := setupRedisQueue(t)
	ctx := context.Background()

	client.EXPECT().
		Do(ctx, mock.Match("ZREM", testQueueKey, "4294967295")).
		Return(mock.Result(mock.RedisInt64(1)))

	require.NoError(t, q.Withdraw(ctx, 4294967295))
}

func TestRedisTaskQueue_PassesErrorsThrough(t *testing.T) {
	q, client := setupRedisQueue(t)
	ctx := context.Background()
	connErr := errors.New("connection refused")

	client.EXPECT().
		Do(ctx, mock.Match("ZADD", testQueueKey, "NX", "1700000000", "7")).
		Return(mock.ErrorResult(connErr))
	client.EXPECT().
		Do(ctx, mock.Match("ZREM", testQueueKey, "7")).
		Return(mock.ErrorResult(connErr))

	err := q.Announce(ctx, &model.Task{ID: 7, CreatedAt: 1700000000})
	assert.ErrorIs(t, err, connErr)

	err = q.Withdraw(ctx, 7)
	assert.ErrorIs(t, err, connErr)
}
