package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"annotation-registry.com/annotation-registry/internal/constants"
	model "annotation-registry.com/annotation-registry/internal/models"
	"annotation-registry.com/annotation-registry/internal/queue"
	repository "annotation-registry.com/annotation-registry/internal/repositories"
)

// DispatchService keeps the worker queue in step with the store. Queue
// failures are logged and never fail a registry operation; the periodic
// re-announce repairs whatever was missed. Delivery is at-least-once.
type DispatchService struct {
	repo      *repository.TaskRepository
	queue     queue.TaskQueue
	interval  time.Duration
	batchSize int

	// cursor is the last task announced by the re-announce pass. Only the
	// loop goroutine touches it after Start.
	cursor *repository.Cursor

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func NewDispatchService(
	repo *repository.TaskRepository,
	q queue.TaskQueue,
	interval time.Duration,
	batchSize int,
) *DispatchService {
	return &DispatchService{
		repo:      repo,
		queue:     q,
		interval:  interval,
		batchSize: batchSize,
		stop:      make(chan struct{}),
	}
}

// Start announces the first page of pending tasks and then announces the
// next page every interval until Shutdown, wrapping around at the end.
func (d *DispatchService) Start(ctx context.Context) {
	d.reannounceOnce(ctx)

	d.wg.Add(1)
	go d.reannounceLoop(ctx)
}

func (d *DispatchService) Announce(ctx context.Context, task *model.Task) {
	if err := d.queue.Announce(ctx, task); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint32("task_id", task.ID).Msg("failed to announce task")
	}
}

func (d *DispatchService) Withdraw(ctx context.Context, id uint32) {
	if err := d.queue.Withdraw(ctx, id); err != nil {
		log.Ctx(ctx).Warn().Err(err).Uint32("task_id", id).Msg("failed to withdraw task")
	}
}

func (d *DispatchService) reannounceLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.reannounceOnce(ctx)
		case <-d.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (d *DispatchService) reannounceOnce(ctx context.Context) int {
	tasks, err := d.repo.ListByStatusAfter(ctx, constants.StatusPending, d.cursor, d.batchSize)
	if err == nil && len(tasks) == 0 && d.cursor != nil {
		d.cursor = nil
		tasks, err = d.repo.ListByStatusAfter(ctx, constants.StatusPending, nil, d.batchSize)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("dispatch: failed to list pending tasks")
		return 0
	}

	announced := 0
	for i := range tasks {
		if err := d.queue.Announce(ctx, &tasks[i]); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("dispatch: queue unavailable, will retry next tick")
			return announced
		}
		announced++
		d.cursor = &repository.Cursor{CreatedAt: tasks[i].CreatedAt, ID: tasks[i].ID}
	}

	if d.batchSize <= 0 || len(tasks) < d.batchSize {
		d.cursor = nil
	}

	log.Ctx(ctx).Debug().Int("tasks", announced).Msg("dispatch: pending tasks announced")
	return announced
}

func (d *DispatchService) Shutdown(ctx context.Context) {
	d.stopOnce.Do(func() { close(d.stop) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("dispatch loop shut down cleanly")
	case <-ctx.Done():
		log.Warn().Msg("dispatch loop shutdown timed out")
	}
}
