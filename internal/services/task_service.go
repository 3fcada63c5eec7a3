package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"annotation-registry.com/annotation-registry/internal/constants"
	dto "annotation-registry.com/annotation-registry/internal/data_models"
	apperrors "annotation-registry.com/annotation-registry/internal/errors"
	model "annotation-registry.com/annotation-registry/internal/models"
	repository "annotation-registry.com/annotation-registry/internal/repositories"
)

type TaskService struct {
	repo        *repository.TaskRepository
	allocator   *IDAllocator
	dispatch    *DispatchService
	maxAttempts int
	now         func() time.Time
}

func NewTaskService(
	repo *repository.TaskRepository,
	allocator *IDAllocator,
	dispatch *DispatchService,
) *TaskService {
	return &TaskService{
		repo:        repo,
		allocator:   allocator,
		dispatch:    dispatch,
		maxAttempts: allocator.maxAttempts,
		now:         time.Now,
	}
}

// CreateTask validates req, stores a new pending task under a fresh id and
// announces it to workers. Id collisions on insert, including those caused
// by a concurrent creator drawing the same id, are retried up to the
// allocator's attempt bound.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateAnnotationRequest) (task *model.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskService.CreateTask")
	defer func() { endSpan(span, err) }()

	input, err := req.Input()
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		task, err = s.createTaskRecord(ctx, input)
		if err == nil {
			span.SetAttributes(attribute.Int64("task.id", int64(task.ID)))
			s.dispatch.Announce(ctx, task)
			log.Ctx(ctx).Info().
				Uint32("task_id", task.ID).
				Str("urgency", string(task.Urgency)).
				Int("objects", len(task.ObjectsToAnnotate)).
				Msg("annotation task created")
			return task, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}

		log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).Msg("task id collided on insert, retrying")
	}

	return nil, apperrors.Wrapf(apperrors.ErrIDSpaceExhausted, "%d inserts collided", s.maxAttempts)
}

func (s *TaskService) createTaskRecord(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	id, err := s.allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	task := model.NewTask(id, input, s.now())
	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint32) (task *model.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskService.GetTask")
	span.SetAttributes(attribute.Int64("task.id", int64(id)))
	defer func() { endSpan(span, err) }()

	return s.repo.FindByID(ctx, id)
}

// ListPending returns every pending task, oldest first.
func (s *TaskService) ListPending(ctx context.Context) (tasks []model.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskService.ListPending")
	defer func() { endSpan(span, err) }()

	return s.repo.ListByStatus(ctx, constants.StatusPending, 0)
}

// SubmitResponse records a worker's result and moves the task out of
// pending. Only pending tasks accept a submission, and only boxes for
// requested objects are accepted.
func (s *TaskService) SubmitResponse(ctx context.Context, id uint32, req *dto.SubmitResponseRequest) (task *model.Task, err error) {
	ctx, span := tracer.Start(ctx, "TaskService.SubmitResponse")
	span.SetAttributes(
		attribute.Int64("task.id", int64(id)),
		attribute.String("task.status", string(req.Status)),
	)
	defer func() { endSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	task, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.ApplySubmission(req.Status, req.Response, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Transition(ctx, task, constants.StatusPending); err != nil {
		return nil, err
	}

	s.dispatch.Withdraw(ctx, id)

	log.Ctx(ctx).Info().
		Uint32("task_id", id).
		Str("status", string(task.Status)).
		Msg("annotation task finished")

	return task, nil
}
