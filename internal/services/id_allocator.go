package services

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog/log"

	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

const DefaultIDMaxAttempts = 10

type idLookup interface {
	Exists(ctx context.Context, id uint32) (bool, error)
}

// IDAllocator draws random 32-bit task ids that are not yet in the store.
// The check is advisory: the store's primary key remains the final arbiter,
// so callers must still handle a conflict on insert.
type IDAllocator struct {
	lookup      idLookup
	draw        func() uint32
	maxAttempts int
}

func NewIDAllocator(lookup idLookup, maxAttempts int) *IDAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultIDMaxAttempts
	}

	return &IDAllocator{
		lookup:      lookup,
		draw:        rand.Uint32,
		maxAttempts: maxAttempts,
	}
}

// Allocate returns an unused id, or ErrIDSpaceExhausted once maxAttempts
// draws have all been taken. Zero is never handed out.
func (a *IDAllocator) Allocate(ctx context.Context) (uint32, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		id := a.draw()
		if id == 0 {
			continue
		}

		taken, err := a.lookup.Exists(ctx, id)
		if err != nil {
			return 0, err
		}
		if !taken {
			return id, nil
		}

		log.Ctx(ctx).Debug().
			Uint32("task_id", id).
			Int("attempt", attempt).
			Msg("drawn task id already taken")
	}

	return 0, apperrors.Wrapf(apperrors.ErrIDSpaceExhausted, "%d draws were all taken", a.maxAttempts)
}
