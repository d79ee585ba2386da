package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweettreats/storefront/internal/api/metrics"
)

const defaultBuffer = 64

// ErrStopped is returned for operations still queued when the worker stops.
var ErrStopped = errors.New("queue: serializer stopped")

type job struct {
	ctx  context.Context
	op   string
	fn   func()
	done chan error
}

// Serializer runs storefront operations one at a time on a single worker
// goroutine, in submission order. It is the event loop the core expects:
// no operation starts before the previous one has returned.
type Serializer struct {
	jobs    chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewSerializer creates a Serializer whose queue holds up to buffer pending
// operations. If buffer <= 0, defaultBuffer is used.
func NewSerializer(buffer int, log zerolog.Logger) *Serializer {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Serializer{
		jobs:    make(chan job, buffer),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start launches the worker. It stops when ctx is cancelled.
func (s *Serializer) Start(ctx context.Context) {
	go s.run(ctx)
}

// Do queues fn and waits for the outcome. A nil result means fn ran to
// completion. If ctx ends before fn starts, fn is skipped and ctx.Err() is
// returned; once fn has started Do waits for it, since storefront operations
// never block. A panic in fn is returned as an error.
func (s *Serializer) Do(ctx context.Context, op string, fn func()) error {
	j := job{ctx: ctx, op: op, fn: fn, done: make(chan error, 1)}

	select {
	case s.jobs <- j:
		metrics.OperationQueueDepth.Set(float64(len(s.jobs)))
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return ErrStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-s.stopped:
		// The worker may have finished j just before stopping.
		select {
		case err := <-j.done:
			return err
		default:
			return ErrStopped
		}
	}
}

func (s *Serializer) run(ctx context.Context) {
	defer close(s.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.jobs:
			metrics.OperationQueueDepth.Set(float64(len(s.jobs)))
			j.done <- s.exec(j)
		}
	}
}

func (s *Serializer) exec(j job) (err error) {
	if cerr := j.ctx.Err(); cerr != nil {
		s.log.Debug().Str("op", j.op).Err(cerr).Msg("skipping cancelled storefront operation")
		return cerr
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("op", j.op).Msg("storefront operation panicked")
			err = fmt.Errorf("storefront operation %s panicked: %v", j.op, r)
		}
	}()
	j.fn()
	return nil
}
