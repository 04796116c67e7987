package jobs

import (
	"context"
	"log/slog"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/metrics"
)

// TransitionRecorder consumes the order change stream and counts status
// transitions in prometheus. Living on the change stream rather than in the
// HTTP handlers means every committed transition is counted exactly where it
// became durable, including ones performed inside multi-step transactions.
type TransitionRecorder struct {
	stream ports.ChangeStream
	logger *slog.Logger

	cancel func()
	done   chan struct{}
}

// NewTransitionRecorder creates a recorder over the given change stream.
func NewTransitionRecorder(stream ports.ChangeStream, logger *slog.Logger) *TransitionRecorder {
	return &TransitionRecorder{
		stream: stream,
		logger: logger.With("component", "transition_recorder"),
	}
}

// Start subscribes to the change stream and begins counting in the background.
func (r *TransitionRecorder) Start() error {
	events, cancel := r.stream.Subscribe()
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		for change := range events {
			// A freshly created order announces itself as pending; that is
			// a creation, not a transition, and has its own counter.
			if change.Status == order.Pending.String() {
				continue
			}
			metrics.OrderTransitionsTotal.WithLabelValues(change.Status).Inc()
		}
	}()

	r.logger.InfoContext(context.Background(), "Transition recorder started")
	return nil
}

// Stop cancels the subscription and waits for the consumer to drain.
func (r *TransitionRecorder) Stop() {
	if r.cancel == nil {
		return
	}

	r.cancel()
	<-r.done
	r.logger.InfoContext(context.Background(), "Transition recorder stopped")
}
