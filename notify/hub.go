// Package notify broadcasts domain events to in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery
// ordering between sinks, durability, or retries. Delivery is synchronous
// within the publishing call. It is intended for side effects (logging,
// indexing, metrics), not for core domain logic.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"neuroview/domain/event"
)

// Sink consumes events. A sink must not block for long; it runs on the
// publisher's goroutine.
type Sink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Hub is safe for concurrent use by multiple goroutines.
type Hub struct {
	log   *slog.Logger
	mu    sync.RWMutex
	sinks []Sink
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{log: log}
}

func (h *Hub) Register(sinks ...Sink) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, sinks...)
	return h
}

// Publish delivers the event to every registered sink before returning.
// A failing sink is logged and skipped; it never stops the fan-out.
func (h *Hub) Publish(ctx context.Context, e event.DomainEvent) {
	h.mu.RLock()
	sinks := make([]Sink, len(h.sinks))
	copy(sinks, h.sinks)
	h.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Consume(ctx, e); err != nil {
			h.log.Warn("Event sink failed", "event", e.Name(), "err", err)
		}
	}
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, e event.DomainEvent) error

func (f SinkFunc) Consume(ctx context.Context, e event.DomainEvent) error {
	return f(ctx, e)
}

// LoggingSink records every event at info level.
func LoggingSink(log *slog.Logger) Sink {
	return SinkFunc(func(_ context.Context, e event.DomainEvent) error {
		switch evt := e.(type) {
		case event.PredictionReceived:
			log.Info("Prediction received",
				"session_id", evt.SessionID,
				"status", evt.Response.Status,
				"valid_brain_image", evt.Response.IsValidBrainImage)
		case event.ImageUploaded:
			log.Info("Image uploaded",
				"session_id", evt.SessionID,
				"filename", evt.Filename,
				"size", evt.Size)
		default:
			log.Info("Event", "name", e.Name())
		}
		return nil
	})
}
