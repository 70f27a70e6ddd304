package notify

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"neuroview/domain"
	"neuroview/domain/event"
)

func TestHub_FanOutReachesEverySink(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))

	var first, second []string
	hub.Register(
		SinkFunc(func(_ context.Context, e event.DomainEvent) error {
			first = append(first, e.Name())
			return nil
		}),
		SinkFunc(func(_ context.Context, e event.DomainEvent) error {
			second = append(second, e.Name())
			return nil
		}),
	)

	hub.Publish(context.Background(), event.PredictionReceived{
		SessionID: "s1",
		Response:  &domain.PredictionResponse{Status: domain.StatusSuccess},
		At:        time.Now(),
	})

	// Delivery is synchronous: both sinks have consumed before Publish returned.
	req.Equal([]string{"prediction_received"}, first)
	req.Equal([]string{"prediction_received"}, second)
}

func TestHub_FailingSinkDoesNotStopFanOut(t *testing.T) {
	req := require.New(t)
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))

	var delivered int
	hub.Register(
		SinkFunc(func(context.Context, event.DomainEvent) error {
			return fmt.Errorf("sink exploded")
		}),
		SinkFunc(func(context.Context, event.DomainEvent) error {
			delivered++
			return nil
		}),
	)

	hub.Publish(context.Background(), event.ImageUploaded{SessionID: "s1", Filename: "a.png"})
	req.Equal(1, delivered)
}

func TestHub_PublishWithoutSinks(t *testing.T) {
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	hub.Publish(context.Background(), event.ImageUploaded{SessionID: "s1"})
}
