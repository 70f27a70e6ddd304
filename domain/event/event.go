package event

import (
	"time"

	"neuroview/domain"
)

// DomainEvent is anything the notification hub can fan out.
type DomainEvent interface {
	Name() string
}

// PredictionReceived is published once per completed upload, after the
// latest-result slot has been overwritten.
type PredictionReceived struct {
	SessionID string
	Response  *domain.PredictionResponse
	At        time.Time
}

func (PredictionReceived) Name() string { return "prediction_received" }

// ImageUploaded is published when an upload is accepted for processing,
// before the backend call completes.
type ImageUploaded struct {
	SessionID string
	Filename  string
	Size      int64
	At        time.Time
}

func (ImageUploaded) Name() string { return "image_uploaded" }
