package iot

import (
	"context"
	"time"
)

type Repository interface {
	AddReading(ctx context.Context, r SensorReading) error
	// ListReadings devuelve lecturas desde `since`, ordenadas por timestamp asc.
	ListReadings(ctx context.Context, animalID string, since time.Time) ([]SensorReading, error)

	AddAlert(ctx context.Context, a Alert) error
	// ListAlerts devuelve alertas ordenadas por timestamp desc.
	ListAlerts(ctx context.Context, animalID string) ([]Alert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
}
