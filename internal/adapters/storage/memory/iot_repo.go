package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"livestock-records/internal/domain/iot"
)

type iotRepo struct {
	mu       sync.RWMutex
	readings map[string][]iot.SensorReading // por animalID
	alerts   map[string]iot.Alert           // por alertID
}

func NewIoTRepo() iot.Repository {
	return &iotRepo{
		readings: make(map[string][]iot.SensorReading),
		alerts:   make(map[string]iot.Alert),
	}
}

func (r *iotRepo) AddReading(ctx context.Context, reading iot.SensorReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reading.ID == "" {
		return errors.New("reading id required")
	}
	r.readings[reading.AnimalID] = append(r.readings[reading.AnimalID], reading)
	return nil
}

func (r *iotRepo) ListReadings(ctx context.Context, animalID string, since time.Time) ([]iot.SensorReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]iot.SensorReading, 0)
	for _, reading := range r.readings[animalID] {
		if reading.Timestamp.Before(since) {
			continue
		}
		out = append(out, reading)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *iotRepo) AddAlert(ctx context.Context, a iot.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("alert id required")
	}
	if _, exists := r.alerts[a.ID]; exists {
		return errors.New("alert already exists")
	}
	r.alerts[a.ID] = a
	return nil
}

func (r *iotRepo) ListAlerts(ctx context.Context, animalID string) ([]iot.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]iot.Alert, 0)
	for _, a := range r.alerts {
		if a.AnimalID == animalID {
			out = append(out, a)
		}
	}
	// Más recientes primero, como las devuelve el backend real.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *iotRepo) MarkAlertRead(ctx context.Context, alertID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[alertID]
	if !ok {
		return ErrNotFound
	}
	a.IsRead = true
	r.alerts[alertID] = a
	return nil
}
