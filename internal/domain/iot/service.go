package iot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// ReadingWindow acota cuántas horas hacia atrás se devuelven lecturas:
// la vista de sensores muestra las últimas 24 horas.
const ReadingWindow = 24 * time.Hour

// Umbrales sobre los que una lectura dispara alertas.
const (
	FeverThreshold      = 39.5 // °C
	HeatActivityMin     = 90.0 // actividad alta sostenida sugiere celo
	InactivityThreshold = 10.0
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type ReadingInput struct {
	Temperatura *float64
	Actividad   *float64
	Timestamp   time.Time // cero = ahora
}

func (s *Service) RecordReading(ctx context.Context, animalID string, in ReadingInput) (SensorReading, error) {
	if strings.TrimSpace(animalID) == "" {
		return SensorReading{}, ErrInvalidInput
	}
	if in.Temperatura == nil && in.Actividad == nil {
		return SensorReading{}, ErrInvalidInput
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	reading := SensorReading{
		ID:          uuid.NewString(),
		AnimalID:    animalID,
		Timestamp:   ts,
		Temperatura: in.Temperatura,
		Actividad:   in.Actividad,
	}

	if err := s.repo.AddReading(ctx, reading); err != nil {
		return SensorReading{}, err
	}

	// Las alertas se generan al ingerir la lectura, no al consultarla.
	// Si el guardado de la alerta falla, la lectura ya quedó registrada.
	for _, in := range evaluateReading(reading) {
		if _, err := s.RaiseAlert(ctx, animalID, in); err != nil {
			return reading, err
		}
	}
	return reading, nil
}

// evaluateReading decide qué alertas dispara una lectura.
func evaluateReading(r SensorReading) []AlertInput {
	var out []AlertInput
	if r.Temperatura != nil && *r.Temperatura > FeverThreshold {
		out = append(out, AlertInput{
			Type:    AlertFiebre,
			Message: fmt.Sprintf("Temperatura de %.1f°C supera el umbral de fiebre.", *r.Temperatura),
		})
	}
	if r.Actividad != nil {
		switch {
		case *r.Actividad >= HeatActivityMin:
			out = append(out, AlertInput{
				Type:    AlertCelo,
				Message: fmt.Sprintf("Actividad de %.0f compatible con celo.", *r.Actividad),
			})
		case *r.Actividad < InactivityThreshold:
			out = append(out, AlertInput{
				Type:    AlertInactividad,
				Message: fmt.Sprintf("Actividad de %.0f por debajo del mínimo esperado.", *r.Actividad),
			})
		}
	}
	return out
}

func (s *Service) RecentReadings(ctx context.Context, animalID string) ([]SensorReading, error) {
	if strings.TrimSpace(animalID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListReadings(ctx, animalID, s.now().Add(-ReadingWindow))
}

type AlertInput struct {
	Type    AlertType
	Message string
}

func (s *Service) RaiseAlert(ctx context.Context, animalID string, in AlertInput) (Alert, error) {
	if strings.TrimSpace(animalID) == "" || in.Type == "" {
		return Alert{}, ErrInvalidInput
	}

	a := Alert{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		Type:      in.Type,
		Message:   strings.TrimSpace(in.Message),
		Timestamp: s.now(),
	}

	if err := s.repo.AddAlert(ctx, a); err != nil {
		return Alert{}, err
	}
	return a, nil
}

func (s *Service) Alerts(ctx context.Context, animalID string) ([]Alert, error) {
	if strings.TrimSpace(animalID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListAlerts(ctx, animalID)
}

func (s *Service) MarkRead(ctx context.Context, alertID string) error {
	if strings.TrimSpace(alertID) == "" {
		return ErrInvalidInput
	}
	return s.repo.MarkAlertRead(ctx, alertID)
}
