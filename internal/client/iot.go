package client

import (
	"context"
	"time"
)

// SensorReading es una lectura de sensores de las últimas 24 horas.
type SensorReading struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"ejemplar"`
	Timestamp   time.Time `json:"timestamp"`
	Temperatura *float64  `json:"temperatura"`
	Actividad   *float64  `json:"actividad"`
}

// Alert es una alerta de salud o comportamiento de un ejemplar.
type Alert struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"ejemplar"`
	Type      string    `json:"alert_type"` // FIEBRE, CELO o INACTIVIDAD
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

func (c *Client) SensorData(ctx context.Context, animalID string) ([]SensorReading, error) {
	var out []SensorReading
	if err := c.http.DoJSON(ctx, "GET", "/animals/"+animalID+"/sensor-data/", nil, nil, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

type readingInput struct {
	Temperatura *float64 `json:"temperatura"`
	Actividad   *float64 `json:"actividad"`
}

// AddSensorReading registra una lectura manual (útil para pruebas y para
// el simulador de la CLI).
func (c *Client) AddSensorReading(ctx context.Context, animalID string, temperatura, actividad *float64) (SensorReading, error) {
	var out SensorReading
	err := c.http.DoJSON(ctx, "POST", "/animals/"+animalID+"/sensor-data/", nil,
		readingInput{Temperatura: temperatura, Actividad: actividad}, &out)
	if err != nil {
		return SensorReading{}, wrapErr(err)
	}
	return out, nil
}

func (c *Client) Alerts(ctx context.Context, animalID string) ([]Alert, error) {
	var out []Alert
	if err := c.http.DoJSON(ctx, "GET", "/animals/"+animalID+"/alerts/", nil, nil, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (c *Client) MarkAlertRead(ctx context.Context, alertID string) error {
	if err := c.http.DoJSON(ctx, "POST", "/alerts/"+alertID+"/read/", nil, nil, nil); err != nil {
		return wrapErr(err)
	}
	return nil
}
