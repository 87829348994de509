package iot

import "time"

// SensorReading es una lectura puntual de los sensores de un ejemplar.
type SensorReading struct {
	ID       string
	AnimalID string

	Timestamp   time.Time
	Temperatura *float64 // °C
	Actividad   *float64 // nivel de actividad o pasos
}

// AlertType clasifica las alertas generadas a partir de lecturas.
type AlertType string

const (
	AlertFiebre      AlertType = "FIEBRE"
	AlertCelo        AlertType = "CELO"
	AlertInactividad AlertType = "INACTIVIDAD"
)

// Alert es una alerta generada para un ejemplar. El flag de lectura se
// marca desde el cliente.
type Alert struct {
	ID       string
	AnimalID string

	Type      AlertType
	Message   string
	Timestamp time.Time
	IsRead    bool
}
