package postgres

import (
	"context"
	"database/sql"
	"time"

	"livestock-records/internal/domain/iot"
)

type IoTRepo struct {
	db *sql.DB
}

func NewIoTRepo(db *sql.DB) *IoTRepo {
	return &IoTRepo{db: db}
}

func (r *IoTRepo) AddReading(ctx context.Context, reading iot.SensorReading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sensor_readings (id, animal_id, ts, temperatura, actividad)
		VALUES ($1,$2,$3,$4,$5)
	`,
		reading.ID,
		reading.AnimalID,
		reading.Timestamp,
		reading.Temperatura,
		reading.Actividad,
	)
	return err
}

func (r *IoTRepo) ListReadings(ctx context.Context, animalID string, since time.Time) ([]iot.SensorReading, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, ts, temperatura, actividad
		FROM sensor_readings
		WHERE animal_id = $1 AND ts >= $2
		ORDER BY ts ASC
	`, animalID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]iot.SensorReading, 0)
	for rows.Next() {
		var reading iot.SensorReading
		if err := rows.Scan(&reading.ID, &reading.AnimalID, &reading.Timestamp, &reading.Temperatura, &reading.Actividad); err != nil {
			return nil, err
		}
		out = append(out, reading)
	}
	return out, rows.Err()
}

func (r *IoTRepo) AddAlert(ctx context.Context, a iot.Alert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alerts (id, animal_id, alert_type, message, ts, is_read)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.AnimalID,
		string(a.Type),
		a.Message,
		a.Timestamp,
		a.IsRead,
	)
	return err
}

func (r *IoTRepo) ListAlerts(ctx context.Context, animalID string) ([]iot.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, alert_type, message, ts, is_read
		FROM alerts
		WHERE animal_id = $1
		ORDER BY ts DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]iot.Alert, 0)
	for rows.Next() {
		var a iot.Alert
		var typ string
		if err := rows.Scan(&a.ID, &a.AnimalID, &typ, &a.Message, &a.Timestamp, &a.IsRead); err != nil {
			return nil, err
		}
		a.Type = iot.AlertType(typ)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *IoTRepo) MarkAlertRead(ctx context.Context, alertID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = $1`, alertID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
