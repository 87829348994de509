package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema crea las tablas del devapi si no existen. Suficiente para
// desarrollo; un despliegue real usaría migraciones versionadas.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS breeds (
			id INTEGER PRIMARY KEY,
			nombre TEXT NOT NULL UNIQUE,
			peso_ideal_min DOUBLE PRECISION,
			peso_ideal_max DOUBLE PRECISION,
			talla_ideal DOUBLE PRECISION,
			capa_colores TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS animals (
			id TEXT PRIMARY KEY,
			identifier TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			breed_id INTEGER NOT NULL REFERENCES breeds(id),
			birth_date DATE NOT NULL,
			weight DOUBLE PRECISION,
			height DOUBLE PRECISION,
			photo_path TEXT NOT NULL DEFAULT '',
			score_total DOUBLE PRECISION,
			last_score_date DATE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS score_categories (
			breed_id INTEGER NOT NULL REFERENCES breeds(id),
			id INTEGER NOT NULL,
			nombre TEXT NOT NULL,
			ponderacion INTEGER NOT NULL,
			PRIMARY KEY (breed_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS score_characteristics (
			breed_id INTEGER NOT NULL REFERENCES breeds(id),
			id INTEGER NOT NULL,
			categoria_id INTEGER NOT NULL,
			nombre TEXT NOT NULL,
			puntaje_ideal DOUBLE PRECISION NOT NULL,
			rango_aceptado_min DOUBLE PRECISION NOT NULL,
			rango_aceptado_max DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (breed_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS calificaciones (
			id TEXT PRIMARY KEY,
			animal_id TEXT NOT NULL REFERENCES animals(id) ON DELETE CASCADE,
			caracteristica_id INTEGER NOT NULL,
			puntuacion_obtenida DOUBLE PRECISION NOT NULL,
			fecha_calificacion DATE NOT NULL,
			evaluador TEXT NOT NULL DEFAULT '',
			UNIQUE (animal_id, caracteristica_id, fecha_calificacion)
		)`,
		`CREATE TABLE IF NOT EXISTS sensor_readings (
			id TEXT PRIMARY KEY,
			animal_id TEXT NOT NULL REFERENCES animals(id) ON DELETE CASCADE,
			ts TIMESTAMPTZ NOT NULL,
			temperatura DOUBLE PRECISION,
			actividad DOUBLE PRECISION
		)`,
		`CREATE INDEX IF NOT EXISTS sensor_readings_animal_ts ON sensor_readings (animal_id, ts)`,
		`CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			animal_id TEXT NOT NULL REFERENCES animals(id) ON DELETE CASCADE,
			alert_type TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			ts TIMESTAMPTZ NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
