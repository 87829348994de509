package postgres

import (
	"context"
	"database/sql"
	"errors"

	"livestock-records/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, peso_ideal_min, peso_ideal_max, talla_ideal, capa_colores
		FROM breeds ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Nombre, &b.PesoIdealMin, &b.PesoIdealMax, &b.TallaIdeal, &b.CapaColores); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SeedBreeds inserta el catálogo inicial si la tabla está vacía.
func (r *BreedsRepo) SeedBreeds(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breeds`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, b := range breeds.DefaultCatalog() {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO breeds (id, nombre, peso_ideal_min, peso_ideal_max, talla_ideal, capa_colores)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, b.ID, b.Nombre, b.PesoIdealMin, b.PesoIdealMax, b.TallaIdeal, b.CapaColores); err != nil {
			return err
		}
	}
	return nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int) (breeds.Breed, error) {
	var b breeds.Breed
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, peso_ideal_min, peso_ideal_max, talla_ideal, capa_colores
		FROM breeds WHERE id = $1
	`, id).Scan(&b.ID, &b.Nombre, &b.PesoIdealMin, &b.PesoIdealMax, &b.TallaIdeal, &b.CapaColores)
	if errors.Is(err, sql.ErrNoRows) {
		return breeds.Breed{}, ErrNotFound
	}
	if err != nil {
		return breeds.Breed{}, err
	}
	return b, nil
}
