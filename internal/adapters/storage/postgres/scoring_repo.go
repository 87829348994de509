package postgres

import (
	"context"
	"database/sql"

	"livestock-records/internal/domain/scoring"
)

type TemplatesRepo struct {
	db *sql.DB
}

func NewTemplatesRepo(db *sql.DB) *TemplatesRepo {
	return &TemplatesRepo{db: db}
}

func (r *TemplatesRepo) TemplateByBreed(ctx context.Context, breedID int) (scoring.Template, error) {
	tpl := scoring.Template{BreedID: breedID}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, ponderacion
		FROM score_categories WHERE breed_id = $1 ORDER BY id ASC
	`, breedID)
	if err != nil {
		return scoring.Template{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var c scoring.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Ponderacion); err != nil {
			return scoring.Template{}, err
		}
		tpl.Categories = append(tpl.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return scoring.Template{}, err
	}
	if len(tpl.Categories) == 0 {
		return scoring.Template{}, ErrNotFound
	}

	chRows, err := r.db.QueryContext(ctx, `
		SELECT id, categoria_id, nombre, puntaje_ideal, rango_aceptado_min, rango_aceptado_max
		FROM score_characteristics WHERE breed_id = $1 ORDER BY id ASC
	`, breedID)
	if err != nil {
		return scoring.Template{}, err
	}
	defer chRows.Close()

	for chRows.Next() {
		var ch scoring.Characteristic
		if err := chRows.Scan(&ch.ID, &ch.CategoriaID, &ch.Nombre, &ch.PuntajeIdeal, &ch.RangoAceptadoMin, &ch.RangoAceptadoMax); err != nil {
			return scoring.Template{}, err
		}
		tpl.Characteristics = append(tpl.Characteristics, ch)
	}
	return tpl, chRows.Err()
}

// SeedTemplates inserta las rúbricas por raza si la tabla está vacía.
func (r *TemplatesRepo) SeedTemplates(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM score_categories`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for breedID, tpl := range scoring.SeedTemplates() {
		for _, c := range tpl.Categories {
			if _, err := r.db.ExecContext(ctx, `
				INSERT INTO score_categories (breed_id, id, nombre, ponderacion)
				VALUES ($1,$2,$3,$4)
			`, breedID, c.ID, c.Nombre, c.Ponderacion); err != nil {
				return err
			}
		}
		for _, ch := range tpl.Characteristics {
			if _, err := r.db.ExecContext(ctx, `
				INSERT INTO score_characteristics
					(breed_id, id, categoria_id, nombre, puntaje_ideal, rango_aceptado_min, rango_aceptado_max)
				VALUES ($1,$2,$3,$4,$5,$6,$7)
			`, breedID, ch.ID, ch.CategoriaID, ch.Nombre, ch.PuntajeIdeal, ch.RangoAceptadoMin, ch.RangoAceptadoMax); err != nil {
				return err
			}
		}
	}
	return nil
}

type ScoresRepo struct {
	db *sql.DB
}

func NewScoresRepo(db *sql.DB) *ScoresRepo {
	return &ScoresRepo{db: db}
}

func (r *ScoresRepo) Upsert(ctx context.Context, c scoring.Calificacion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calificaciones
			(id, animal_id, caracteristica_id, puntuacion_obtenida, fecha_calificacion, evaluador)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (animal_id, caracteristica_id, fecha_calificacion)
		DO UPDATE SET puntuacion_obtenida = EXCLUDED.puntuacion_obtenida,
		              evaluador = EXCLUDED.evaluador
	`,
		c.ID,
		c.AnimalID,
		c.CaracteristicaID,
		c.PuntuacionObtenida,
		c.FechaCalificacion,
		c.Evaluador,
	)
	return err
}

func (r *ScoresRepo) ListByAnimal(ctx context.Context, animalID string) ([]scoring.Calificacion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, caracteristica_id, puntuacion_obtenida, fecha_calificacion, evaluador
		FROM calificaciones
		WHERE animal_id = $1
		ORDER BY fecha_calificacion ASC, caracteristica_id ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]scoring.Calificacion, 0)
	for rows.Next() {
		var c scoring.Calificacion
		if err := rows.Scan(&c.ID, &c.AnimalID, &c.CaracteristicaID, &c.PuntuacionObtenida, &c.FechaCalificacion, &c.Evaluador); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
