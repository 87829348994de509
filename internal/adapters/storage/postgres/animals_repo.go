package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"livestock-records/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, identifier, name, breed_id, birth_date,
	weight, height, photo_path, score_total, last_score_date,
	created_at, updated_at
`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.Identifier,
		a.Name,
		a.BreedID,
		a.BirthDate,
		a.Weight,
		a.Height,
		a.PhotoPath,
		a.ScoreTotal,
		toNullDate(a.LastScoreDate),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			identifier = $2,
			name = $3,
			breed_id = $4,
			birth_date = $5,
			weight = $6,
			height = $7,
			photo_path = $8,
			score_total = $9,
			last_score_date = $10,
			updated_at = $11
		WHERE id = $1
	`,
		a.ID,
		a.Identifier,
		a.Name,
		a.BreedID,
		a.BirthDate,
		a.Weight,
		a.Height,
		a.PhotoPath,
		a.ScoreTotal,
		toNullDate(a.LastScoreDate),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+` FROM animals WHERE id = $1
	`, id)
	return scanAnimal(row)
}

func (r *AnimalsRepo) GetByIdentifier(ctx context.Context, identifier string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+` FROM animals WHERE identifier = $1
	`, identifier)
	return scanAnimal(row)
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+` FROM animals ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var lastScore sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.Identifier,
		&a.Name,
		&a.BreedID,
		&a.BirthDate,
		&a.Weight,
		&a.Height,
		&a.PhotoPath,
		&a.ScoreTotal,
		&lastScore,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, err
	}
	if lastScore.Valid {
		t := lastScore.Time
		a.LastScoreDate = &t
	}
	return a, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
