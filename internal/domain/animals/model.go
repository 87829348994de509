package animals

import "time"

// Animal es un ejemplar registrado en el hato.
// Identifier es el ID del arete o RFID, único en todo el sistema.
type Animal struct {
	ID         string
	Identifier string
	Name       string
	BreedID    int

	BirthDate time.Time
	Weight    *float64 // kg, opcional
	Height    *float64 // cm, opcional
	PhotoPath string   // relativo al directorio de media, opcional

	// Resultado de la última sesión de calificación (0-100 normalizado).
	ScoreTotal    *float64
	LastScoreDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
