package scoring

// Category es una agrupación ponderada de características dentro de una plantilla.
// Las ponderaciones de todas las categorías de una plantilla suman 100.
type Category struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Ponderacion int    `json:"ponderacion"` // porcentaje del total, ej: 40 para 40%
}

// Characteristic es un rasgo calificable con puntaje ideal y rango aceptado.
// El rango es informativo: un valor fuera de rango sigue siendo válido.
type Characteristic struct {
	ID               int     `json:"id"`
	CategoriaID      int     `json:"categoria"`
	Nombre           string  `json:"nombre"`
	PuntajeIdeal     float64 `json:"puntaje_ideal"`
	RangoAceptadoMin float64 `json:"rango_aceptado_min"`
	RangoAceptadoMax float64 `json:"rango_aceptado_max"`
}

// Template es la rúbrica de calificación de una raza: categorías ponderadas
// y características asociadas por FK (CategoriaID).
type Template struct {
	BreedID         int              `json:"-"`
	Categories      []Category       `json:"categories"`
	Characteristics []Characteristic `json:"characteristics"`
}

// Entries mapea id de característica -> valor crudo ingresado.
// Una clave ausente significa "sin calificar".
type Entries map[int]float64

// ScoreItem es una calificación individual tal como viaja al backend.
type ScoreItem struct {
	CaracteristicaID   int     `json:"caracteristica"`
	PuntuacionObtenida float64 `json:"puntuacion_obtenida"`
}

// Submission es el lote de calificaciones de una sesión de puntaje.
type Submission struct {
	Scores []ScoreItem `json:"scores"`
}

// Items convierte un Entries en el lote ordenado que espera el backend.
// El orden sigue las características de la plantilla, no el mapa.
func (t Template) Items(entries Entries) []ScoreItem {
	out := make([]ScoreItem, 0, len(entries))
	for _, ch := range t.Characteristics {
		v, ok := entries[ch.ID]
		if !ok {
			continue
		}
		out = append(out, ScoreItem{
			CaracteristicaID:   ch.ID,
			PuntuacionObtenida: v,
		})
	}
	return out
}
