package scoring

// Rúbricas de calificación morfológica con las que se siembra el devapi.
// Holstein y Brown Swiss comparten estructura y valores de plantilla.

const (
	BreedHolstein   = 1
	BreedBrownSwiss = 2
)

func baseTemplate(breedID int) Template {
	return Template{
		BreedID: breedID,
		Categories: []Category{
			{ID: 1, Nombre: "Sistema Mamario", Ponderacion: 40},
			{ID: 2, Nombre: "Fuerza Lechera", Ponderacion: 20},
			{ID: 3, Nombre: "Patas y Pezuñas", Ponderacion: 20},
			{ID: 4, Nombre: "Tren Anterior y Capacidad", Ponderacion: 15},
			{ID: 5, Nombre: "Grupa", Ponderacion: 5},
		},
		Characteristics: []Characteristic{
			{ID: 1, CategoriaID: 1, Nombre: "Inserción anterior de la ubre", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 2, CategoriaID: 1, Nombre: "Colocación de pezón anterior", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 3, CategoriaID: 1, Nombre: "Longitud de pezón", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 4, CategoriaID: 1, Nombre: "Profundidad de la ubre", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 5, CategoriaID: 1, Nombre: "Altura de la ubre posterior", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 6, CategoriaID: 1, Nombre: "Ligamento suspensor medio", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 7, CategoriaID: 1, Nombre: "Colocación de pezón posterior", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 8, CategoriaID: 1, Nombre: "Anchura de la ubre trasera", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 9, CategoriaID: 1, Nombre: "Inclinación de la ubre", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 10, CategoriaID: 2, Nombre: "Angularidad", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 11, CategoriaID: 2, Nombre: "Fortaleza", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 12, CategoriaID: 3, Nombre: "Ángulo de pezuñas", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 13, CategoriaID: 3, Nombre: "Patas vista lateral", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 14, CategoriaID: 3, Nombre: "Locomoción", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 15, CategoriaID: 3, Nombre: "Patas vista posterior", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 16, CategoriaID: 3, Nombre: "Coxo femoral", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 17, CategoriaID: 4, Nombre: "Estatura", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 18, CategoriaID: 4, Nombre: "Profundidad", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
			{ID: 19, CategoriaID: 4, Nombre: "Condición corporal", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 20, CategoriaID: 5, Nombre: "Ángulo de la grupa", PuntajeIdeal: 5, RangoAceptadoMin: 4, RangoAceptadoMax: 6},
			{ID: 21, CategoriaID: 5, Nombre: "Ancho de la grupa", PuntajeIdeal: 9, RangoAceptadoMin: 7, RangoAceptadoMax: 9},
		},
	}
}

// SeedTemplates devuelve las plantillas por raza para el arranque en memoria.
func SeedTemplates() map[int]Template {
	return map[int]Template{
		BreedHolstein:   baseTemplate(BreedHolstein),
		BreedBrownSwiss: baseTemplate(BreedBrownSwiss),
	}
}
