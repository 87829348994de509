package breeds

// Breed es una raza registrada. De cara al cliente es de solo lectura:
// se consulta una vez por sesión y se cachea en memoria.
type Breed struct {
	ID     int
	Nombre string

	PesoIdealMin *float64
	PesoIdealMax *float64
	TallaIdeal   *float64
	CapaColores  string // colores aceptados separados por comas
}

// DefaultCatalog es el catálogo inicial de razas con el que arranca el
// devapi. Los IDs son fijos: las rúbricas de calificación los referencian.
func DefaultCatalog() []Breed {
	f := func(v float64) *float64 { return &v }
	return []Breed{
		{ID: 1, Nombre: "Holstein", PesoIdealMin: f(550), PesoIdealMax: f(680), TallaIdeal: f(1.45), CapaColores: "blanco,negro"},
		{ID: 2, Nombre: "Brown Swiss", PesoIdealMin: f(590), PesoIdealMax: f(640), TallaIdeal: f(1.40), CapaColores: "pardo,gris"},
		{ID: 3, Nombre: "Jersey", PesoIdealMin: f(360), PesoIdealMax: f(450), TallaIdeal: f(1.25), CapaColores: "bayo,marrón"},
	}
}
