package dashboard

// BreedAverage es el promedio de score_total de los ejemplares calificados
// de una raza, para el gráfico de barras del tablero.
type BreedAverage struct {
	BreedName    string  `json:"breedName"`
	AverageScore float64 `json:"averageScore"`
}

// RecentScore resume un ejemplar calificado recientemente.
type RecentScore struct {
	AnimalID      string  `json:"id"`
	Identificador string  `json:"identificador"`
	Nombre        string  `json:"nombre"`
	BreedName     string  `json:"raza_nombre"`
	ScoreTotal    float64 `json:"score_total"`
	LastScoreDate string  `json:"last_score_date"`
}

// Data es la respuesta completa de GET /dashboard/scores/.
type Data struct {
	AverageScoresByBreed []BreedAverage `json:"averageScoresByBreed"`
	RecentScores         []RecentScore  `json:"recentScores"`
}
