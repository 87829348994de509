package dashboard

import (
	"context"
	"sort"

	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/breeds"
)

// RecentLimit acota el listado de calificados recientes.
const RecentLimit = 10

// Service agrega los datos del tablero a partir de los ejemplares
// calificados. No tiene repo propio: deriva todo de animals y breeds.
type Service struct {
	animals *animals.Service
	breeds  *breeds.Service
}

func NewService(animalsSvc *animals.Service, breedsSvc *breeds.Service) *Service {
	return &Service{
		animals: animalsSvc,
		breeds:  breedsSvc,
	}
}

func (s *Service) Scores(ctx context.Context) (Data, error) {
	items, err := s.animals.List(ctx)
	if err != nil {
		return Data{}, err
	}

	breedNames := map[int]string{}
	if all, err := s.breeds.List(ctx); err == nil {
		for _, b := range all {
			breedNames[b.ID] = b.Nombre
		}
	}

	type acc struct {
		sum float64
		n   int
	}
	byBreed := map[int]*acc{}
	scored := make([]animals.Animal, 0, len(items))

	for _, a := range items {
		if a.ScoreTotal == nil {
			continue
		}
		scored = append(scored, a)

		agg := byBreed[a.BreedID]
		if agg == nil {
			agg = &acc{}
			byBreed[a.BreedID] = agg
		}
		agg.sum += *a.ScoreTotal
		agg.n++
	}

	averages := make([]BreedAverage, 0, len(byBreed))
	for breedID, agg := range byBreed {
		name := breedNames[breedID]
		if name == "" {
			name = "Desconocida"
		}
		averages = append(averages, BreedAverage{
			BreedName:    name,
			AverageScore: agg.sum / float64(agg.n),
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		return averages[i].BreedName < averages[j].BreedName
	})

	// Los más recientemente calificados primero.
	sort.Slice(scored, func(i, j int) bool {
		di, dj := scored[i].LastScoreDate, scored[j].LastScoreDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.After(*dj)
		}
	})
	if len(scored) > RecentLimit {
		scored = scored[:RecentLimit]
	}

	recent := make([]RecentScore, 0, len(scored))
	for _, a := range scored {
		rs := RecentScore{
			AnimalID:      a.ID,
			Identificador: a.Identifier,
			Nombre:        a.Name,
			BreedName:     breedNames[a.BreedID],
			ScoreTotal:    *a.ScoreTotal,
		}
		if a.LastScoreDate != nil {
			rs.LastScoreDate = a.LastScoreDate.Format("2006-01-02")
		}
		recent = append(recent, rs)
	}

	return Data{
		AverageScoresByBreed: averages,
		RecentScores:         recent,
	}, nil
}
