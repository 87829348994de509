package store

import (
	"context"
	"strconv"
	"sync"

	"livestock-records/internal/client"
	"livestock-records/internal/domain/dashboard"
	"livestock-records/internal/domain/scoring"
)

// Store agrega el estado remoto de toda la aplicación y las operaciones
// que lo sincronizan con el backend. Cada recurso se actualiza de forma
// independiente: una falla en alertas no toca la lista de ejemplares.
type Store struct {
	api *client.Client

	Animals *Resource[client.Animal]
	Breeds  *Resource[client.Breed]
	Alerts  *Resource[client.Alert]

	Readings *Resource[client.SensorReading]

	mu        sync.RWMutex
	templates map[int]scoring.Template // cache por raza; las rúbricas no cambian en sesión
	dash      dashboard.Data
	dashFresh bool
}

func New(api *client.Client) *Store {
	return &Store{
		api: api,

		Animals: NewResource(func(a client.Animal) string { return a.ID }),
		Breeds:  NewResource(func(b client.Breed) string { return strconv.Itoa(b.ID) }),
		Alerts:  NewResource(func(a client.Alert) string { return a.ID }),

		Readings: NewResource(func(r client.SensorReading) string { return r.ID }),

		templates: make(map[int]scoring.Template),
	}
}

// --- Ejemplares ---

// FetchAnimals recarga la lista completa.
func (s *Store) FetchAnimals(ctx context.Context) error {
	t := s.Animals.Begin()
	items, err := s.api.ListAnimals(ctx)
	s.Animals.Resolve(t, items, err)
	return err
}

// CreateAnimal da de alta un ejemplar y lo inserta en la copia local.
func (s *Store) CreateAnimal(ctx context.Context, form client.AnimalForm) (client.Animal, error) {
	a, err := s.api.CreateAnimal(ctx, form)
	if err != nil {
		return client.Animal{}, err
	}
	s.Animals.Insert(a)
	return a, nil
}

// UpdateAnimal edita un ejemplar y reemplaza la copia local por la
// versión confirmada por el backend.
func (s *Store) UpdateAnimal(ctx context.Context, id string, form client.AnimalForm) (client.Animal, error) {
	a, err := s.api.UpdateAnimal(ctx, id, form)
	if err != nil {
		return client.Animal{}, err
	}
	s.Animals.ReplaceByID(a)
	return a, nil
}

// DeleteAnimal borra en el backend y después saca el item local.
func (s *Store) DeleteAnimal(ctx context.Context, id string) error {
	if err := s.api.DeleteAnimal(ctx, id); err != nil {
		return err
	}
	s.Animals.RemoveByID(id)
	return nil
}

// --- Razas ---

// FetchBreeds carga el catálogo una sola vez; llamadas posteriores no
// pegan al backend salvo que la carga previa haya fallado.
func (s *Store) FetchBreeds(ctx context.Context) error {
	if s.Breeds.Len() > 0 {
		return nil
	}
	t := s.Breeds.Begin()
	items, err := s.api.ListBreeds(ctx)
	s.Breeds.Resolve(t, items, err)
	return err
}

// BreedName resuelve el nombre de una raza ya cacheada.
func (s *Store) BreedName(breedID int) string {
	for _, b := range s.Breeds.Items() {
		if b.ID == breedID {
			return b.Nombre
		}
	}
	return ""
}

// --- Calificación ---

// Template trae la rúbrica de una raza, cacheada por sesión.
func (s *Store) Template(ctx context.Context, breedID int) (scoring.Template, error) {
	s.mu.RLock()
	tpl, ok := s.templates[breedID]
	s.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := s.api.ScoreTemplate(ctx, breedID)
	if err != nil {
		return scoring.Template{}, err
	}

	s.mu.Lock()
	s.templates[breedID] = tpl
	s.mu.Unlock()
	return tpl, nil
}

// SubmitScores guarda un lote de calificaciones y refleja el nuevo
// score_total en la copia local del ejemplar.
func (s *Store) SubmitScores(ctx context.Context, animalID string, items []scoring.ScoreItem) (client.SubmitResult, error) {
	res, err := s.api.SubmitScores(ctx, animalID, items)
	if err != nil {
		return client.SubmitResult{}, err
	}

	score := res.ScoreTotal
	s.Animals.Patch(func(a *client.Animal) {
		if a.ID == animalID {
			a.ScoreTotal = &score
		}
	})
	s.invalidateDashboard()
	return res, nil
}

// --- Sensores y alertas ---

func (s *Store) FetchSensorData(ctx context.Context, animalID string) error {
	t := s.Readings.Begin()
	items, err := s.api.SensorData(ctx, animalID)
	s.Readings.Resolve(t, items, err)
	return err
}

func (s *Store) FetchAlerts(ctx context.Context, animalID string) error {
	t := s.Alerts.Begin()
	items, err := s.api.Alerts(ctx, animalID)
	s.Alerts.Resolve(t, items, err)
	return err
}

// MarkAlertRead marca la alerta en el backend y parcha la copia local
// sin recargar la lista.
func (s *Store) MarkAlertRead(ctx context.Context, alertID string) error {
	if err := s.api.MarkAlertRead(ctx, alertID); err != nil {
		return err
	}
	s.Alerts.Patch(func(a *client.Alert) {
		if a.ID == alertID {
			a.IsRead = true
		}
	})
	return nil
}

// UnreadCount cuenta las alertas cargadas sin leer (para el badge).
func (s *Store) UnreadCount() int {
	n := 0
	for _, a := range s.Alerts.Items() {
		if !a.IsRead {
			n++
		}
	}
	return n
}

// --- Tablero ---

// Dashboard trae los agregados del tablero. Se cachea hasta que una
// calificación nueva lo invalida.
func (s *Store) Dashboard(ctx context.Context) (dashboard.Data, error) {
	s.mu.RLock()
	if s.dashFresh {
		defer s.mu.RUnlock()
		return s.dash, nil
	}
	s.mu.RUnlock()

	data, err := s.api.DashboardScores(ctx)
	if err != nil {
		return dashboard.Data{}, err
	}

	s.mu.Lock()
	s.dash = data
	s.dashFresh = true
	s.mu.Unlock()
	return data, nil
}

func (s *Store) invalidateDashboard() {
	s.mu.Lock()
	s.dashFresh = false
	s.mu.Unlock()
}

// Reset limpia todo el estado (al cerrar sesión).
func (s *Store) Reset() {
	s.Animals.Reset()
	s.Breeds.Reset()
	s.Alerts.Reset()
	s.Readings.Reset()

	s.mu.Lock()
	s.templates = make(map[int]scoring.Template)
	s.dash = dashboard.Data{}
	s.dashFresh = false
	s.mu.Unlock()
}
