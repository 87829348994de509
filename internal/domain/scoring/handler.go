package scoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"livestock-records/internal/domain/animals"
	"livestock-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Get("/score-templates/breed/{breedID}/", getTemplateHandler(svc))
	r.Post("/animals/{animalID}/scores/", submitScoresHandler(svc, animalsSvc))
}

func getTemplateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		breedID, err := strconv.Atoi(chi.URLParam(r, "breedID"))
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "breed id must be an integer")
			return
		}

		tpl, err := svc.TemplateByBreed(r.Context(), breedID)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Plantilla no encontrada para la raza.")
			return
		}

		// El wire format es el Template mismo: {categories, characteristics}.
		writeJSON(w, http.StatusOK, tpl)
	}
}

type submitResponse struct {
	Message    string  `json:"message"`
	ScoreTotal float64 `json:"score_total"`
}

// submitScoresHandler orquesta el envío de una sesión de calificación:
// resuelve el ejemplar (y su raza), persiste el lote y actualiza el
// score_total del ejemplar.
func submitScoresHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		animal, err := animalsSvc.GetByID(r.Context(), animalID)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Ejemplar no encontrado.")
			return
		}

		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		score, err := svc.Submit(r.Context(), animal.ID, animal.BreedID, claims.Username, sub.Scores)
		if err != nil {
			switch {
			case errors.Is(err, ErrTemplateNotFound):
				writeDetail(w, http.StatusNotFound, "Plantilla no encontrada para la raza.")
			case errors.Is(err, ErrUnknownCharacteristic), errors.Is(err, ErrEmptySubmission):
				writeDetail(w, http.StatusBadRequest, err.Error())
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if _, err := animalsSvc.SetScore(r.Context(), animal.ID, score, time.Now()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{
			Message:    "Calificaciones guardadas y score actualizado con éxito.",
			ScoreTotal: score,
		})
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
