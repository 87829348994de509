package iot

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"livestock-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/animals/{animalID}/sensor-data/", listReadingsHandler(svc))
	r.Post("/animals/{animalID}/sensor-data/", createReadingHandler(svc))
	r.Get("/animals/{animalID}/alerts/", listAlertsHandler(svc))
	r.Post("/alerts/{alertID}/read/", markAlertReadHandler(svc))
}

type readingResponse struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"ejemplar"`
	Timestamp   time.Time `json:"timestamp"`
	Temperatura *float64  `json:"temperatura"`
	Actividad   *float64  `json:"actividad"`
}

type alertResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"ejemplar"`
	Type      AlertType `json:"alert_type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

func listReadingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.RecentReadings(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]readingResponse, 0, len(items))
		for _, it := range items {
			out = append(out, readingResponse{
				ID:          it.ID,
				AnimalID:    it.AnimalID,
				Timestamp:   it.Timestamp,
				Temperatura: it.Temperatura,
				Actividad:   it.Actividad,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type createReadingRequest struct {
	Temperatura *float64 `json:"temperatura"`
	Actividad   *float64 `json:"actividad"`
}

func createReadingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reading, err := svc.RecordReading(r.Context(), chi.URLParam(r, "animalID"), ReadingInput{
			Temperatura: req.Temperatura,
			Actividad:   req.Actividad,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, readingResponse{
			ID:          reading.ID,
			AnimalID:    reading.AnimalID,
			Timestamp:   reading.Timestamp,
			Temperatura: reading.Temperatura,
			Actividad:   reading.Actividad,
		})
	}
}

func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Alerts(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, alertResponse{
				ID:        a.ID,
				AnimalID:  a.AnimalID,
				Type:      a.Type,
				Message:   a.Message,
				Timestamp: a.Timestamp,
				IsRead:    a.IsRead,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func markAlertReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.MarkRead(r.Context(), chi.URLParam(r, "alertID")); err != nil {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
