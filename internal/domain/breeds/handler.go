package breeds

import (
	"encoding/json"
	"net/http"

	"livestock-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/breeds/", listBreedsHandler(svc))
}

type breedResponse struct {
	ID           int      `json:"id"`
	Nombre       string   `json:"nombre"`
	PesoIdealMin *float64 `json:"peso_ideal_min"`
	PesoIdealMax *float64 `json:"peso_ideal_max"`
	TallaIdeal   *float64 `json:"talla_ideal"`
	CapaColores  string   `json:"capa_colores"`
}

func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, breedResponse{
				ID:           b.ID,
				Nombre:       b.Nombre,
				PesoIdealMin: b.PesoIdealMin,
				PesoIdealMax: b.PesoIdealMax,
				TallaIdeal:   b.TallaIdeal,
				CapaColores:  b.CapaColores,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
