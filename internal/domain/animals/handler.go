package animals

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"livestock-records/internal/imaging"
	"livestock-records/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// PhotoStore persiste la foto procesada de un ejemplar y devuelve la ruta
// relativa con la que se sirve bajo /media/.
type PhotoStore interface {
	Save(name string, data []byte) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, photos PhotoStore) {
	// Rutas planas estilo Django (con slash final), para poder colgar
	// /animals/{id}/scores/ y /animals/{id}/sensor-data/ desde otros módulos.
	r.Get("/animals/", listAnimalsHandler(svc))
	r.Post("/animals/", createAnimalHandler(svc, photos))
	r.Get("/animals/{animalID}/", getAnimalHandler(svc))
	r.Put("/animals/{animalID}/", updateAnimalHandler(svc, photos))
	r.Delete("/animals/{animalID}/", deleteAnimalHandler(svc))
}

type animalResponse struct {
	ID            string   `json:"id"`
	Identificador string   `json:"identificador"`
	Nombre        string   `json:"nombre"`
	Raza          int      `json:"raza"`
	FechaNac      string   `json:"fecha_nacimiento"`
	PesoActual    *float64 `json:"peso_actual"`
	TallaActual   *float64 `json:"talla_actual"`
	Foto          string   `json:"foto,omitempty"`
	ScoreTotal    *float64 `json:"score_total"`
	LastScoreDate *string  `json:"last_score_date"`
}

func toAnimalResponse(a Animal) animalResponse {
	resp := animalResponse{
		ID:            a.ID,
		Identificador: a.Identifier,
		Nombre:        a.Name,
		Raza:          a.BreedID,
		FechaNac:      a.BirthDate.Format("2006-01-02"),
		PesoActual:    a.Weight,
		TallaActual:   a.Height,
		ScoreTotal:    a.ScoreTotal,
	}
	if a.PhotoPath != "" {
		resp.Foto = "/media/" + a.PhotoPath
	}
	if a.LastScoreDate != nil {
		s := a.LastScoreDate.Format("2006-01-02")
		resp.LastScoreDate = &s
	}
	return resp
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Ejemplar no encontrado.")
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func createAnimalHandler(svc *Service, photos PhotoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		form, err := parseAnimalForm(r, photos)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Identifier: form.identificador,
			Name:       form.nombre,
			BreedID:    form.raza,
			BirthDate:  form.fechaNacimiento,
			Weight:     form.peso,
			Height:     form.talla,
			PhotoPath:  form.fotoPath,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateIdentifier):
				writeDetail(w, http.StatusBadRequest, "El identificador ya está registrado.")
			case errors.Is(err, ErrInvalidInput):
				writeDetail(w, http.StatusBadRequest, err.Error())
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service, photos PhotoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")

		form, err := parseAnimalForm(r, photos)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		in := UpdateInput{
			Weight: form.peso,
			Height: form.talla,
		}
		if form.identificador != "" {
			in.Identifier = &form.identificador
		}
		if form.nombre != "" {
			in.Name = &form.nombre
		}
		if form.raza > 0 {
			in.BreedID = &form.raza
		}
		if !form.fechaNacimiento.IsZero() {
			in.BirthDate = &form.fechaNacimiento
		}
		// Sin foto nueva no se toca la existente: el formulario nunca
		// borra una foto ya subida.
		if form.fotoPath != "" {
			in.PhotoPath = &form.fotoPath
		}

		a, err := svc.Update(r.Context(), animalID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeDetail(w, http.StatusNotFound, "Ejemplar no encontrado.")
			case errors.Is(err, ErrDuplicateIdentifier):
				writeDetail(w, http.StatusBadRequest, "El identificador ya está registrado.")
			case errors.Is(err, ErrInvalidInput):
				writeDetail(w, http.StatusBadRequest, err.Error())
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeDetail(w, http.StatusNotFound, "Ejemplar no encontrado.")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type animalForm struct {
	identificador   string
	nombre          string
	raza            int
	fechaNacimiento time.Time
	peso            *float64
	talla           *float64
	fotoPath        string
}

// parseAnimalForm lee el multipart del formulario de ejemplar. La foto es
// opcional; si viene, se valida y procesa antes de guardarla.
func parseAnimalForm(r *http.Request, photos PhotoStore) (animalForm, error) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		return animalForm{}, errors.New("invalid multipart form")
	}

	var form animalForm
	form.identificador = strings.TrimSpace(r.FormValue("identificador"))
	form.nombre = strings.TrimSpace(r.FormValue("nombre"))

	if v := strings.TrimSpace(r.FormValue("raza")); v != "" {
		raza, err := strconv.Atoi(v)
		if err != nil {
			return animalForm{}, errors.New("raza must be an integer id")
		}
		form.raza = raza
	}

	if v := strings.TrimSpace(r.FormValue("fecha_nacimiento")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return animalForm{}, errors.New("fecha_nacimiento must be YYYY-MM-DD")
		}
		form.fechaNacimiento = t
	}

	var err error
	if form.peso, err = optionalFloat(r.FormValue("peso_actual")); err != nil {
		return animalForm{}, errors.New("peso_actual must be a number")
	}
	if form.talla, err = optionalFloat(r.FormValue("talla_actual")); err != nil {
		return animalForm{}, errors.New("talla_actual must be a number")
	}

	file, header, err := r.FormFile("foto")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return form, nil
	case err != nil:
		return animalForm{}, errors.New("invalid foto upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		return animalForm{}, errors.New("reading foto upload")
	}

	res, err := imaging.Process(data)
	if err != nil {
		return animalForm{}, err
	}

	path, err := photos.Save(header.Filename, res.Data)
	if err != nil {
		return animalForm{}, errors.New("storing foto")
	}
	form.fotoPath = path

	return form, nil
}

func optionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
