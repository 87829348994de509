package client

import (
	"context"
	"strconv"

	"livestock-records/internal/platform/httpclient"
)

// Animal es el ejemplar tal como lo entrega el backend.
type Animal struct {
	ID            string   `json:"id"`
	Identificador string   `json:"identificador"`
	Nombre        string   `json:"nombre"`
	Raza          int      `json:"raza"`
	FechaNac      string   `json:"fecha_nacimiento"` // YYYY-MM-DD
	PesoActual    *float64 `json:"peso_actual"`
	TallaActual   *float64 `json:"talla_actual"`
	Foto          string   `json:"foto,omitempty"`
	ScoreTotal    *float64 `json:"score_total"`
	LastScoreDate *string  `json:"last_score_date"`
}

// AnimalForm son los campos del formulario de alta/edición. La foto es
// opcional; si FotoData viene vacío no se manda archivo.
type AnimalForm struct {
	Identificador   string
	Nombre          string
	Raza            int
	FechaNacimiento string // YYYY-MM-DD
	PesoActual      *float64
	TallaActual     *float64

	FotoName string
	FotoData []byte
}

func (f AnimalForm) fields() map[string]string {
	out := map[string]string{
		"identificador":    f.Identificador,
		"nombre":           f.Nombre,
		"fecha_nacimiento": f.FechaNacimiento,
	}
	if f.Raza > 0 {
		out["raza"] = strconv.Itoa(f.Raza)
	}
	if f.PesoActual != nil {
		out["peso_actual"] = strconv.FormatFloat(*f.PesoActual, 'f', -1, 64)
	}
	if f.TallaActual != nil {
		out["talla_actual"] = strconv.FormatFloat(*f.TallaActual, 'f', -1, 64)
	}
	return out
}

func (f AnimalForm) files() []httpclient.FilePart {
	if len(f.FotoData) == 0 {
		return nil
	}
	name := f.FotoName
	if name == "" {
		name = "foto.jpg"
	}
	return []httpclient.FilePart{{Field: "foto", Filename: name, Data: f.FotoData}}
}

func (c *Client) ListAnimals(ctx context.Context) ([]Animal, error) {
	var out []Animal
	if err := c.http.DoJSON(ctx, "GET", "/animals/", nil, nil, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (c *Client) GetAnimal(ctx context.Context, id string) (Animal, error) {
	var out Animal
	if err := c.http.DoJSON(ctx, "GET", "/animals/"+id+"/", nil, nil, &out); err != nil {
		return Animal{}, wrapErr(err)
	}
	return out, nil
}

func (c *Client) CreateAnimal(ctx context.Context, form AnimalForm) (Animal, error) {
	var out Animal
	err := c.http.DoMultipart(ctx, "POST", "/animals/", nil, form.fields(), form.files(), &out)
	if err != nil {
		return Animal{}, wrapErr(err)
	}
	return out, nil
}

func (c *Client) UpdateAnimal(ctx context.Context, id string, form AnimalForm) (Animal, error) {
	var out Animal
	err := c.http.DoMultipart(ctx, "PUT", "/animals/"+id+"/", nil, form.fields(), form.files(), &out)
	if err != nil {
		return Animal{}, wrapErr(err)
	}
	return out, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, id string) error {
	if err := c.http.DoJSON(ctx, "DELETE", "/animals/"+id+"/", nil, nil, nil); err != nil {
		return wrapErr(err)
	}
	return nil
}
