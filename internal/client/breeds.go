package client

import "context"

// Breed es una raza del catálogo. El catálogo es de solo lectura para el
// cliente; se pide una vez y se cachea en el store.
type Breed struct {
	ID           int      `json:"id"`
	Nombre       string   `json:"nombre"`
	PesoIdealMin *float64 `json:"peso_ideal_min"`
	PesoIdealMax *float64 `json:"peso_ideal_max"`
	TallaIdeal   *float64 `json:"talla_ideal"`
	CapaColores  string   `json:"capa_colores"`
}

func (c *Client) ListBreeds(ctx context.Context) ([]Breed, error) {
	var out []Breed
	if err := c.http.DoJSON(ctx, "GET", "/breeds/", nil, nil, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}
