package client

import (
	"context"

	"livestock-records/internal/domain/dashboard"
)

// DashboardScores trae los agregados del tablero: promedios por raza y
// ejemplares calificados recientemente.
func (c *Client) DashboardScores(ctx context.Context) (dashboard.Data, error) {
	var out dashboard.Data
	if err := c.http.DoJSON(ctx, "GET", "/dashboard/scores/", nil, nil, &out); err != nil {
		return dashboard.Data{}, wrapErr(err)
	}
	return out, nil
}
