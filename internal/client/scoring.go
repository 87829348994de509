package client

import (
	"context"
	"strconv"

	"livestock-records/internal/domain/scoring"
)

// ScoreTemplate trae la rúbrica de calificación de una raza. El wire format
// coincide con scoring.Template, así que el motor de puntaje local puede
// operar directo sobre la respuesta.
func (c *Client) ScoreTemplate(ctx context.Context, breedID int) (scoring.Template, error) {
	var tpl scoring.Template
	path := "/score-templates/breed/" + strconv.Itoa(breedID) + "/"
	if err := c.http.DoJSON(ctx, "GET", path, nil, nil, &tpl); err != nil {
		return scoring.Template{}, wrapErr(err)
	}
	tpl.BreedID = breedID
	return tpl, nil
}

// SubmitResult es la confirmación del backend tras guardar un lote de
// calificaciones. ScoreTotal es el puntaje normalizado que persistió.
type SubmitResult struct {
	Message    string  `json:"message"`
	ScoreTotal float64 `json:"score_total"`
}

// SubmitScores manda el lote de calificaciones de una sesión de puntaje.
func (c *Client) SubmitScores(ctx context.Context, animalID string, items []scoring.ScoreItem) (SubmitResult, error) {
	var out SubmitResult
	err := c.http.DoJSON(ctx, "POST", "/animals/"+animalID+"/scores/", nil,
		scoring.Submission{Scores: items}, &out)
	if err != nil {
		return SubmitResult{}, wrapErr(err)
	}
	return out, nil
}
