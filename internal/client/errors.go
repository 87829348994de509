package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"livestock-records/internal/platform/httpclient"
)

// APIError es una respuesta no-2xx del backend. Detail trae el mensaje del
// campo "detail" cuando el backend lo manda, o el cuerpo crudo si no.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status=%d", e.Status)
	}
	return fmt.Sprintf("api error: status=%d detail=%s", e.Status, e.Detail)
}

// Unauthorized indica si el error es un 401 (sesión expirada o inválida).
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// wrapErr traduce los errores del transporte al error del SDK.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		detail := httpErr.Body
		var body struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal([]byte(httpErr.Body), &body) == nil && body.Detail != "" {
			detail = body.Detail
		}
		return &APIError{Status: httpErr.StatusCode, Detail: detail}
	}

	// Error de red o de contexto: se propaga envuelto para que el caller
	// distinga "backend dijo que no" de "no llegué al backend".
	return fmt.Errorf("client: request failed: %w", err)
}
