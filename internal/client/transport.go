package client

import (
	"net/http"

	"livestock-records/internal/session"
)

// authTransport agrega el header Authorization con el token de la sesión a
// cada request saliente, y limpia la sesión cuando el backend responde 401.
// Es el equivalente de los interceptores de request/response del cliente web.
type authTransport struct {
	base http.RoundTripper
	sess *session.Store
}

func newAuthTransport(base http.RoundTripper, sess *session.Store) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, sess: sess}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := t.sess.Token(); tok != "" && req.Header.Get("Authorization") == "" {
		// Clonar antes de mutar: RoundTrip no debe modificar el request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token vencido o revocado: la próxima operación arranca sin sesión.
		_ = t.sess.Clear()
	}
	return resp, nil
}
