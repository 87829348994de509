// Package client es el SDK HTTP contra el backend de registros ganaderos.
// Todas las operaciones mandan el bearer token de la sesión activa; un 401
// del backend invalida la sesión local.
package client

import (
	"time"

	"livestock-records/internal/platform/httpclient"
	"livestock-records/internal/session"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	http *httpclient.Client
	sess *session.Store
}

// New crea un Client contra baseURL usando la sesión dada.
func New(baseURL string, sess *session.Store) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, defaultTimeout)
	if err != nil {
		return nil, err
	}
	hc.HTTP.Transport = newAuthTransport(nil, sess)
	return &Client{http: hc, sess: sess}, nil
}

// Session expone la sesión asociada (para login/logout).
func (c *Client) Session() *session.Store {
	return c.sess
}
