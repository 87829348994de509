package client

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access string `json:"access"`
}

// Login pide un token con usuario y contraseña y lo persiste en la sesión.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := c.http.DoJSON(ctx, "POST", "/token/", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return wrapErr(err)
	}
	return c.sess.SetToken(resp.Access)
}

// Logout descarta la sesión local. No hay invalidación del lado del
// servidor: el token simplemente expira.
func (c *Client) Logout() error {
	return c.sess.Clear()
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser es la cuenta creada por Register.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register crea una cuenta nueva. No inicia sesión: el caller debe llamar
// a Login después.
func (c *Client) Register(ctx context.Context, username, email, password string) (RegisteredUser, error) {
	var resp RegisteredUser
	err := c.http.DoJSON(ctx, "POST", "/register/", nil, registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return RegisteredUser{}, wrapErr(err)
	}
	return resp, nil
}
