// Package session guarda el token de acceso entre ejecuciones de la CLI,
// en un archivo del directorio de configuración del usuario. Cumple el rol
// que en el navegador tendría el localStorage.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	appDir    = "livestock-records"
	tokenFile = "authToken"
)

// Store maneja el token persistido. Es seguro para uso concurrente.
type Store struct {
	mu   sync.RWMutex
	path string

	// cache del token ya leído; "" significa no cargado o ausente
	token  string
	loaded bool
}

// New crea un Store sobre el directorio de configuración del usuario.
func New() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("session: resolving config dir: %w", err)
	}
	return NewAt(filepath.Join(dir, appDir, tokenFile)), nil
}

// NewAt crea un Store sobre una ruta explícita (para tests).
func NewAt(path string) *Store {
	return &Store{path: path}
}

// Token devuelve el token guardado, o "" si no hay sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.token
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.token
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.token = ""
	} else {
		s.token = strings.TrimSpace(string(raw))
	}
	s.loaded = true
	return s.token
}

// SetToken persiste el token y actualiza la cache.
func (s *Store) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("session: empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: creating config dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: writing token: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

// Clear borra la sesión. Es idempotente: limpiar sin sesión no es error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clearing token: %w", err)
	}
	return nil
}

// Authenticated indica si hay un token guardado. No valida su vigencia:
// eso lo decide el servidor en la primera petición.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}
