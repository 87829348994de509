// Package media guarda en disco las fotos procesadas de los ejemplares y
// las sirve bajo /media/.
package media

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore escribe las fotos en un directorio local. La ruta devuelta es
// relativa al directorio, nunca absoluta.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Save persiste la imagen ya procesada (siempre JPEG) con un nombre único.
// El nombre original solo se usa como sufijo legible. El directorio se crea
// en la primera escritura.
func (s *DiskStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating media dir: %w", err)
	}

	base := sanitize(name)
	filename := uuid.NewString() + "-" + base + ".jpg"

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return filename, nil
}

// Handler sirve los archivos del directorio de medios.
func (s *DiskStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}

func sanitize(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "foto"
	}
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
