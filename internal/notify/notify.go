// Package notify encola las notificaciones que la interfaz muestra al
// usuario (operación exitosa, error del backend, avisos).
package notify

import "sync"

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

type Notification struct {
	Severity Severity
	Message  string
}

// Center acumula notificaciones pendientes de mostrar. Seguro para uso
// concurrente: las operaciones del store publican desde goroutines.
type Center struct {
	mu      sync.Mutex
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Publish(sev Severity, msg string) {
	if msg == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Notification{Severity: sev, Message: msg})
}

func (c *Center) Successf(msg string) { c.Publish(Success, msg) }
func (c *Center) Errorf(msg string)   { c.Publish(Error, msg) }
func (c *Center) Infof(msg string)    { c.Publish(Info, msg) }

// Drain devuelve las notificaciones pendientes y vacía la cola.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.pending
	c.pending = nil
	return out
}
