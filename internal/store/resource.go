// Package store mantiene el estado remoto cacheado del cliente: por cada
// recurso guarda los items, si hay una carga en vuelo y el último error.
// Las mutaciones parchan la copia local en vez de recargar la lista.
package store

import "sync"

// Ticket identifica una carga en vuelo. Solo el ticket más reciente puede
// resolver el recurso: respuestas de cargas viejas se descartan.
type Ticket uint64

// Resource es el estado cacheado de una colección remota.
type Resource[T any] struct {
	mu sync.RWMutex

	items   []T
	loading bool
	err     error

	seq Ticket // último ticket emitido

	id func(T) string // extrae la clave para ReplaceByID / RemoveByID
}

// NewResource crea un Resource vacío. id extrae la clave de un item.
func NewResource[T any](id func(T) string) *Resource[T] {
	return &Resource[T]{id: id}
}

// Begin marca el inicio de una carga: enciende loading, limpia el error
// anterior y devuelve el ticket que debe usarse al resolver. Los items
// actuales se conservan mientras tanto (stale-while-revalidate).
func (r *Resource[T]) Begin() Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.loading = true
	r.err = nil
	return r.seq
}

// Resolve cierra la carga identificada por t. Si t no es el ticket más
// reciente la respuesta llegó tarde y se descarta. Con err nil reemplaza
// los items; con err los items previos quedan intactos.
func (r *Resource[T]) Resolve(t Ticket, items []T, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t != r.seq {
		return false
	}

	r.loading = false
	if err != nil {
		r.err = err
		return true
	}
	r.err = nil
	r.items = items
	return true
}

// Items devuelve una copia de los items actuales.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Len evita copiar cuando solo interesa el tamaño.
func (r *Resource[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Insert agrega un item al final (alta confirmada por el backend).
func (r *Resource[T]) Insert(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// ReplaceByID sustituye el item con la misma clave. Si no está, lo agrega:
// el backend ya lo confirmó, así que la copia local no debe perderlo.
func (r *Resource[T]) ReplaceByID(item T) {
	key := r.id(item)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.id(r.items[i]) == key {
			r.items[i] = item
			return
		}
	}
	r.items = append(r.items, item)
}

// RemoveByID saca el item con esa clave. Quitar una clave ausente no es error.
func (r *Resource[T]) RemoveByID(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.items[:0]
	for _, it := range r.items {
		if r.id(it) != key {
			out = append(out, it)
		}
	}
	r.items = out
}

// Patch aplica fn a cada item in situ (p.ej. marcar una alerta como leída).
func (r *Resource[T]) Patch(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		fn(&r.items[i])
	}
}

// Reset vuelve al estado inicial (al cerrar sesión). Invalida los tickets
// en vuelo: sus respuestas se descartarán.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.items = nil
	r.loading = false
	r.err = nil
}
