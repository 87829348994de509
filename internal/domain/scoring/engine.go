package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber        = errors.New("invalid number")
	ErrOrphanCharacteristic = errors.New("characteristic references unknown category")
)

// Index resuelve la relación categoría -> características una sola vez por
// plantilla cargada, en lugar de escanear la lista en cada cálculo.
type Index struct {
	byCategory map[int][]Characteristic
	byID       map[int]Characteristic
}

// BuildIndex arma el índice de una plantilla. Falla si alguna característica
// referencia una categoría que no existe en la plantilla (FK huérfana).
func BuildIndex(t Template) (Index, error) {
	known := make(map[int]bool, len(t.Categories))
	for _, c := range t.Categories {
		known[c.ID] = true
	}

	idx := Index{
		byCategory: make(map[int][]Characteristic, len(t.Categories)),
		byID:       make(map[int]Characteristic, len(t.Characteristics)),
	}

	for _, ch := range t.Characteristics {
		if !known[ch.CategoriaID] {
			return Index{}, fmt.Errorf("%w: caracteristica=%d categoria=%d",
				ErrOrphanCharacteristic, ch.ID, ch.CategoriaID)
		}
		idx.byCategory[ch.CategoriaID] = append(idx.byCategory[ch.CategoriaID], ch)
		idx.byID[ch.ID] = ch
	}

	return idx, nil
}

// Characteristics devuelve las características de una categoría (puede ser vacío).
func (i Index) Characteristics(categoryID int) []Characteristic {
	return i.byCategory[categoryID]
}

// Characteristic busca una característica por id.
func (i Index) Characteristic(id int) (Characteristic, bool) {
	ch, ok := i.byID[id]
	return ch, ok
}

// CategorySubtotal suma los valores crudos presentes en entries para las
// características de una categoría. Lo ausente aporta 0.
func (i Index) CategorySubtotal(categoryID int, entries Entries) float64 {
	var sum float64
	for _, ch := range i.byCategory[categoryID] {
		if v, ok := entries[ch.ID]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
		}
	}
	return sum
}

// ComputeFinalScore calcula el puntaje final ponderado de una sesión:
// por cada categoría, subtotal * (ponderacion/100), sumado y redondeado a
// 2 decimales. Es pura y total: cualquier entries (incluso vacío) produce
// un resultado sin error.
func ComputeFinalScore(t Template, entries Entries) float64 {
	idx, err := BuildIndex(t)
	if err != nil {
		// Con FK huérfana igual calculamos sobre lo que sí resuelve:
		// las huérfanas no pertenecen a ninguna categoría y no aportan.
		idx = lenientIndex(t)
	}
	return ComputeFinalScoreIndexed(t, idx, entries)
}

// ComputeFinalScoreIndexed es la variante para quien ya construyó el índice
// (una vez por plantilla cargada).
func ComputeFinalScoreIndexed(t Template, idx Index, entries Entries) float64 {
	var total float64
	for _, c := range t.Categories {
		subtotal := idx.CategorySubtotal(c.ID, entries)
		total += subtotal * float64(c.Ponderacion) / 100
	}
	return round2(total)
}

// NormalizedScore es la fórmula que el backend persiste como score_total del
// ejemplar: cada valor obtenido se normaliza contra su puntaje ideal, se
// pondera por categoría y se escala a 0-100.
func NormalizedScore(t Template, entries Entries) float64 {
	idx, err := BuildIndex(t)
	if err != nil {
		idx = lenientIndex(t)
	}

	var total, possible float64
	for _, c := range t.Categories {
		for _, ch := range idx.Characteristics(c.ID) {
			v, ok := entries[ch.ID]
			if !ok || ch.PuntajeIdeal == 0 {
				continue
			}
			total += (v / ch.PuntajeIdeal) * float64(c.Ponderacion)
			possible += float64(c.Ponderacion)
		}
	}
	if possible == 0 {
		return 0
	}
	return round2(total / possible * 100)
}

// Completeness informa qué características de la plantilla siguen sin valor.
// La política de cálculo trata lo ausente como 0; quien quiera exigir
// completitud antes de enviar usa esto.
func Completeness(t Template, entries Entries) (missing []Characteristic) {
	for _, ch := range t.Characteristics {
		if _, ok := entries[ch.ID]; !ok {
			missing = append(missing, ch)
		}
	}
	return missing
}

// WeightsSumTo100 verifica el invariante de la plantilla: las ponderaciones
// de las categorías suman exactamente 100.
func WeightsSumTo100(t Template) bool {
	sum := 0
	for _, c := range t.Categories {
		sum += c.Ponderacion
	}
	return sum == 100
}

// EntryValidation es el resultado de validar un valor crudo contra su
// característica. OutOfRange es informativo, no bloquea el envío.
type EntryValidation struct {
	Value      float64
	OutOfRange bool
}

// ValidateEntry parsea y valida un valor crudo. Acepta string numérico;
// falla con ErrInvalidNumber si no es un número finito. Un valor fuera de
// [rango_aceptado_min, rango_aceptado_max] se marca pero se acepta.
func ValidateEntry(ch Characteristic, raw string) (EntryValidation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return EntryValidation{}, ErrInvalidNumber
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return EntryValidation{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	return EntryValidation{
		Value:      v,
		OutOfRange: v < ch.RangoAceptadoMin || v > ch.RangoAceptadoMax,
	}, nil
}

// lenientIndex ignora características huérfanas en vez de fallar.
func lenientIndex(t Template) Index {
	known := make(map[int]bool, len(t.Categories))
	for _, c := range t.Categories {
		known[c.ID] = true
	}

	idx := Index{
		byCategory: make(map[int][]Characteristic, len(t.Categories)),
		byID:       make(map[int]Characteristic, len(t.Characteristics)),
	}
	for _, ch := range t.Characteristics {
		if !known[ch.CategoriaID] {
			continue
		}
		idx.byCategory[ch.CategoriaID] = append(idx.byCategory[ch.CategoriaID], ch)
		idx.byID[ch.ID] = ch
	}
	return idx
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
