// Package forms valida la entrada del usuario antes de mandarla al
// backend. Los errores van por campo para poder mostrarlos junto al
// input correspondiente.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldError es un error de validación atado a un campo del formulario.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Errors acumula errores por campo. Un formulario válido produce un
// Errors vacío.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// ByField devuelve el primer error del campo, o "" si el campo es válido.
func (e Errors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Reason
		}
	}
	return ""
}

// AnimalInput son los campos crudos del formulario de ejemplar, tal como
// los tipeó el usuario.
type AnimalInput struct {
	Identificador   string
	Nombre          string
	Raza            string // id numérico de la raza
	FechaNacimiento string // YYYY-MM-DD
	PesoActual      string
	TallaActual     string
}

// AnimalValues es el resultado ya parseado de un AnimalInput válido.
type AnimalValues struct {
	Identificador   string
	Nombre          string
	Raza            int
	FechaNacimiento string
	PesoActual      *float64
	TallaActual     *float64
}

// ValidateAnimal chequea el formulario completo y devuelve los valores
// parseados. now permite fijar "hoy" en tests.
func ValidateAnimal(in AnimalInput, now time.Time) (AnimalValues, Errors) {
	var errs Errors
	var out AnimalValues

	out.Identificador = strings.TrimSpace(in.Identificador)
	if out.Identificador == "" {
		errs = append(errs, FieldError{"identificador", "es obligatorio"})
	}

	out.Nombre = strings.TrimSpace(in.Nombre)

	raza := strings.TrimSpace(in.Raza)
	if raza == "" {
		errs = append(errs, FieldError{"raza", "es obligatoria"})
	} else if id, err := strconv.Atoi(raza); err != nil || id <= 0 {
		errs = append(errs, FieldError{"raza", "debe ser un id de raza válido"})
	} else {
		out.Raza = id
	}

	fecha := strings.TrimSpace(in.FechaNacimiento)
	if fecha == "" {
		errs = append(errs, FieldError{"fecha_nacimiento", "es obligatoria"})
	} else if t, err := time.Parse("2006-01-02", fecha); err != nil {
		errs = append(errs, FieldError{"fecha_nacimiento", "debe tener formato YYYY-MM-DD"})
	} else if t.After(now) {
		errs = append(errs, FieldError{"fecha_nacimiento", "no puede ser futura"})
	} else {
		out.FechaNacimiento = fecha
	}

	var err error
	if out.PesoActual, err = positiveFloat(in.PesoActual); err != nil {
		errs = append(errs, FieldError{"peso_actual", err.Error()})
	}
	if out.TallaActual, err = positiveFloat(in.TallaActual); err != nil {
		errs = append(errs, FieldError{"talla_actual", err.Error()})
	}

	return out, errs
}

// positiveFloat parsea un número opcional que, si viene, debe ser > 0.
func positiveFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("debe ser un número")
	}
	if v <= 0 {
		return nil, fmt.Errorf("debe ser mayor que cero")
	}
	return &v, nil
}
