package entity

import "github.com/tu-usuario/stock-pisos/internal/domain"

// Floor es la enumeración cerrada de pisos de la bodega. Cada valor tiene su
// propia columna contadora en products; el mapeo piso → columna se resuelve
// por switch sobre este tipo, nunca interpolando el nombre en el SQL.
type Floor string

const (
	FloorGround Floor = "Ground Floor"
	FloorSecond Floor = "2nd Floor"
	FloorThird  Floor = "3rd Floor"
)

// Floors devuelve todos los pisos válidos, en orden físico.
func Floors() []Floor {
	return []Floor{FloorGround, FloorSecond, FloorThird}
}

// ParseFloor valida el nombre de piso recibido en la frontera HTTP.
// Cualquier valor fuera del conjunto cerrado se rechaza antes de tocar la BD.
func ParseFloor(s string) (Floor, error) {
	switch Floor(s) {
	case FloorGround, FloorSecond, FloorThird:
		return Floor(s), nil
	}
	return "", domain.ErrUnknownFloor
}

// String implementa fmt.Stringer.
func (f Floor) String() string { return string(f) }
