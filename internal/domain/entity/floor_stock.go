package entity

import "time"

// FloorStock representa el stock actual de un producto en un piso
// (clave compuesta barcode + floor). ProductName está desnormalizado
// para listados sin JOIN.
type FloorStock struct {
	Barcode     string
	Floor       Floor
	ProductName string
	Stock       int
	UpdatedAt   time.Time
}
