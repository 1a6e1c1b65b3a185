package entity

import "time"

// Acciones registradas en el log de movimientos.
const (
	ActionIn  = "IN"
	ActionOut = "OUT"
)

// StockLog es el registro de auditoría de un movimiento: append-only,
// nunca se actualiza ni se borra. NewStock es la foto del stock total
// del producto inmediatamente después del movimiento.
type StockLog struct {
	ID          string
	Barcode     string
	ProductName string
	Action      string
	Quantity    int
	Floor       Floor
	NewStock    int
	CreatedAt   time.Time
}
