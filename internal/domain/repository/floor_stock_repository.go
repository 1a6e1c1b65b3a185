package repository

import "github.com/tu-usuario/stock-pisos/internal/domain/entity"

// FloorStockRepository define el puerto para el stock por (barcode, piso).
// Usado dentro de transacciones para garantizar consistencia con products.
type FloorStockRepository interface {
	Get(barcode string, floor entity.Floor) (*entity.FloorStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Si la fila no existe devuelve un FloorStock con Stock 0.
	GetForUpdate(barcode string, floor entity.Floor) (*entity.FloorStock, error)
	Upsert(fs *entity.FloorStock) error
}
