package repository

import (
	"context"

	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
)

// FloorTotal resultado crudo del agregado de stock por piso.
type FloorTotal struct {
	Floor entity.Floor
	Stock int
}

// StatsRepository define las consultas de lectura para el panel de stock.
// Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	// CountProducts devuelve el número de productos distintos.
	CountProducts(ctx context.Context) (int, error)
	// TotalStock devuelve la suma de current_stock (0 si no hay filas).
	TotalStock(ctx context.Context) (int, error)
	// CountLowStock devuelve cuántos productos tienen current_stock < threshold.
	CountLowStock(ctx context.Context, threshold int) (int, error)
	// FloorTotals devuelve el stock agregado por piso (GROUP BY floor).
	FloorTotals(ctx context.Context) ([]FloorTotal, error)
}
