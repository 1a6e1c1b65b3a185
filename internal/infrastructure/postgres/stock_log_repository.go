package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación append-only del log de movimientos sobre PostgreSQL.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador del log. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Append agrega una línea de auditoría. Las filas nunca se actualizan ni se borran.
func (r *StockLogRepo) Append(log *entity.StockLog) error {
	query := `
		INSERT INTO stock_logs (id, barcode, product_name, action, quantity, floor, new_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Barcode, log.ProductName, log.Action, log.Quantity,
		string(log.Floor), log.NewStock, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}
