package repository

import "github.com/tu-usuario/stock-pisos/internal/domain/entity"

// StockLogRepository define el puerto del log de auditoría de movimientos.
// El log es append-only: no hay update ni delete.
type StockLogRepository interface {
	Append(log *entity.StockLog) error
}
