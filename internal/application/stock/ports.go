package stock

import (
	"context"

	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del libro de stock:
// products, floor_stock y stock_logs se escriben todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		floorRepo repository.FloorStockRepository,
		logRepo repository.StockLogRepository,
	) error) error
}

// Notifier publica la foto del producto tras cada movimiento confirmado.
// Fire-and-forget: nunca bloquea ni hace fallar el movimiento que lo origina.
type Notifier interface {
	Notify(product *entity.Product)
}
