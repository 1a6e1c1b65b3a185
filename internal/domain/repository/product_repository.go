package repository

import "github.com/tu-usuario/stock-pisos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
// Los métodos de mutación se usan dentro de transacciones (TxRunner).
type ProductRepository interface {
	// GetByBarcode devuelve el producto o nil si no existe.
	GetByBarcode(barcode string) (*entity.Product, error)
	// GetByBarcodeForUpdate bloquea la fila del producto (SELECT FOR UPDATE)
	// para serializar movimientos concurrentes sobre el mismo código.
	GetByBarcodeForUpdate(barcode string) (*entity.Product, error)
	// Create persiste un producto nuevo con sus contadores iniciales.
	Create(product *entity.Product) error
	// ApplyIn incrementa total_in, current_stock y el contador del piso, en 1.
	ApplyIn(barcode string, floor entity.Floor) error
	// ApplyOut incrementa total_out y decrementa current_stock y el contador del piso, en 1.
	ApplyOut(barcode string, floor entity.Floor) error
	// List devuelve todos los productos, el actualizado más recientemente primero.
	List() ([]*entity.Product, error)
}
