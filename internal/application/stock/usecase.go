package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-pisos/internal/domain"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
	"github.com/tu-usuario/stock-pisos/pkg/logger"
)

// DefaultProductName nombre asignado cuando la entrada no trae productName.
const DefaultProductName = "Producto sin nombre"

// MovementUseCase aplica movimientos unitarios de stock (entrada/salida por piso)
// de forma transaccional: las tres tablas del libro (products, floor_stock,
// stock_logs) se mutan dentro de una sola transacción con Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	notifier Notifier
	log      *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, notifier Notifier, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, notifier: notifier, log: log}
}

// StockInInput entrada para ApplyStockIn. ProductName es opcional.
type StockInInput struct {
	Barcode     string
	ProductName string
	Floor       string
}

// StockOutInput entrada para ApplyStockOut.
type StockOutInput struct {
	Barcode string
	Floor   string
}

// ApplyStockIn registra la entrada de una unidad de un producto en un piso.
//
// Valida barcode y piso antes de tocar la BD. Dentro de la transacción:
// crea el producto si es la primera vez que se ve el código (contadores en 1)
// o incrementa sus totales, hace upsert del stock del piso, relee el producto
// ya mutado y agrega la línea de auditoría con el stock resultante.
// Tras el commit publica la foto del producto a los suscriptores.
func (uc *MovementUseCase) ApplyStockIn(ctx context.Context, in StockInInput) (*entity.Product, error) {
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	floor, err := entity.ParseFloor(in.Floor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result *entity.Product

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		floorRepo repository.FloorStockRepository,
		logRepo repository.StockLogRepository,
	) error {
		// Bloquea la fila del producto para serializar movimientos sobre el mismo código
		product, err := productRepo.GetByBarcodeForUpdate(barcode)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(in.ProductName)
		if product == nil {
			if name == "" {
				name = DefaultProductName
			}
			created := &entity.Product{
				Barcode:      barcode,
				Name:         name,
				CurrentStock: 1,
				TotalIn:      1,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			switch floor {
			case entity.FloorGround:
				created.GroundFloorStock = 1
			case entity.FloorSecond:
				created.SecondFloorStock = 1
			case entity.FloorThird:
				created.ThirdFloorStock = 1
			}
			if err := productRepo.Create(created); err != nil {
				return err
			}
		} else {
			name = product.Name
			if err := productRepo.ApplyIn(barcode, floor); err != nil {
				return err
			}
		}

		// Upsert del stock del piso: inserta en 1 o suma 1
		fs, err := floorRepo.GetForUpdate(barcode, floor)
		if err != nil {
			return err
		}
		fs.Stock++
		fs.ProductName = name
		fs.UpdatedAt = now
		if err := floorRepo.Upsert(fs); err != nil {
			return err
		}

		// Relee el producto ya mutado para la respuesta y el log
		product, err = productRepo.GetByBarcode(barcode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		entry := &entity.StockLog{
			ID:          uuid.New().String(),
			Barcode:     barcode,
			ProductName: product.Name,
			Action:      entity.ActionIn,
			Quantity:    1,
			Floor:       floor,
			NewStock:    product.CurrentStock,
			CreatedAt:   now,
		}
		if err := logRepo.Append(entry); err != nil {
			return err
		}

		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("barcode", barcode).
		Str("floor", floor.String()).
		Int("stock", result.CurrentStock).
		Msg("entrada de stock registrada")
	uc.notifier.Notify(result)
	return result, nil
}

// ApplyStockOut registra la salida de una unidad de un producto desde un piso.
//
// Dentro de la transacción: bloquea la fila de floor_stock; si no existe o su
// stock es 0 devuelve ErrInsufficientStock sin escribir nada. Si hay stock,
// decrementa el piso, actualiza los totales del producto y relee la fila mutada.
// Tras el commit publica la foto del producto a los suscriptores.
func (uc *MovementUseCase) ApplyStockOut(ctx context.Context, in StockOutInput) (*entity.Product, error) {
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	floor, err := entity.ParseFloor(in.Floor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result *entity.Product

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		floorRepo repository.FloorStockRepository,
		logRepo repository.StockLogRepository,
	) error {
		// Bloquea la fila del piso (SELECT FOR UPDATE); Stock 0 si no existe
		fs, err := floorRepo.GetForUpdate(barcode, floor)
		if err != nil {
			return err
		}
		if fs.Stock <= 0 {
			return domain.ErrInsufficientStock
		}

		fs.Stock--
		fs.UpdatedAt = now
		if err := floorRepo.Upsert(fs); err != nil {
			return err
		}
		if err := productRepo.ApplyOut(barcode, floor); err != nil {
			return err
		}

		product, err := productRepo.GetByBarcode(barcode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// La salida no escribe en stock_logs.
		// TODO: confirmar con el dueño del producto si la salida también debe auditarse.
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("barcode", barcode).
		Str("floor", floor.String()).
		Int("stock", result.CurrentStock).
		Msg("salida de stock registrada")
	uc.notifier.Notify(result)
	return result, nil
}
