package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
)

var _ repository.FloorStockRepository = (*FloorStockRepo)(nil)

// FloorStockRepo implementación de FloorStockRepository sobre PostgreSQL (usable con pool o tx).
type FloorStockRepo struct {
	q Querier
}

// NewFloorStockRepository construye el adaptador de stock por piso. Pasar pool o tx (Querier).
func NewFloorStockRepository(q Querier) *FloorStockRepo {
	return &FloorStockRepo{q: q}
}

// Get obtiene el stock actual de un producto en un piso.
func (r *FloorStockRepo) Get(barcode string, floor entity.Floor) (*entity.FloorStock, error) {
	query := `
		SELECT barcode, floor, product_name, stock, updated_at
		FROM floor_stock WHERE barcode = $1 AND floor = $2`
	var fs entity.FloorStock
	err := r.q.QueryRow(context.Background(), query, barcode, string(floor)).Scan(
		&fs.Barcode, &fs.Floor, &fs.ProductName, &fs.Stock, &fs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.FloorStock{Barcode: barcode, Floor: floor, Stock: 0}, nil
		}
		return nil, fmt.Errorf("get floor stock: %w", err)
	}
	return &fs, nil
}

// GetForUpdate obtiene el stock del piso y bloquea la fila (SELECT FOR UPDATE).
// Si la fila no existe devuelve un FloorStock con Stock 0.
func (r *FloorStockRepo) GetForUpdate(barcode string, floor entity.Floor) (*entity.FloorStock, error) {
	query := `
		SELECT barcode, floor, product_name, stock, updated_at
		FROM floor_stock WHERE barcode = $1 AND floor = $2
		FOR UPDATE`
	var fs entity.FloorStock
	err := r.q.QueryRow(context.Background(), query, barcode, string(floor)).Scan(
		&fs.Barcode, &fs.Floor, &fs.ProductName, &fs.Stock, &fs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.FloorStock{Barcode: barcode, Floor: floor, Stock: 0}, nil
		}
		return nil, fmt.Errorf("get floor stock for update: %w", err)
	}
	return &fs, nil
}

// Upsert inserta o actualiza el stock del piso (por barcode y piso).
func (r *FloorStockRepo) Upsert(fs *entity.FloorStock) error {
	query := `
		INSERT INTO floor_stock (barcode, floor, product_name, stock, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (barcode, floor)
		DO UPDATE SET stock = EXCLUDED.stock, product_name = EXCLUDED.product_name, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, fs.Barcode, string(fs.Floor), fs.ProductName, fs.Stock)
	if err != nil {
		return fmt.Errorf("upsert floor stock: %w", err)
	}
	return nil
}
