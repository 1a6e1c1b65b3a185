package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-pisos/internal/domain"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `barcode, name, current_stock, total_in, total_out,
		ground_floor_stock, second_floor_stock, third_floor_stock, created_at, updated_at`

// Sentencias estáticas por piso. El piso nunca se interpola en el SQL:
// el switch sobre entity.Floor elige la sentencia completa.
const (
	applyInGround = `
		UPDATE products SET total_in = total_in + 1, current_stock = current_stock + 1,
			ground_floor_stock = ground_floor_stock + 1, updated_at = now()
		WHERE barcode = $1`
	applyInSecond = `
		UPDATE products SET total_in = total_in + 1, current_stock = current_stock + 1,
			second_floor_stock = second_floor_stock + 1, updated_at = now()
		WHERE barcode = $1`
	applyInThird = `
		UPDATE products SET total_in = total_in + 1, current_stock = current_stock + 1,
			third_floor_stock = third_floor_stock + 1, updated_at = now()
		WHERE barcode = $1`

	applyOutGround = `
		UPDATE products SET total_out = total_out + 1, current_stock = current_stock - 1,
			ground_floor_stock = ground_floor_stock - 1, updated_at = now()
		WHERE barcode = $1`
	applyOutSecond = `
		UPDATE products SET total_out = total_out + 1, current_stock = current_stock - 1,
			second_floor_stock = second_floor_stock - 1, updated_at = now()
		WHERE barcode = $1`
	applyOutThird = `
		UPDATE products SET total_out = total_out + 1, current_stock = current_stock - 1,
			third_floor_stock = third_floor_stock - 1, updated_at = now()
		WHERE barcode = $1`
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo con sus contadores iniciales.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (barcode, name, current_stock, total_in, total_out,
			ground_floor_stock, second_floor_stock, third_floor_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.Barcode, product.Name, product.CurrentStock, product.TotalIn, product.TotalOut,
		product.GroundFloorStock, product.SecondFloorStock, product.ThirdFloorStock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByBarcode obtiene un producto por código de barras, o nil si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode))
}

// GetByBarcodeForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetByBarcodeForUpdate(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.Barcode, &p.Name, &p.CurrentStock, &p.TotalIn, &p.TotalOut,
		&p.GroundFloorStock, &p.SecondFloorStock, &p.ThirdFloorStock,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ApplyIn incrementa total_in, current_stock y el contador del piso, en 1.
func (r *ProductRepo) ApplyIn(barcode string, floor entity.Floor) error {
	var query string
	switch floor {
	case entity.FloorGround:
		query = applyInGround
	case entity.FloorSecond:
		query = applyInSecond
	case entity.FloorThird:
		query = applyInThird
	default:
		return domain.ErrUnknownFloor
	}
	cmd, err := r.q.Exec(context.Background(), query, barcode)
	if err != nil {
		return fmt.Errorf("apply in: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyOut incrementa total_out y decrementa current_stock y el contador del piso, en 1.
func (r *ProductRepo) ApplyOut(barcode string, floor entity.Floor) error {
	var query string
	switch floor {
	case entity.FloorGround:
		query = applyOutGround
	case entity.FloorSecond:
		query = applyOutSecond
	case entity.FloorThird:
		query = applyOutThird
	default:
		return domain.ErrUnknownFloor
	}
	cmd, err := r.q.Exec(context.Background(), query, barcode)
	if err != nil {
		return fmt.Errorf("apply out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos, el actualizado más recientemente primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.Barcode, &p.Name, &p.CurrentStock, &p.TotalIn, &p.TotalOut,
			&p.GroundFloorStock, &p.SecondFloorStock, &p.ThirdFloorStock,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
