package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el panel de stock.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountProducts devuelve el número de productos distintos.
func (r *StatsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountProducts: %w", err)
	}
	return n, nil
}

// TotalStock devuelve la suma de current_stock.
// Usa COALESCE para devolver cero si no hay filas.
func (r *StatsRepo) TotalStock(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(current_stock), 0) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.TotalStock: %w", err)
	}
	return n, nil
}

// CountLowStock devuelve cuántos productos tienen current_stock por debajo del umbral.
func (r *StatsRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE current_stock < $1`, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountLowStock: %w", err)
	}
	return n, nil
}

// FloorTotals devuelve el stock agregado por piso sobre floor_stock.
func (r *StatsRepo) FloorTotals(ctx context.Context) ([]repository.FloorTotal, error) {
	const query = `
		SELECT floor, COALESCE(SUM(stock), 0) AS stock
		FROM floor_stock
		GROUP BY floor
		ORDER BY floor`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.FloorTotals: %w", err)
	}
	defer rows.Close()

	var totals []repository.FloorTotal
	for rows.Next() {
		var floor string
		var stock int
		if err := rows.Scan(&floor, &stock); err != nil {
			return nil, fmt.Errorf("stats.FloorTotals scan: %w", err)
		}
		totals = append(totals, repository.FloorTotal{Floor: entity.Floor(floor), Stock: stock})
	}
	return totals, rows.Err()
}
