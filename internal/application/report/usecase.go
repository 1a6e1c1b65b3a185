// Package report contiene los casos de uso de solo lectura sobre el libro
// de stock: listado de productos y resumen para el panel.
package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-pisos/internal/application/dto"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/internal/domain/repository"
	"github.com/tu-usuario/stock-pisos/pkg/logger"
)

// LowStockThreshold umbral fijo por debajo del cual un producto cuenta como stock bajo.
const LowStockThreshold = 10

// UseCase consultas de lectura del libro de stock.
//
// Fuente de datos: ProductRepository (listado) y StatsRepository (agregados).
// No requiere transacciones; cada consulta es consistente por sí misma.
type UseCase struct {
	productRepo repository.ProductRepository
	statsRepo   repository.StatsRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, statsRepo repository.StatsRepository, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, statsRepo: statsRepo, log: log}
}

// ListProducts devuelve todos los productos, el actualizado más recientemente primero.
func (uc *UseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List()
}

// GetStats construye el resumen del panel.
//
// Cuatro consultas en paralelo:
//  1. CountProducts        → TotalProducts
//  2. TotalStock           → TotalStock (0 si no hay filas)
//  3. CountLowStock(10)    → LowStock
//  4. FloorTotals          → FloorStats
//
// Si FloorTotals falla se degrada a un desglose vacío y la respuesta sigue
// siendo exitosa; un fallo en las consultas escalares sí propaga error.
func (uc *UseCase) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type floorsResult struct {
		totals []repository.FloorTotal
		err    error
	}

	productsCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	floorsCh := make(chan floorsResult, 1)

	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.TotalStock(ctx)
		stockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLowStock(ctx, LowStockThreshold)
		lowCh <- countResult{n, err}
	}()
	go func() {
		totals, err := uc.statsRepo.FloorTotals(ctx)
		floorsCh <- floorsResult{totals, err}
	}()

	products := <-productsCh
	stock := <-stockCh
	low := <-lowCh
	floors := <-floorsCh

	if products.err != nil {
		return nil, fmt.Errorf("stats: total de productos: %w", products.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("stats: stock total: %w", stock.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("stats: stock bajo: %w", low.err)
	}

	floorStats := make([]dto.FloorStatDTO, 0, len(floors.totals))
	if floors.err != nil {
		// Lectura degradada: el desglose por piso queda vacío
		uc.log.Warn().Err(floors.err).Msg("stats: desglose por piso no disponible")
	} else {
		for _, ft := range floors.totals {
			floorStats = append(floorStats, dto.FloorStatDTO{Floor: ft.Floor.String(), Stock: ft.Stock})
		}
	}

	return &dto.StatsDTO{
		TotalProducts: products.n,
		TotalStock:    stock.n,
		LowStock:      low.n,
		TodayIn:       0, // agregación por día no implementada
		TodayOut:      0,
		FloorStats:    floorStats,
	}, nil
}
