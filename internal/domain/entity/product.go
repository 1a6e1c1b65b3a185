package entity

import "time"

// Product representa un producto identificado por código de barras, con sus
// totales acumulados y un contador de stock por piso (columnas desnormalizadas
// que espejan floor_stock).
//
// Invariantes del libro de stock:
//
//	CurrentStock == TotalIn - TotalOut
//	CurrentStock == GroundFloorStock + SecondFloorStock + ThirdFloorStock
type Product struct {
	Barcode          string
	Name             string
	CurrentStock     int
	TotalIn          int
	TotalOut         int
	GroundFloorStock int
	SecondFloorStock int
	ThirdFloorStock  int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StockOnFloor devuelve el contador del piso indicado.
func (p *Product) StockOnFloor(f Floor) int {
	switch f {
	case FloorGround:
		return p.GroundFloorStock
	case FloorSecond:
		return p.SecondFloorStock
	case FloorThird:
		return p.ThirdFloorStock
	}
	return 0
}
