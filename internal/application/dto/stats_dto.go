package dto

// FloorStatDTO stock agregado de un piso.
type FloorStatDTO struct {
	Floor string `json:"floor"`
	Stock int    `json:"stock"`
}

// StatsDTO resumen del panel de stock.
// TodayIn/TodayOut se reportan siempre en 0: la agregación por día
// no está implementada y el frontend ya espera el campo.
type StatsDTO struct {
	TotalProducts int            `json:"totalProducts"`
	TotalStock    int            `json:"totalStock"`
	LowStock      int            `json:"lowStock"`
	TodayIn       int            `json:"todayIn"`
	TodayOut      int            `json:"todayOut"`
	FloorStats    []FloorStatDTO `json:"floorStats"`
}

// StatsResponse respuesta de GET /api/stats.
type StatsResponse struct {
	Success bool     `json:"success"`
	Stats   StatsDTO `json:"stats"`
}
