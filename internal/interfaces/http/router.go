package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-pisos/internal/application/report"
	"github.com/tu-usuario/stock-pisos/internal/application/stock"
	"github.com/tu-usuario/stock-pisos/internal/infrastructure/push"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Movements *stock.MovementUseCase
	Reports   *report.UseCase
	Hub       *push.Hub
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movimientos de stock
	stockHandler := NewStockHandler(deps.Movements)
	api.Post("/scan-in", stockHandler.ScanIn)
	api.Post("/scan-out", stockHandler.ScanOut)

	// Listado y panel
	reportHandler := NewReportHandler(deps.Reports)
	api.Get("/products", reportHandler.ListProducts)
	api.Get("/stats", reportHandler.GetStats)

	// Canal en vivo
	app.Use("/ws", LiveUpgrade)
	app.Get("/ws", LiveHandler(deps.Hub))
}
