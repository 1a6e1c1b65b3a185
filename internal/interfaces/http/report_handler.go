package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-pisos/internal/application/dto"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
)

// ReportService consultas de lectura que consume el handler.
type ReportService interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
}

// ReportHandler maneja los endpoints de listado y panel.
type ReportHandler struct {
	svc ReportService
}

// NewReportHandler construye el handler.
func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ReportHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.svc.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(err.Error()))
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductFromEntity(p))
	}
	return c.JSON(dto.ProductListResponse{Success: true, Products: out})
}

// GetStats godoc
// @Summary      Resumen del panel de stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *ReportHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(err.Error()))
	}
	return c.JSON(dto.StatsResponse{Success: true, Stats: *stats})
}
