package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-pisos/internal/application/dto"
	"github.com/tu-usuario/stock-pisos/internal/application/stock"
	"github.com/tu-usuario/stock-pisos/internal/domain"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
)

// StockService operaciones de movimiento que consume el handler.
// *stock.MovementUseCase lo implementa; en tests se sustituye por un stub.
type StockService interface {
	ApplyStockIn(ctx context.Context, in stock.StockInInput) (*entity.Product, error)
	ApplyStockOut(ctx context.Context, in stock.StockOutInput) (*entity.Product, error)
}

// StockHandler maneja las peticiones HTTP de movimientos de stock.
type StockHandler struct {
	svc StockService
}

// NewStockHandler construye el handler.
func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// ScanIn godoc
// @Summary      Registrar entrada de una unidad
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanInRequest  true  "barcode, productName (opcional), floor"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/scan-in [post]
func (h *StockHandler) ScanIn(c *fiber.Ctx) error {
	var in dto.ScanInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("cuerpo inválido"))
	}
	product, err := h.svc.ApplyStockIn(c.Context(), stock.StockInInput{
		Barcode:     in.Barcode,
		ProductName: in.ProductName,
		Floor:       in.Floor,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: dto.ProductFromEntity(product)})
}

// ScanOut godoc
// @Summary      Registrar salida de una unidad
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanOutRequest  true  "barcode, floor"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/scan-out [post]
func (h *StockHandler) ScanOut(c *fiber.Ctx) error {
	var in dto.ScanOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("cuerpo inválido"))
	}
	product, err := h.svc.ApplyStockOut(c.Context(), stock.StockOutInput{
		Barcode: in.Barcode,
		Floor:   in.Floor,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: dto.ProductFromEntity(product)})
}

// movementError mapea errores de dominio a códigos HTTP.
// El stock insuficiente es un rechazo de negocio, no un fallo del sistema: 400.
func movementError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("barcode y floor son obligatorios"))
	case domain.ErrUnknownFloor:
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("piso desconocido"))
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("stock insuficiente"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(err.Error()))
}
