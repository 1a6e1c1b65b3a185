package dto

import (
	"time"

	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
)

// ProductDTO representación JSON del producto con sus contadores por piso.
type ProductDTO struct {
	Barcode          string    `json:"barcode"`
	Name             string    `json:"name"`
	CurrentStock     int       `json:"currentStock"`
	TotalIn          int       `json:"totalIn"`
	TotalOut         int       `json:"totalOut"`
	GroundFloorStock int       `json:"groundFloorStock"`
	SecondFloorStock int       `json:"secondFloorStock"`
	ThirdFloorStock  int       `json:"thirdFloorStock"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProductFromEntity mapea la entidad de dominio al DTO.
func ProductFromEntity(p *entity.Product) ProductDTO {
	return ProductDTO{
		Barcode:          p.Barcode,
		Name:             p.Name,
		CurrentStock:     p.CurrentStock,
		TotalIn:          p.TotalIn,
		TotalOut:         p.TotalOut,
		GroundFloorStock: p.GroundFloorStock,
		SecondFloorStock: p.SecondFloorStock,
		ThirdFloorStock:  p.ThirdFloorStock,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ProductResponse respuesta de los endpoints de movimiento.
type ProductResponse struct {
	Success bool       `json:"success"`
	Product ProductDTO `json:"product"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Success  bool         `json:"success"`
	Products []ProductDTO `json:"products"`
}
