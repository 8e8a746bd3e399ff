package response

import (
	"rentx-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductStockResponse struct {
	ProductID         uuid.UUID `json:"productId"`
	Quantity          int       `json:"quantity"`
	RemainingQuantity int       `json:"remainingQuantity"`
	IsAvailable       bool      `json:"isAvailable"`
}

func FromProductStock(p *commands.ProductStock) *ProductStockResponse {
	return &ProductStockResponse{
		ProductID:         p.ProductID,
		Quantity:          p.Quantity,
		RemainingQuantity: p.RemainingQuantity,
		IsAvailable:       p.IsAvailable,
	}
}
