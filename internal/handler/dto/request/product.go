package request

import "rentx-api/internal/usecase/commands"

type UpdateStockRequest struct {
	Quantity    *int  `json:"quantity"`
	IsAvailable *bool `json:"isAvailable"`
}

func (r UpdateStockRequest) ToInput() commands.UpdateStockInput {
	return commands.UpdateStockInput{Quantity: r.Quantity, IsAvailable: r.IsAvailable}
}
