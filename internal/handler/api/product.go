package api

import (
	"net/http"

	reqdto "rentx-api/internal/handler/dto/request"
	resdto "rentx-api/internal/handler/dto/response"
	"rentx-api/internal/handler/httperr"
	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds commands.ProductCommands
}

func NewProductHandler(cmds commands.ProductCommands) *ProductHandler {
	return &ProductHandler{cmds: cmds}
}

// @Summary Update product stock
// @Description Change total quantity and/or availability of an own product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateStockRequest true "Stock update"
// @Success 200 {object} resdto.ProductStockResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sellerID, _ := middleware.GetUserID(c)
	var req reqdto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request")
		return
	}

	stock, err := h.cmds.UpdateStock(c.Request.Context(), id, sellerID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductStock(stock))
}
