package api

import (
	"net/http"

	resdto "rentx-api/internal/handler/dto/response"
	"rentx-api/internal/handler/httperr"
	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	q queries.EarningsQueries
}

func NewEarningsHandler(q queries.EarningsQueries) *EarningsHandler {
	return &EarningsHandler{q: q}
}

// @Summary Seller earnings
// @Description Income from completed rentals: all time, current month and current year (UTC)
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningsResponse
// @Router /api/earnings [get]
func (h *EarningsHandler) Get(c *gin.Context) {
	sellerID, _ := middleware.GetUserID(c)
	e, err := h.q.GetSellerEarnings(c.Request.Context(), sellerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSellerEarnings(e)
	if err != nil {
		httperr.Abort(c, errs.Internal(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
