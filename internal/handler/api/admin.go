package api

import (
	"net/http"

	reqdto "rentx-api/internal/handler/dto/request"
	resdto "rentx-api/internal/handler/dto/response"
	"rentx-api/internal/handler/httperr"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	rentals queries.AdminRentalQueries
}

func NewAdminHandler(rentals queries.AdminRentalQueries) *AdminHandler {
	return &AdminHandler{rentals: rentals}
}

// @Summary List rentals
// @Description All rentals matching the filters, newest first, with a summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param statusGroup query string false "ongoing or completed; wins over status"
// @Param status query string false "Exact status"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param month query int false "Month 1-12, with year"
// @Param year query int false "Year, with month"
// @Param sellerId query string false "Seller ID"
// @Param buyerId query string false "Buyer ID"
// @Param productId query string false "Product ID"
// @Success 200 {object} resdto.AdminRentalsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/rentals [get]
func (h *AdminHandler) ListRentals(c *gin.Context) {
	var q reqdto.AdminRentalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Invalid query")
		return
	}
	params, err := q.ToParams()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	rentals, err := h.rentals.ListRentals(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAdminRentals(rentals)
	if err != nil {
		httperr.Abort(c, errs.Internal(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
