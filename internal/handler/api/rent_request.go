package api

import (
	"context"
	"net/http"

	"rentx-api/internal/domain/rentrequest"
	reqdto "rentx-api/internal/handler/dto/request"
	resdto "rentx-api/internal/handler/dto/response"
	"rentx-api/internal/handler/httperr"
	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/commands"
	"rentx-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentRequestHandler struct {
	cmds commands.RentRequestCommands
	q    queries.RentRequestQueries
}

func NewRentRequestHandler(cmds commands.RentRequestCommands, q queries.RentRequestQueries) *RentRequestHandler {
	return &RentRequestHandler{cmds: cmds, q: q}
}

// @Summary Create rent request
// @Description Reserve stock of a product for a future date window
// @Tags rent-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentRequestRequest true "Rent request"
// @Success 201 {object} resdto.RentRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rent-requests [post]
func (h *RentRequestHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), in, buyerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/rent-requests/"+result.RentRequestID.String())
	h.respondWithView(c, http.StatusCreated, result.RentRequestID, buyerID)
}

// @Summary Get rent request
// @Description Visible to the buyer and the seller of the request
// @Tags rent-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rent request ID"
// @Success 200 {object} resdto.RentRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rent-requests/{id} [get]
func (h *RentRequestHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)
	h.respondWithView(c, http.StatusOK, id, userID)
}

// @Summary List own rent requests as buyer
// @Tags rent-requests
// @Produce json
// @Security BearerAuth
// @Param statusGroup query string false "ongoing or completed"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RentRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rent-requests/buyer [get]
func (h *RentRequestHandler) ListAsBuyer(c *gin.Context) {
	h.list(c, h.q.ListByBuyer)
}

// @Summary List rent requests for own products
// @Tags rent-requests
// @Produce json
// @Security BearerAuth
// @Param statusGroup query string false "ongoing or completed"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RentRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rent-requests/seller [get]
func (h *RentRequestHandler) ListAsSeller(c *gin.Context) {
	h.list(c, h.q.ListBySeller)
}

// @Summary Accept or reject a pending rent request
// @Tags rent-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rent request ID"
// @Param request body reqdto.DecisionRequest true "Decision"
// @Success 200 {object} resdto.RentRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rent-requests/{id}/decision [patch]
func (h *RentRequestHandler) Decide(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sellerID, _ := middleware.GetUserID(c)
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request")
		return
	}

	if _, err := h.cmds.ApproveOrReject(c.Request.Context(), id, sellerID, req.NormalizedAction(), req.RejectionReason); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id, sellerID)
}

// @Summary Mark a rent request collected or completed
// @Tags rent-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rent request ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.RentRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rent-requests/{id}/status [patch]
func (h *RentRequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request")
		return
	}

	if _, err := h.cmds.UpdateStatus(c.Request.Context(), id, userID, req.NormalizedStatus()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id, userID)
}

type partyLister func(ctx context.Context, partyID uuid.UUID, group rentrequest.StatusGroup, cursor *queries.Cursor, limit int) ([]*queries.RentRequestView, *queries.Cursor, error)

func (h *RentRequestHandler) list(c *gin.Context, find partyLister) {
	userID, _ := middleware.GetUserID(c)
	var q reqdto.ListRentRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Invalid query")
		return
	}
	group, err := rentrequest.ParseStatusGroup(q.StatusGroup)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, next, err := find(c.Request.Context(), userID, group, &queries.Cursor{After: q.Cursor}, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRentRequestViews(views, next)
	if err != nil {
		httperr.Abort(c, errs.Internal(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *RentRequestHandler) respondWithView(c *gin.Context, status int, id, userID uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRentRequestView(view)
	if err != nil {
		httperr.Abort(c, errs.Internal(err))
		return
	}
	c.JSON(status, res)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
