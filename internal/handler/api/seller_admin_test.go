//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentx-api/internal/handler/api"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/pkg/ptr"
	"rentx-api/internal/usecase/commands"
	"rentx-api/internal/usecase/queries"
	"rentx-api/tests/common/builder"
	"rentx-api/tests/common/httptest"
	commandsmock "rentx-api/tests/mock/commands"
	queriesmock "rentx-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SellerAdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockEarnings *queriesmock.MockEarningsQueries
	mockProducts *commandsmock.MockProductCommands
	mockAdmin    *queriesmock.MockAdminRentalQueries
	userID       uuid.UUID
}

func (s *SellerAdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEarnings = queriesmock.NewMockEarningsQueries(s.mockCtrl)
	s.mockProducts = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockAdmin = queriesmock.NewMockAdminRentalQueries(s.mockCtrl)
	s.userID = uuid.New()

	auth := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/earnings", auth, api.NewEarningsHandler(s.mockEarnings).Get)
	s.router.PATCH("/products/:id/stock", auth, api.NewProductHandler(s.mockProducts).UpdateStock)
	s.router.GET("/admin/rentals", auth, api.NewAdminHandler(s.mockAdmin).ListRentals)
}

func (s *SellerAdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSellerAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(SellerAdminHandlerTestSuite))
}

func (s *SellerAdminHandlerTestSuite) TestEarnings() {
	s.Run("success", func() {
		s.mockEarnings.EXPECT().GetSellerEarnings(gomock.Any(), s.userID).Return(&queries.SellerEarnings{
			SellerID:      s.userID,
			TotalIncome:   27000,
			MonthlyIncome: 9000,
			YearlyIncome:  18000,
			TotalRentals:  3,
			Period:        "2030-03",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/earnings", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(map[string]any{
			"sellerId":      s.userID.String(),
			"totalIncome":   float64(27000),
			"monthlyIncome": float64(9000),
			"yearlyIncome":  float64(18000),
			"totalRentals":  float64(3),
			"period":        "2030-03",
		}, body)
	})

	s.Run("error: internal error", func() {
		s.mockEarnings.EXPECT().GetSellerEarnings(gomock.Any(), s.userID).Return(nil, errs.Internal(errors.New("db")))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/earnings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SellerAdminHandlerTestSuite) TestUpdateStock() {
	productID := uuid.New()
	url := "/products/" + productID.String() + "/stock"

	s.Run("success", func() {
		s.mockProducts.EXPECT().UpdateStock(gomock.Any(), productID, s.userID, commands.UpdateStockInput{
			Quantity: ptr.Of(12),
		}).Return(&commands.ProductStock{ProductID: productID, Quantity: 12, RemainingQuantity: 8, IsAvailable: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 12}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(8), body["remainingQuantity"])
		s.Equal(true, body["isAvailable"])
	})

	s.Run("error: another seller's product gets 403", func() {
		s.mockProducts.EXPECT().UpdateStock(gomock.Any(), productID, s.userID, gomock.Any()).Return(nil, commands.ErrNotProductOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isAvailable": false}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You can only update your own products")
	})

	s.Run("invalid body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": "many"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *SellerAdminHandlerTestSuite) TestAdminRentals() {
	row := builder.NewRentRequestBuilder().BuildAdminRow()
	sellerID := uuid.New()

	s.Run("filters are parsed and rows rendered", func() {
		start := time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2030, time.March, 31, 0, 0, 0, 0, time.UTC)
		s.mockAdmin.EXPECT().ListRentals(gomock.Any(), queries.AdminRentalParams{
			StatusGroup: "ongoing",
			StartDate:   &start,
			EndDate:     &end,
			SellerID:    &sellerID,
		}).Return(&queries.AdminRentals{
			Rentals: []*queries.AdminRentalRow{row},
			Summary: queries.Summarize([]*queries.AdminRentalRow{row}),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/rentals?statusGroup=ongoing&startDate=2030-03-01&endDate=2030-03-31&sellerId="+sellerID.String(), nil, "")

		var body struct {
			Rentals []map[string]any `json:"rentals"`
			Summary map[string]any   `json:"summary"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rentals, 1)
		s.Equal("2030-03-10", body.Rentals[0]["startDate"])
		s.Equal("buyer@example.com", body.Rentals[0]["customerEmail"])
		s.Equal(float64(1), body.Summary["totalRentals"])
		s.Equal(float64(1), body.Summary["ongoingCount"])
	})

	s.Run("empty result renders an empty list", func() {
		s.mockAdmin.EXPECT().ListRentals(gomock.Any(), gomock.Any()).Return(&queries.AdminRentals{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rentals", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["rentals"])
	})

	s.Run("error: malformed sellerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rentals?sellerId=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sellerId")
	})

	s.Run("month must be numeric", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rentals?month=march&year=2030", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation error from the query service", func() {
		s.mockAdmin.EXPECT().ListRentals(gomock.Any(), gomock.Any()).
			Return(nil, errs.Newf(errs.KindValidation, "Both month and year are required"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rentals?month=3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Both month and year are required")
	})
}
