//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"rentx-api/internal/domain/user"
	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/cookie"
	"rentx-api/internal/pkg/jwt"
	"rentx-api/internal/usecase"
	"rentx-api/tests/common/authtest"
	"rentx-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *authtest.JWTHelper
	userID uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	svc := jwt.NewService(cfg.JWT.Secret, 0)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	s.tokens = authtest.NewJWTHelper(cfg.JWT)
	s.userID = uuid.New()

	s.router = gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		roles, _ := middleware.GetUserRoles(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "roles": roles.Strings()})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/seller", auth.RequireAuth(), auth.RequireRole(user.RoleSeller), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	s.router.GET("/no-auth-role", auth.RequireRole(user.RoleAdmin), whoami)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer token", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID, user.RoleBuyer, user.RoleSeller)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var body struct {
			UserID string   `json:"userId"`
			Roles  []string `json:"roles"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body.UserID)
		s.Equal([]string{"BUYER", "SELLER"}, body.Roles)
	})

	s.Run("cookie token", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID, user.RoleBuyer)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		token := s.tokens.CreateExpiredToken(s.T(), s.userID, user.RoleBuyer)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token without roles", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("tampered token", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID, user.RoleBuyer) + "x"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("role granted", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID, user.RoleBuyer, user.RoleSeller)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/seller", nil, token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: insufficient role", func() {
		token := s.tokens.GenerateToken(s.T(), s.userID, user.RoleBuyer)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/no-auth-role", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
