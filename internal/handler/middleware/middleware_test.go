//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/errs"
	"rentx-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.RequestLogging(nil), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newEngine()
	r.GET("/kind", func(c *gin.Context) {
		_ = c.Error(errs.Newf(errs.KindInsufficientStock, "Only 2 items available"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/bind", func(c *gin.Context) {
		var body struct {
			Name string `json:"name" binding:"required"`
		}
		_ = c.ShouldBindJSON(&body)
		_ = c.Error(errors.New("name is required")).SetType(gin.ErrorTypeBind)
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("error kind decides the status", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/kind", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Only 2 items available")
	})

	t.Run("error: internal error hides details", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/plain", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("bind errors are bad requests", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/bind", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "name is required")
	})

	t.Run("panic", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("no error leaves the response alone", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRequestLogging(t *testing.T) {
	r := newEngine()
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		id := rec.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("success: incoming request id is kept", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-123", rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization"},
		AllowCredentials: true,
	}
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := nethttptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-request-id")
	assert.Contains(t, exposed, "location")
}
