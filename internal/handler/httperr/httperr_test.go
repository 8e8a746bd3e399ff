//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentx-api/internal/handler/httperr"
	"rentx-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := map[errs.Kind]int{
		errs.KindNotFound:                   http.StatusNotFound,
		errs.KindForbidden:                  http.StatusForbidden,
		errs.KindValidation:                 http.StatusBadRequest,
		errs.KindInvalidDateRange:           http.StatusBadRequest,
		errs.KindUnavailable:                http.StatusConflict,
		errs.KindInsufficientStock:          http.StatusConflict,
		errs.KindInsufficientStockForWindow: http.StatusConflict,
		errs.KindDuplicateOverlap:           http.StatusConflict,
		errs.KindInvalidTransition:          http.StatusConflict,
		errs.KindPrematureTransition:        http.StatusConflict,
		errs.KindInternal:                   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, httperr.StatusOf(kind), kind)
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
		httperr.Abort(c, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("success: business error returns message and code", func(t *testing.T) {
		w, body := render(errs.Newf(errs.KindInsufficientStock, "Only %d items available", 4))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, map[string]any{
			"message": "Only 4 items available",
			"code":    "INSUFFICIENT_STOCK",
		}, body["error"])
	})

	t.Run("internal errors hide the cause", func(t *testing.T) {
		w, body := render(errs.Internal(errors.New("connection refused")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]any{"message": "Internal server error"}, body["error"])
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		w, _ := render(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
