package httperr

import (
	"log/slog"
	"net/http"

	"rentx-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	if kind := errs.KindOf(err); kind != errs.KindInternal {
		resp.Error.Code = string(kind)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders a use case error by its kind. Internal errors are logged with
// a short stack and answered with the generic message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
			slog.Any("stack", errs.ExtractStackLines(err, 12)))
	}
	AbortWithError(c, status, err, errs.Message(err), nil)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindValidation, errs.KindInvalidDateRange:
		return http.StatusBadRequest
	case errs.KindUnavailable,
		errs.KindInsufficientStock,
		errs.KindInsufficientStockForWindow,
		errs.KindDuplicateOverlap,
		errs.KindInvalidTransition,
		errs.KindPrematureTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest answers a malformed request before it reaches a use case.
func BadRequest(c *gin.Context, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.Newf(errs.KindValidation, "%s", msg), msg, nil)
}
