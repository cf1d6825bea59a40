package middleware

import (
	"net/http"

	apperrors "github.com/Alex3925/company-suggestion-box/errors"
	"github.com/Alex3925/company-suggestion-box/logger"
	"github.com/Alex3925/company-suggestion-box/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors pushed onto the gin context into the API's
// uniform {ok:false, error} response. Handlers report failures with c.Error
// and return; this middleware decides status code and body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			status := appError.GetHTTPStatus()

			log.Warnw("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"status", status,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey),
			)

			c.JSON(status, types.ErrorResponse{OK: false, Error: appError.Message})
			return
		}

		// Binding failures arrive as gin bind errors; everything else is an
		// unexpected server error.
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding error",
				"error", err,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
			c.JSON(http.StatusBadRequest, types.ErrorResponse{OK: false, Error: "Invalid request body."})
			return
		}

		log.Errorw("Unexpected server error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{OK: false, Error: "Server error."})
	}
}
