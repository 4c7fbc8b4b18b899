package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pkgerrors "notes-service/pkg/errors"
)

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError maps a usecase error to its HTTP response. Typed errors carry
// their own status and code; anything else becomes a generic 500 so internal
// details never reach the client.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var he pkgerrors.HTTPStatuser
	if errors.As(err, &he) {
		var internal *pkgerrors.InternalError
		if errors.As(err, &internal) {
			log.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   internal.Code(),
				Message: "An internal error occurred",
			})
			return
		}

		c.JSON(he.HTTPStatus(), ErrorResponse{
			Error:   he.Code(),
			Message: he.Error(),
		})
		return
	}

	log.Error("unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
