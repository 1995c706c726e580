package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "xisms.app/pkg/errors"
)

// Response is the body of every form endpoint
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// handleError writes the failure response for err. Client errors carry their
// own message; everything else is reported as fallback so causes never leak.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error, fallback string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, Response{Error: fallback})
		return
	}

	switch appErr.Type {
	case errorspkg.ErrorTypeInvalidInput, errorspkg.ErrorTypeCodeMismatch:
		c.JSON(http.StatusBadRequest, Response{Error: appErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, Response{Error: fallback})
	}
}
