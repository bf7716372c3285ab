package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/openmirror/mirrorlist/internal/mlerrors"
	"github.com/openmirror/mirrorlist/job"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err, ok := errors.Cause(err.Err).(*gin.Error); ok {
			switch err.Type {
			case gin.ErrorTypeBind:
				c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Message: http.StatusText(http.StatusUnprocessableEntity),
					Error:   err.Error(),
				})
				return
			default:
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: http.StatusText(http.StatusInternalServerError),
				})
				return
			}
		}

		// Client input error handler
		if mlerrors.IsBadRequest(err.Err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: err.Err.Error(),
			})
			return
		}

		// Concurrent sync handler
		if errors.Is(err.Err, job.ErrSyncRunning) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: err.Err.Error(),
			})
			return
		}

		// GORM ErrRecordNotFound handler
		if errors.Is(err.Err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, nil)
	}
}
