package middleware

import (
	"paperstash/internal/transport/httpdto"
	"paperstash/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached with c.Error and, when the handler has
// not written a body yet, renders a generic error envelope.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("request error: %s", err.Error())
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(c.Writer.Status(), httpdto.NewErrorResponse("internal error", "INTERNAL_ERROR"))
	}
}
