package middleware

import (
	"net/http"
	"strings"

	"paperstash/internal/services"
	"paperstash/internal/transport/httpdto"
	paperstash_errors "paperstash/pkg/errors"
	"paperstash/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenAuthenticator interface {
	Authenticate(token string) (uuid.UUID, error)
}

func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.Authenticate(extractBearer(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", paperstash_errors.CodeUnauthorized))
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		ctx = logger.WithUserID(ctx, userID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
