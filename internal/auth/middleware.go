package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/doum4811/startbeyond-backend/internal/httperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextProfileID is the gin context key the middleware stores the
// authenticated profile ID under.
const contextProfileID = "startbeyond-profile-id"

var ErrMissingToken = errors.New("this endpoint requires an Authorization header with a Bearer token")

// Middleware authenticates requests with a Bearer token and stores the
// profile ID in the request context. Requests without a valid token are
// aborted with 401.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrMissingToken))
			return
		}

		profileID, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		c.Set(contextProfileID, profileID)
		c.Next()
	}
}

// ProfileID returns the authenticated profile's ID from the context.
// It is only valid on routes behind Middleware.
func ProfileID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(contextProfileID)
	if !ok {
		return uuid.Nil
	}

	return id.(uuid.UUID)
}
