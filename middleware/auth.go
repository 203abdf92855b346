package middleware

import (
	"net/http"

	"handicraft-server/models"
	"handicraft-server/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey      = "user"
	ContextUserEmailKey = "user_email"

	unauthorizedMessage = "unauthorized access"
	forbiddenMessage    = "forbidden access"
)

type TokenVerifier interface {
	VerifyToken(token string) (*utils.Claims, error)
}

// AuthMiddleware accepts any unexpired token signed with our secret. Logging
// out does not revoke tokens, so a replayed cookie is still let through.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.TokenCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserKey, claims)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}

// OwnerMiddleware rejects requests whose path parameter names another user.
// It must run after AuthMiddleware.
func OwnerMiddleware(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsOwner(c, c.Param(param)) {
			AbortForbidden(c)
			return
		}
		c.Next()
	}
}

// IsOwner reports whether the authenticated user may act for email. The
// comparison is exact, matching how the store filters on email. Without the
// auth guard in the chain there is no identity to compare and every request
// is allowed.
func IsOwner(c *gin.Context, email string) bool {
	current, exists := c.Get(ContextUserEmailKey)
	if !exists {
		return true
	}
	currentEmail, _ := current.(string)
	return currentEmail == email
}

func AbortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
		Success: false,
		Message: forbiddenMessage,
	})
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Message: unauthorizedMessage,
	})
}
