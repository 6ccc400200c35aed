package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/shared/apperr"
)

const HeaderAdminToken = "X-Admin-Token"

// RequireAdmin gates the admin surface behind a shared token. An empty
// configured token disables the whole surface rather than opening it.
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			Fail(c, apperr.ForbiddenErr("Admin API is disabled."))
			return
		}
		got := c.GetHeader(HeaderAdminToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			Fail(c, apperr.UnauthorizedErr("Invalid admin token."))
			return
		}
		c.Next()
	}
}
