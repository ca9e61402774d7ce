package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// RequireAdmin must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Authentication required."))
			return
		}
		if u.Role != "admin" {
			Fail(c, apperr.ForbiddenErr("Admin access required."))
			return
		}
		c.Next()
	}
}
