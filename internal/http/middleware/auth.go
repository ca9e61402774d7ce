package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// ContextUser is the authenticated principal extracted from the JWT.
type ContextUser struct {
	ID    string
	Email string
	Role  string
}

// AuthRequired parses a Bearer token (HS256) and puts the user in context.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			Fail(c, apperr.UnauthorizedErr("Authentication required."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			Fail(c, apperr.UnauthorizedErr("Invalid Authorization header."))
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			Fail(c, apperr.UnauthorizedErr("Invalid or expired token."))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Invalid token claims."))
			return
		}
		if exp, ok := claims["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
			Fail(c, apperr.UnauthorizedErr("Token expired."))
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			Fail(c, apperr.UnauthorizedErr("Invalid token claims."))
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Set("user_role", role)

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the gin context.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return ContextUser{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return ContextUser{}, false
	}

	u := ContextUser{ID: userID}
	if v, ok := c.Get("user_email"); ok {
		u.Email, _ = v.(string)
	}
	if v, ok := c.Get("user_role"); ok {
		u.Role, _ = v.(string)
	}
	return u, true
}
