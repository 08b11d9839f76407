package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"belarro/entities"
)

// Auth reads a Bearer token, verifies it, and puts uid/role/kitchen_id on
// the request context. When enabled=false every request runs as a default
// admin, which keeps local development and the test suite free of token
// plumbing.
func Auth(secret string, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				c.Set("uid", uint(0))
				c.Set("role", entities.RoleAdmin)
				return next(c)
			}
			h := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			tok, err := jwt.Parse(strings.TrimPrefix(h, "Bearer "), func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid claims"})
			}
			if sub, ok := claims["sub"].(float64); ok {
				c.Set("uid", uint(sub))
			}
			if role, ok := claims["role"].(string); ok {
				c.Set("role", role)
			}
			if kid, ok := claims["kitchen_id"].(float64); ok {
				id := uint(kid)
				c.Set("kitchen_id", &id)
			}
			return next(c)
		}
	}
}

// RequireRole guards a route group. Admins pass every check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == entities.RoleAdmin {
				return next(c)
			}
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
