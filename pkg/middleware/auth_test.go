package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"belarro/entities"
)

const testSecret = "test-secret"

func run(mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	_ = handler(c)
	return rec, c
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestAuthDisabledRunsAsAdmin(t *testing.T) {
	rec, c := run(Auth(testSecret, false), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if role, _ := c.Get("role").(string); role != entities.RoleAdmin {
		t.Errorf("role = %q, want admin", role)
	}
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	mw := Auth(testSecret, true)
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := run(mw, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthSetsClaims(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{
		"sub":        float64(42),
		"role":       entities.RoleChef,
		"kitchen_id": float64(7),
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	rec, c := run(Auth(testSecret, true), "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if uid, _ := c.Get("uid").(uint); uid != 42 {
		t.Errorf("uid = %v", c.Get("uid"))
	}
	if role, _ := c.Get("role").(string); role != entities.RoleChef {
		t.Errorf("role = %v", c.Get("role"))
	}
	kid, ok := c.Get("kitchen_id").(*uint)
	if !ok || kid == nil || *kid != 7 {
		t.Errorf("kitchen_id = %v", c.Get("kitchen_id"))
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	tok := signToken(t, jwt.MapClaims{
		"sub": float64(1), "role": entities.RoleChef,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	rec, _ := run(Auth(testSecret, true), "Bearer "+tok)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	tests := []struct {
		name string
		role string
		want int
	}{
		{"chef allowed", entities.RoleChef, http.StatusOK},
		{"admin bypasses any check", entities.RoleAdmin, http.StatusOK},
		{"no role", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != "" {
				c.Set("role", tt.role)
			}
			_ = RequireRole(entities.RoleChef)(handler)(c)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
