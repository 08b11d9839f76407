package controllerImp

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"belarro/entities"
	"belarro/pkg/user/repository"
)

type AuthCtrl struct {
	users  repository.UserRepository
	secret string
}

func New(users repository.UserRepository, secret string) *AuthCtrl {
	return &AuthCtrl{users: users, secret: secret}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.users.FindByEmail(req.Email)
	if err != nil || u.Status != entities.UserActive {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"sub":   u.UserID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}
	if u.KitchenID != nil {
		claims["kitchen_id"] = *u.KitchenID
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": tok, "role": u.Role, "kitchen_id": u.KitchenID})
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	role, _ := c.Get("role").(string)
	kid, _ := c.Get("kitchen_id").(*uint)
	return c.JSON(http.StatusOK, echo.Map{"uid": uid, "role": role, "kitchen_id": kid})
}
