package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"belarro/entities"
	"belarro/pkg/user/repository"
)

type UserCtrl struct{ repo repository.UserRepository }

func New(repo repository.UserRepository) *UserCtrl { return &UserCtrl{repo} }

type userReq struct {
	Email     string  `json:"email"`
	Password  *string `json:"password"` // set/reset only when present
	Role      string  `json:"role"`
	KitchenID *uint   `json:"kitchen_id"`
	Status    string  `json:"status"`
}

func (h *UserCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	u, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Email == "" || req.Password == nil || *req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	u := &entities.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         defaultStr(req.Role, entities.RoleChef),
		KitchenID:    req.KitchenID,
		Status:       defaultStr(req.Status, entities.UserActive),
	}
	if err := h.repo.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	u, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Status != "" {
		u.Status = req.Status
	}
	u.KitchenID = req.KitchenID
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		u.PasswordHash = hash
	}
	if err := h.repo.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
