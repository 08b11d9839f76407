package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/submission/repository"
)

type SubmissionCtrl struct{ repo repository.SubmissionRepository }

func New(repo repository.SubmissionRepository) *SubmissionCtrl { return &SubmissionCtrl{repo} }

type createReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
	Locale  string `json:"locale"`
}

// Create is the public contact-form intake used by both language variants
// of the website.
func (h *SubmissionCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and message are required"})
	}
	if req.Locale != "de" {
		req.Locale = "en"
	}
	s := &entities.Submission{
		Ref:     uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Locale:  req.Locale,
		Status:  entities.SubmissionNew,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ref": s.Ref})
}

func (h *SubmissionCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	unread, _ := h.repo.CountUnread()
	return c.JSON(http.StatusOK, echo.Map{"submissions": out, "unread": unread})
}

func (h *SubmissionCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var body struct {
		Status *string `json:"status"`
		Viewed *bool   `json:"viewed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status != nil {
		s.Status = *body.Status
	}
	if body.Viewed != nil {
		s.Viewed = *body.Viewed
	}
	if err := h.repo.Update(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SubmissionCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
