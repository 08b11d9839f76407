package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/kitchen/repository"
)

type KitchenCtrl struct{ repo repository.KitchenRepository }

func New(repo repository.KitchenRepository) *KitchenCtrl { return &KitchenCtrl{repo} }

type kitchenReq struct {
	KitchenName  string `json:"kitchen_name"`
	DeliveryDay  string `json:"delivery_day"`
	Status       string `json:"status"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

func (h *KitchenCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *KitchenCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	k, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, k)
}

func (h *KitchenCtrl) Create(c echo.Context) error {
	var req kitchenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.KitchenName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "kitchen_name is required"})
	}
	if req.DeliveryDay == "" {
		req.DeliveryDay = "tuesday"
	}
	if req.Status == "" {
		req.Status = entities.KitchenActive
	}
	k := &entities.Kitchen{
		KitchenName: req.KitchenName, DeliveryDay: req.DeliveryDay, Status: req.Status,
		ContactName: req.ContactName, ContactEmail: req.ContactEmail, ContactPhone: req.ContactPhone,
		Address: req.Address, Notes: req.Notes,
	}
	if err := h.repo.Create(k); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, k)
}

func (h *KitchenCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	k, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req kitchenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.KitchenName != "" {
		k.KitchenName = req.KitchenName
	}
	if req.DeliveryDay != "" {
		k.DeliveryDay = req.DeliveryDay
	}
	if req.Status != "" {
		k.Status = req.Status
	}
	k.ContactName = req.ContactName
	k.ContactEmail = req.ContactEmail
	k.ContactPhone = req.ContactPhone
	k.Address = req.Address
	k.Notes = req.Notes
	if err := h.repo.Update(k); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, k)
}

func (h *KitchenCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
