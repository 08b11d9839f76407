package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/order/service"
)

type OrderCtrl struct {
	svc service.OrderService
	loc *time.Location
	now func() time.Time
}

func New(svc service.OrderService, loc *time.Location) *OrderCtrl {
	return &OrderCtrl{svc: svc, loc: loc, now: time.Now}
}

func (h *OrderCtrl) today() time.Time { return h.now().In(h.loc) }

type orderResp struct {
	Order   *entities.StandingOrder `json:"order"`
	Summary *service.Summary        `json:"summary"`
}

func (h *OrderCtrl) Get(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	o, sum, err := h.svc.Get(kid, h.today())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, orderResp{o, sum})
}

func (h *OrderCtrl) Put(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	var body struct {
		Items []entities.OrderItem `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	o, sum, err := h.svc.Put(kid, body.Items, h.today())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, orderResp{o, sum})
}

func (h *OrderCtrl) PatchItems(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	var patches []service.ItemPatch
	if err := c.Bind(&patches); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	o, sum, err := h.svc.PatchItems(kid, patches, h.today())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, orderResp{o, sum})
}

func (h *OrderCtrl) Clear(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	if err := h.svc.Clear(kid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderCtrl) Tracking(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	out, err := h.svc.Tracking(kid, h.today())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderCtrl) RecordDelivery(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	rec, err := h.svc.RecordDelivery(kid, h.today())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *OrderCtrl) History(c echo.Context) error {
	kid, err := kitchenID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid kitchen"})
	}
	out, err := h.svc.History(kid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// kitchenID resolves the target kitchen: the :id route param on admin
// routes, the token's kitchen claim on chef routes.
func kitchenID(c echo.Context) (uint, error) {
	if p := c.Param("id"); p != "" {
		id, err := strconv.ParseUint(p, 10, 64)
		return uint(id), err
	}
	if kid, ok := c.Get("kitchen_id").(*uint); ok && kid != nil {
		return *kid, nil
	}
	return 0, echo.ErrBadRequest
}
