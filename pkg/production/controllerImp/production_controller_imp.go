package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	kitchenRepo "belarro/pkg/kitchen/repository"
	orderRepo "belarro/pkg/order/repository"
	productRepo "belarro/pkg/product/repository"
	"belarro/pkg/production"
)

type ProductionCtrl struct {
	products productRepo.ProductRepository
	kitchens kitchenRepo.KitchenRepository
	orders   orderRepo.OrderRepository
	loc      *time.Location
	now      func() time.Time
}

func New(p productRepo.ProductRepository, k kitchenRepo.KitchenRepository, o orderRepo.OrderRepository, loc *time.Location) *ProductionCtrl {
	return &ProductionCtrl{products: p, kitchens: k, orders: o, loc: loc, now: time.Now}
}

// Sheet streams the weekly seeding plan as an xlsx download.
func (h *ProductionCtrl) Sheet(c echo.Context) error {
	products, err := h.products.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	kitchens, err := h.kitchens.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	orders, err := h.orders.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	today := h.now().In(h.loc)
	f, err := production.BuildWeeklySheet(products, kitchens, orders, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+production.Filename(today)+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
