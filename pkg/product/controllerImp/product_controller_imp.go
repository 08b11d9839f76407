package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/product/service"
)

type ProductCtrl struct{ svc service.ProductService }

func New(svc service.ProductService) *ProductCtrl { return &ProductCtrl{svc} }

// ListPublic backs the website catalog: available/seasonal only,
// ?lang=de for the German site, ?category= and ?tag= for the filter bar.
func (h *ProductCtrl) ListPublic(c echo.Context) error {
	out, err := h.svc.ListPublic(c.QueryParam("lang"), c.QueryParam("category"), c.QueryParam("tag"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Featured(c echo.Context) error {
	out, err := h.svc.Featured(c.QueryParam("lang"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Tags(c echo.Context) error {
	out, err := h.svc.Tags()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) GetBySlug(c echo.Context) error {
	p, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil || !p.PublicVisible() {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p.Localize(c.QueryParam("lang")))
}

func (h *ProductCtrl) ListAdmin(c echo.Context) error {
	out, err := h.svc.ListAdmin()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var p entities.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Create(&p)
	if err != nil {
		return h.saveError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cur, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var p entities.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p.ProductID = cur.ProductID
	p.CreatedAt = cur.CreatedAt
	out, err := h.svc.Update(&p)
	if err != nil {
		return h.saveError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductCtrl) saveError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrFeaturedLimit) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
