package controllerImp

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/guide/repository"
)

type GuideCtrl struct {
	repo  repository.GuideRepository
	allow map[string]bool
}

func New(repo repository.GuideRepository, allowedDomains []string) *GuideCtrl {
	allow := map[string]bool{}
	for _, d := range allowedDomains {
		allow[strings.ToLower(d)] = true
	}
	return &GuideCtrl{repo: repo, allow: allow}
}

func (h *GuideCtrl) List(c echo.Context) error {
	lang := c.QueryParam("lang")
	var (
		out []entities.Article
		err error
	)
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		out, err = h.repo.Search(q, lang)
	} else {
		out, err = h.repo.List(lang)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuideCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	a, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, a)
}

type ingestReq struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Tags  string `json:"tags"`
	Lang  string `json:"lang"`
}

// IngestURL fetches a page from a whitelisted domain and stores its main
// text as a growing guide.
func (h *GuideCtrl) IngestURL(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	text, title, err := FetchMainText(req.URL, maxPageBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if req.Title != "" {
		title = req.Title
	}
	if req.Lang != "de" {
		req.Lang = "en"
	}
	a := &entities.Article{
		Title: title, SourceURL: req.URL, Tags: req.Tags, Lang: req.Lang, Body: text,
	}
	if err := h.repo.Create(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *GuideCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
