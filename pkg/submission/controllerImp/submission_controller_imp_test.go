package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"belarro/database"
	"belarro/entities"
	"belarro/pkg/submission/repository"
	"belarro/pkg/submission/repositoryImp"
)

func newCtrl(t *testing.T) (*SubmissionCtrl, repository.SubmissionRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := repositoryImp.New(db)
	return New(repo), repo
}

func postJSON(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestCreateRequiresEmailAndMessage(t *testing.T) {
	ctrl, _ := newCtrl(t)
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"message":"hello"}`},
		{"missing message", `{"email":"chef@example.com"}`},
		{"blank fields", `{"email":"  ","message":" "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(ctrl.Create, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateStoresSubmission(t *testing.T) {
	ctrl, repo := newCtrl(t)
	rec := postJSON(ctrl.Create, `{"name":"Anna","email":"anna@example.com","message":"Sample box?","locale":"fr"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Ref string `json:"ref"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Ref == "" {
		t.Fatalf("response ref missing: %s", rec.Body)
	}

	stored, err := repo.List("")
	if err != nil || len(stored) != 1 {
		t.Fatalf("stored = %v, err = %v", stored, err)
	}
	s := stored[0]
	if s.Status != entities.SubmissionNew || s.Viewed {
		t.Errorf("new submission state = %+v", s)
	}
	// unknown locales fall back to english
	if s.Locale != "en" {
		t.Errorf("locale = %q, want en", s.Locale)
	}
	if s.Ref != resp.Ref {
		t.Errorf("ref mismatch: %q vs %q", s.Ref, resp.Ref)
	}
}

func TestPatchViewedAndStatus(t *testing.T) {
	ctrl, repo := newCtrl(t)
	if rec := postJSON(ctrl.Create, `{"email":"a@b.c","message":"hi"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	stored, _ := repo.List("")
	id := stored[0].SubmissionID

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"viewed":true,"status":"replied"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(id)))
	if err := ctrl.Patch(c); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	got, err := repo.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.Viewed || got.Status != "replied" {
		t.Errorf("after patch = %+v", got)
	}

	unread, err := repo.CountUnread()
	if err != nil || unread != 0 {
		t.Errorf("unread = %d, err = %v, want 0", unread, err)
	}
}
