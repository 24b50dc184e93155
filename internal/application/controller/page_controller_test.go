package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newPageTestServer() *echo.Echo {
	e := echo.New()
	controller := NewPageController(e, e.Group("/dashboard"), "/dashboard", &fakeDashboardUseCase{})
	controller.InitPageRoutes()
	return e
}

func TestRenderDashboardServedOnContextPath(t *testing.T) {
	e := newPageTestServer()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>") {
		t.Error("expected an HTML page body")
	}
}

func TestRenderDashboardServedAtRoot(t *testing.T) {
	e := newPageTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected the page at the server root, got %d", rec.Code)
	}
}

func TestRenderDashboardResolvesDistinctStates(t *testing.T) {
	e := newPageTestServer()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<option value="AM">AM</option>`) {
		t.Error("expected the state filter to list AM")
	}
}
