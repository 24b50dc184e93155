package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-dashboard/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type fakeCatalogUseCase struct{}

func (f *fakeCatalogUseCase) ListTables() ([]model.TableRef, error) {
	return []model.TableRef{
		{Schema: "dim", Name: "city"},
		{Schema: "fact", Name: "weather"},
	}, nil
}

func (f *fakeCatalogUseCase) PreviewTable(schema string, table string) (*model.TablePreview, error) {
	if schema != "fact" || table != "weather" {
		return nil, model.ErrTableNotFound
	}
	return &model.TablePreview{
		Schema:  schema,
		Table:   table,
		Columns: []string{"weather_id", "temp_avg"},
		Rows:    []map[string]any{{"weather_id": 1, "temp_avg": 27.5}},
	}, nil
}

func newCatalogTestServer() *echo.Echo {
	e := echo.New()
	controller := NewCatalogController(e.Group(""), &fakeCatalogUseCase{})
	controller.InitCatalogRoutes()
	return e
}

func TestListTables(t *testing.T) {
	e := newCatalogTestServer()

	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var tables []model.TableRef
	if err := json.Unmarshal(rec.Body.Bytes(), &tables); err != nil {
		t.Fatalf("response is not a table list: %v", err)
	}
	if len(tables) != 2 {
		t.Errorf("expected 2 tables, got %d", len(tables))
	}
}

func TestPreviewTable(t *testing.T) {
	e := newCatalogTestServer()

	req := httptest.NewRequest(http.MethodGet, "/tables/fact/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var preview model.TablePreview
	if err := json.Unmarshal(rec.Body.Bytes(), &preview); err != nil {
		t.Fatalf("response is not a preview: %v", err)
	}
	if len(preview.Rows) != 1 {
		t.Errorf("expected 1 preview row, got %d", len(preview.Rows))
	}
}

func TestPreviewTableUnknownTableReturns404(t *testing.T) {
	e := newCatalogTestServer()

	req := httptest.NewRequest(http.MethodGet, "/tables/public/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
