package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type fakeDashboardUseCase struct {
	lastFilter model.ObservationFilter
}

func (f *fakeDashboardUseCase) ListCapitals() ([]entity.Capital, error) {
	return []entity.Capital{{ID: 1, Name: "Manaus", State: "AM", Country: "Brazil"}}, nil
}

func (f *fakeDashboardUseCase) ListConditions() ([]entity.Condition, error) {
	return []entity.Condition{{ID: 1, Name: "Rain"}}, nil
}

func (f *fakeDashboardUseCase) FindObservations(filter model.ObservationFilter, page int, size int) (*model.Page[entity.Observation], error) {
	f.lastFilter = filter
	return model.NewPage([]entity.Observation{{ID: 1, Date: "2024-06-01", Capital: "Manaus"}}, page, size, 1), nil
}

func (f *fakeDashboardUseCase) AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error) {
	f.lastFilter = filter
	return []model.CapitalAverage{{Capital: "Manaus", State: "AM", AvgTemp: 31.2, Samples: 5}}, nil
}

func (f *fakeDashboardUseCase) TemperatureOverTime(filter model.ObservationFilter) ([]model.DailyAverage, error) {
	f.lastFilter = filter
	return []model.DailyAverage{{Date: "2024-06-01", AvgTemp: 24.8, Samples: 27}}, nil
}

func (f *fakeDashboardUseCase) Summarize(filter model.ObservationFilter) (*model.Summary, error) {
	f.lastFilter = filter
	return &model.Summary{Capitals: 27, Records: 100}, nil
}

func (f *fakeDashboardUseCase) ExportObservations(filter model.ObservationFilter, writer io.Writer) (int64, error) {
	f.lastFilter = filter
	_, err := writer.Write([]byte("date,capital\n2024-06-01,Manaus\n"))
	return 1, err
}

func (f *fakeDashboardUseCase) WarmCaches(requestID string) error { return nil }

func (f *fakeDashboardUseCase) InvalidateCaches() error { return nil }

func newDashboardTestServer() (*echo.Echo, *fakeDashboardUseCase) {
	e := echo.New()
	useCase := &fakeDashboardUseCase{}
	controller := NewDashboardController(e.Group(""), 50, useCase)
	controller.InitDashboardRoutes()
	return e, useCase
}

func TestFindObservationsRejectsInvalidDate(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/observations?from=June+1st", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFindObservationsRejectsInvalidToDate(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/observations?to=01%2F06%2F2024", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFindObservationsClampsNegativePage(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/observations?page=-3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var page model.Page[entity.Observation]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("response is not a page: %v", err)
	}
	if page.Number != 0 {
		t.Errorf("expected negative page to clamp to 0, got %d", page.Number)
	}
}

func TestFindObservationsRejectsUnknownBand(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/observations?band=scorching", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFindObservationsParsesRepeatedFilters(t *testing.T) {
	e, useCase := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet,
		"/observations?capital=Manaus&capital=Recife&band=%3E%3D30&from=2024-01-01", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	if len(useCase.lastFilter.Capitals) != 2 {
		t.Errorf("expected 2 capitals in filter, got %v", useCase.lastFilter.Capitals)
	}
	if len(useCase.lastFilter.Bands) != 1 || useCase.lastFilter.Bands[0] != model.BandHot {
		t.Errorf("expected hot band in filter, got %v", useCase.lastFilter.Bands)
	}
	if useCase.lastFilter.FromDate != "2024-01-01" {
		t.Errorf("expected from date to pass through, got %q", useCase.lastFilter.FromDate)
	}

	var page model.Page[entity.Observation]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("response is not a page: %v", err)
	}
	if page.TotalElements != 1 {
		t.Errorf("expected 1 total element, got %d", page.TotalElements)
	}
}

func TestSummaryReturnsMetrics(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var summary model.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("response is not a summary: %v", err)
	}
	if summary.Capitals != 27 {
		t.Errorf("expected 27 capitals, got %d", summary.Capitals)
	}
	if summary.AvgTemp != nil {
		t.Error("absent average temperature should stay null")
	}
}

func TestExportObservationsSetsCSVHeaders(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/observations/export", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if contentType := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(contentType, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", contentType)
	}
	if disposition := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(disposition, "attachment") {
		t.Errorf("expected attachment disposition, got %q", disposition)
	}
	if !strings.Contains(rec.Body.String(), "Manaus") {
		t.Errorf("expected CSV body, got %q", rec.Body.String())
	}
}

func TestListCapitalsReturnsOptions(t *testing.T) {
	e, _ := newDashboardTestServer()

	req := httptest.NewRequest(http.MethodGet, "/capitals", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var capitals []entity.Capital
	if err := json.Unmarshal(rec.Body.Bytes(), &capitals); err != nil {
		t.Fatalf("response is not a capital list: %v", err)
	}
	if len(capitals) != 1 || capitals[0].Name != "Manaus" {
		t.Errorf("unexpected capitals: %v", capitals)
	}
}
