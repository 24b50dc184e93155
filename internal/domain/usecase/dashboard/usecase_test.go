package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type fakeWarehouseGateway struct {
	observations []entity.Observation
	total        int64
	failAll      bool
}

func (f *fakeWarehouseGateway) ListCapitals() ([]entity.Capital, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	return []entity.Capital{{ID: 1, Name: "Manaus", State: "AM", Country: "Brazil"}}, nil
}

func (f *fakeWarehouseGateway) ListConditions() ([]entity.Condition, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	return []entity.Condition{{ID: 1, Name: "Rain"}}, nil
}

func (f *fakeWarehouseGateway) FindObservations(filter model.ObservationFilter, page int, size int) ([]entity.Observation, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	return f.observations, nil
}

func (f *fakeWarehouseGateway) CountObservations(filter model.ObservationFilter) (int64, error) {
	if f.failAll {
		return 0, errors.New("warehouse unavailable")
	}
	return f.total, nil
}

func (f *fakeWarehouseGateway) StreamObservations(filter model.ObservationFilter, limit int, fn func(entity.Observation) error) error {
	if f.failAll {
		return errors.New("warehouse unavailable")
	}
	for i, observation := range f.observations {
		if i >= limit {
			break
		}
		if err := fn(observation); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeWarehouseGateway) AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	return []model.CapitalAverage{{Capital: "Manaus", State: "AM", AvgTemp: 31.2, Samples: 10}}, nil
}

func (f *fakeWarehouseGateway) AvgTemperatureByDay(filter model.ObservationFilter) ([]model.DailyAverage, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	return []model.DailyAverage{{Date: "2024-06-01", AvgTemp: 24.8, Samples: 27}}, nil
}

func (f *fakeWarehouseGateway) Summarize(filter model.ObservationFilter) (*model.Summary, error) {
	if f.failAll {
		return nil, errors.New("warehouse unavailable")
	}
	avg := 25.3
	return &model.Summary{Capitals: 27, Records: f.total, AvgTemp: &avg}, nil
}

func temp(value float64) *float64 {
	return &value
}

func sampleObservations() []entity.Observation {
	return []entity.Observation{
		{
			ID: 1, Date: "2024-06-01", Capital: "Manaus", State: "AM", Country: "Brazil",
			Condition: "Rain", TempMin: temp(24), TempAvg: temp(28.5), TempMax: temp(33),
			Humidity: temp(88), Precipitation: temp(12.4),
		},
		{
			ID: 2, Date: "2024-06-01", Capital: "Curitiba", State: "PR", Country: "Brazil",
			Condition: "Cloudy",
		},
	}
}

func TestFindObservationsPagination(t *testing.T) {
	gateway := &fakeWarehouseGateway{observations: sampleObservations(), total: 7}
	useCase := NewDashboardUseCase(1000, gateway, nil)

	page, err := useCase.FindObservations(model.ObservationFilter{}, 0, 3)
	if err != nil {
		t.Fatalf("FindObservations failed: %v", err)
	}

	if page.TotalElements != 7 {
		t.Errorf("expected 7 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.NumberOfElements != 2 {
		t.Errorf("expected 2 elements on page, got %d", page.NumberOfElements)
	}
}

func TestFindObservationsPropagatesWarehouseError(t *testing.T) {
	useCase := NewDashboardUseCase(1000, &fakeWarehouseGateway{failAll: true}, nil)

	if _, err := useCase.FindObservations(model.ObservationFilter{}, 0, 10); err == nil {
		t.Fatal("expected an error when the warehouse is unavailable")
	}
}

func TestExportObservationsWritesCSV(t *testing.T) {
	gateway := &fakeWarehouseGateway{observations: sampleObservations(), total: 2}
	useCase := NewDashboardUseCase(1000, gateway, nil)

	var buffer bytes.Buffer
	rows, err := useCase.ExportObservations(model.ObservationFilter{}, &buffer)
	if err != nil {
		t.Fatalf("ExportObservations failed: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 data rows, got %d", rows)
	}

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,capital,state,country,condition,temp_min,temp_avg,temp_max,humidity,precipitation,band" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Manaus") || !strings.Contains(lines[1], "28.5") {
		t.Errorf("first row missing expected values: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], ",20-30") {
		t.Errorf("expected the 28.5 average to land in the 20-30 band: %q", lines[1])
	}
	// Missing measures stay empty instead of rendering a zero
	if !strings.HasSuffix(lines[2], ",,,,,Unknown") {
		t.Errorf("nil measures should render as empty cells with an Unknown band: %q", lines[2])
	}
}

func TestExportObservationsHonorsRowLimit(t *testing.T) {
	gateway := &fakeWarehouseGateway{observations: sampleObservations(), total: 2}
	useCase := NewDashboardUseCase(1, gateway, nil)

	var buffer bytes.Buffer
	rows, err := useCase.ExportObservations(model.ObservationFilter{}, &buffer)
	if err != nil {
		t.Fatalf("ExportObservations failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected the export to stop at 1 row, got %d", rows)
	}
}

func TestWarmCachesReportsFailures(t *testing.T) {
	useCase := NewDashboardUseCase(1000, &fakeWarehouseGateway{failAll: true}, nil)

	if err := useCase.WarmCaches("test-run"); err == nil {
		t.Fatal("expected WarmCaches to report warehouse failures")
	}
}

func TestWarmCachesSucceedsWithoutCache(t *testing.T) {
	gateway := &fakeWarehouseGateway{observations: sampleObservations(), total: 2}
	useCase := NewDashboardUseCase(1000, gateway, nil)

	if err := useCase.WarmCaches("test-run"); err != nil {
		t.Fatalf("WarmCaches failed: %v", err)
	}
}
