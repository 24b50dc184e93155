package dashboard

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"

	"go.uber.org/zap"
)

var exportHeader = []string{
	"date", "capital", "state", "country", "condition",
	"temp_min", "temp_avg", "temp_max", "humidity", "precipitation", "band",
}

type dashboardUseCase struct {
	exportRowLimit   int
	warehouseGateway db.WarehouseGateway
	seriesCache      *redis.Cache
}

// NewDashboardUseCase wires the warehouse gateway with the Redis series cache.
// seriesCache may be nil, in which case every read goes to the warehouse.
func NewDashboardUseCase(exportRowLimit int, warehouseGateway db.WarehouseGateway, seriesCache *redis.Cache) UseCase {
	return &dashboardUseCase{
		exportRowLimit:   exportRowLimit,
		warehouseGateway: warehouseGateway,
		seriesCache:      seriesCache,
	}
}

// ListCapitals returns every capital present in the warehouse
func (uc *dashboardUseCase) ListCapitals() ([]entity.Capital, error) {
	var capitals []entity.Capital

	err := uc.cached("capitals", &capitals, func() (any, error) {
		return uc.warehouseGateway.ListCapitals()
	})
	if err != nil {
		return nil, err
	}

	return capitals, nil
}

// ListConditions returns every weather condition present in the warehouse
func (uc *dashboardUseCase) ListConditions() ([]entity.Condition, error) {
	var conditions []entity.Condition

	err := uc.cached("conditions", &conditions, func() (any, error) {
		return uc.warehouseGateway.ListConditions()
	})
	if err != nil {
		return nil, err
	}

	return conditions, nil
}

// FindObservations returns a paginated list of observations matching the filter
func (uc *dashboardUseCase) FindObservations(filter model.ObservationFilter, page int, size int) (*model.Page[entity.Observation], error) {
	observations, totalElements, err := uc.fetchObservationsAndCountInParallel(filter, page, size)
	if err != nil {
		return nil, err
	}

	return model.NewPage(observations, page, size, totalElements), nil
}

// fetchObservationsAndCountInParallel fetches rows and count in parallel for pagination
func (uc *dashboardUseCase) fetchObservationsAndCountInParallel(filter model.ObservationFilter, page int, size int) ([]entity.Observation, int64, error) {
	var wg sync.WaitGroup
	var observations []entity.Observation
	var totalElements int64
	var findErr, countErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		observations, findErr = uc.warehouseGateway.FindObservations(filter, page, size)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.warehouseGateway.CountObservations(filter)
	}()

	wg.Wait()

	if findErr != nil {
		return nil, 0, fmt.Errorf("failed to find observations: %w", findErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count observations: %w", countErr)
	}

	return observations, totalElements, nil
}

// AvgTemperatureByCapital returns the bar-chart series, hottest capital first
func (uc *dashboardUseCase) AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error) {
	var series []model.CapitalAverage

	err := uc.cached("avg-by-capital::"+filter.CacheKey(), &series, func() (any, error) {
		return uc.warehouseGateway.AvgTemperatureByCapital(filter)
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// TemperatureOverTime returns the line-chart series ordered by date
func (uc *dashboardUseCase) TemperatureOverTime(filter model.ObservationFilter) ([]model.DailyAverage, error) {
	var series []model.DailyAverage

	err := uc.cached("avg-by-day::"+filter.CacheKey(), &series, func() (any, error) {
		return uc.warehouseGateway.AvgTemperatureByDay(filter)
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// Summarize returns the headline metrics for the filter selection
func (uc *dashboardUseCase) Summarize(filter model.ObservationFilter) (*model.Summary, error) {
	var summary model.Summary

	err := uc.cached("summary::"+filter.CacheKey(), &summary, func() (any, error) {
		result, err := uc.warehouseGateway.Summarize(filter)
		if err != nil {
			return nil, err
		}
		return *result, nil
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// ExportObservations streams the matching observations as CSV
func (uc *dashboardUseCase) ExportObservations(filter model.ObservationFilter, writer io.Writer) (int64, error) {
	log.Info(msg.GetMessage("dashboard.export-start"))

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	var rows int64
	err := uc.warehouseGateway.StreamObservations(filter, uc.exportRowLimit, func(observation entity.Observation) error {
		record := []string{
			observation.Date,
			observation.Capital,
			observation.State,
			observation.Country,
			observation.Condition,
			formatMeasure(observation.TempMin),
			formatMeasure(observation.TempAvg),
			formatMeasure(observation.TempMax),
			formatMeasure(observation.Humidity),
			formatMeasure(observation.Precipitation),
			string(model.BandOf(observation.TempAvg)),
		}

		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}

		rows++
		return nil
	})
	if err != nil {
		return rows, err
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return rows, nil
}

// WarmCaches precomputes the unfiltered series and dimension lookups
func (uc *dashboardUseCase) WarmCaches(requestID string) error {
	unfiltered := model.ObservationFilter{}

	warmers := []struct {
		name string
		load func() error
	}{
		{"capitals", func() error { _, err := uc.ListCapitals(); return err }},
		{"conditions", func() error { _, err := uc.ListConditions(); return err }},
		{"avg-by-capital", func() error { _, err := uc.AvgTemperatureByCapital(unfiltered); return err }},
		{"avg-by-day", func() error { _, err := uc.TemperatureOverTime(unfiltered); return err }},
		{"summary", func() error { _, err := uc.Summarize(unfiltered); return err }},
	}

	var failed []string
	for _, warmer := range warmers {
		if err := warmer.load(); err != nil {
			log.Warn("Failed to warm cache entry",
				zap.String("request_id", requestID),
				zap.String("entry", warmer.name),
				zap.Error(err))
			failed = append(failed, warmer.name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to warm %d cache entries: %v", len(failed), failed)
	}
	return nil
}

// InvalidateCaches drops every cached series after a new warehouse load
func (uc *dashboardUseCase) InvalidateCaches() error {
	if uc.seriesCache == nil {
		return nil
	}
	return uc.seriesCache.Clear(context.Background())
}

// cached loads dest from the series cache, falling back to the loader on a
// miss. Cache failures degrade to direct warehouse reads.
func (uc *dashboardUseCase) cached(key string, dest any, loader func() (any, error)) error {
	if uc.seriesCache == nil {
		return loadInto(dest, loader)
	}

	ctx := context.Background()

	err := uc.seriesCache.Get(ctx, key, dest)
	if err == nil {
		log.Debugf(msg.GetMessage("dashboard.cache-hit", "series", key))
		return nil
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		log.Warn("Series cache read failed, querying warehouse directly",
			zap.String("key", key), zap.Error(err))
		return loadInto(dest, loader)
	}

	log.Debugf(msg.GetMessage("dashboard.cache-miss", "series", key))

	value, err := loader()
	if err != nil {
		return err
	}

	if err := assign(dest, value); err != nil {
		return err
	}

	if err := uc.seriesCache.Set(ctx, key, value); err != nil {
		log.Warn("Failed to store series in cache", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func loadInto(dest any, loader func() (any, error)) error {
	value, err := loader()
	if err != nil {
		return err
	}
	return assign(dest, value)
}

// assign copies a loader result into the typed destination pointer
func assign(dest any, value any) error {
	switch typed := dest.(type) {
	case *[]entity.Capital:
		*typed = value.([]entity.Capital)
	case *[]entity.Condition:
		*typed = value.([]entity.Condition)
	case *[]model.CapitalAverage:
		*typed = value.([]model.CapitalAverage)
	case *[]model.DailyAverage:
		*typed = value.([]model.DailyAverage)
	case *model.Summary:
		*typed = value.(model.Summary)
	default:
		return fmt.Errorf("unsupported cache destination type %T", dest)
	}
	return nil
}

// formatMeasure renders a nullable measure for CSV, empty when absent
func formatMeasure(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 1, 64)
}
