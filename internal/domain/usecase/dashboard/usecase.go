package dashboard

import (
	"io"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// ListCapitals returns every capital present in the warehouse, for the
	// filter dropdowns
	ListCapitals() ([]entity.Capital, error)

	// ListConditions returns every weather condition present in the warehouse
	ListConditions() ([]entity.Condition, error)

	// FindObservations returns a paginated list of observations matching the filter
	FindObservations(filter model.ObservationFilter, page int, size int) (*model.Page[entity.Observation], error)

	// AvgTemperatureByCapital returns the bar-chart series, hottest capital first
	AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error)

	// TemperatureOverTime returns the line-chart series ordered by date
	TemperatureOverTime(filter model.ObservationFilter) ([]model.DailyAverage, error)

	// Summarize returns the headline metrics for the filter selection
	Summarize(filter model.ObservationFilter) (*model.Summary, error)

	// ExportObservations streams the matching observations as CSV and returns
	// the number of data rows written
	ExportObservations(filter model.ObservationFilter, writer io.Writer) (int64, error)

	// WarmCaches precomputes the unfiltered series and dimension lookups
	WarmCaches(requestID string) error

	// InvalidateCaches drops every cached series after a new warehouse load
	InvalidateCaches() error
}
