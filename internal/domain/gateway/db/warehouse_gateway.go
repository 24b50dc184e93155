package db

import (
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

// WarehouseGateway reads the star schema owned by the external pipeline.
// Every operation is read-only; the dashboard never writes to the warehouse.
type WarehouseGateway interface {
	// Dimension lookups for filter options
	ListCapitals() ([]entity.Capital, error)
	ListConditions() ([]entity.Condition, error)

	// Observation queries
	FindObservations(filter model.ObservationFilter, page int, size int) ([]entity.Observation, error)
	CountObservations(filter model.ObservationFilter) (int64, error)
	StreamObservations(filter model.ObservationFilter, limit int, fn func(entity.Observation) error) error

	// Chart aggregates
	AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error)
	AvgTemperatureByDay(filter model.ObservationFilter) ([]model.DailyAverage, error)
	Summarize(filter model.ObservationFilter) (*model.Summary, error)
}
