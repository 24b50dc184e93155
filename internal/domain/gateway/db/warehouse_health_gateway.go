package db

import "weather-dashboard/internal/domain/model"

type WarehouseHealthGateway interface {
	Health() model.ComponentHealthStatus
}
