package db

import (
	"weather-dashboard/internal/domain/model"

	"gorm.io/gorm"
)

type GormWarehouseHealthGateway struct {
	DB *gorm.DB
}

var _ WarehouseHealthGateway = (*GormWarehouseHealthGateway)(nil)

func NewGormWarehouseHealthGateway(db *gorm.DB) *GormWarehouseHealthGateway {
	return &GormWarehouseHealthGateway{DB: db}
}

func (gateway *GormWarehouseHealthGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()

	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	err = sqlDB.Ping()
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
