package api

import (
	"weather-dashboard/internal/domain/entity"
)

// PipelineGateway defines the calls made against the ETL pipeline's REST API
type PipelineGateway interface {
	// GetLatestLoadRun fetches the most recent load run of the pipeline.
	// Returns nil when the pipeline has never run.
	GetLatestLoadRun() (*entity.LoadRun, error)
}
