package pipeline

import "weather-dashboard/internal/domain/model"

type UseCase interface {
	// Status returns the pipeline status panel data, from cache when fresh
	Status() (*model.PipelineStatus, error)

	// RefreshFreshness re-reads the pipeline API and ingest queue and
	// updates the cached status
	RefreshFreshness() (*model.PipelineStatus, error)
}
