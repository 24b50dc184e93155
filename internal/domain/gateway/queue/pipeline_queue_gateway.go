package queue

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

type PipelineQueueGateway interface {
	// QueueDepth returns the approximate number of messages waiting on the
	// ingest queue of the ETL pipeline.
	QueueDepth(ctx context.Context) (int64, error)
	Health() model.ComponentHealthStatus
}
