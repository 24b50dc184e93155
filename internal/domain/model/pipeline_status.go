package model

import "weather-dashboard/internal/domain/entity"

// PipelineStatus is the freshness snapshot shown in the dashboard header:
// the pipeline's last load run and the backlog of its ingest queue.
type PipelineStatus struct {
	LastRun    *entity.LoadRun `json:"lastRun,omitempty"`
	QueueDepth int64           `json:"queueDepth"`
	QueueKnown bool            `json:"queueKnown"`
	CheckedAt  string          `json:"checkedAt"`
}
