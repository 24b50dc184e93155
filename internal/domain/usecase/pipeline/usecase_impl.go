package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"

	"go.uber.org/zap"
)

const statusCacheKey = "status"

type pipelineUseCase struct {
	pipelineGateway api.PipelineGateway
	queueGateway    queue.PipelineQueueGateway
	statusCache     *redis.Cache
}

// NewPipelineUseCase wires the pipeline REST API and the ingest queue with the
// Redis status cache. statusCache may be nil, in which case every status read
// hits both upstreams.
func NewPipelineUseCase(pipelineGateway api.PipelineGateway, queueGateway queue.PipelineQueueGateway, statusCache *redis.Cache) UseCase {
	return &pipelineUseCase{
		pipelineGateway: pipelineGateway,
		queueGateway:    queueGateway,
		statusCache:     statusCache,
	}
}

// Status returns the pipeline status panel data, from cache when fresh
func (uc *pipelineUseCase) Status() (*model.PipelineStatus, error) {
	if uc.statusCache != nil {
		var status model.PipelineStatus
		err := uc.statusCache.Get(context.Background(), statusCacheKey, &status)
		if err == nil {
			return &status, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warn("Pipeline status cache read failed, refreshing directly", zap.Error(err))
		}
	}

	return uc.RefreshFreshness()
}

// RefreshFreshness re-reads the pipeline API and ingest queue in parallel and
// updates the cached status. A queue failure degrades the panel instead of
// failing it; the API is the source of truth for the last run.
func (uc *pipelineUseCase) RefreshFreshness() (*model.PipelineStatus, error) {
	var wg sync.WaitGroup
	var runErr error

	status := &model.PipelineStatus{
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		run, err := uc.pipelineGateway.GetLatestLoadRun()
		if err != nil {
			runErr = err
			return
		}
		status.LastRun = run
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		depth, err := uc.queueGateway.QueueDepth(context.Background())
		if err != nil {
			log.Warn("Failed to read ingest queue depth", zap.Error(err))
			return
		}
		status.QueueDepth = depth
		status.QueueKnown = true
	}()

	wg.Wait()

	if runErr != nil {
		log.Error(msg.GetMessage("pipeline.error.status-unavailable", runErr.Error()))
		return nil, fmt.Errorf("failed to fetch latest pipeline run: %w", runErr)
	}

	if uc.statusCache != nil {
		if err := uc.statusCache.Set(context.Background(), statusCacheKey, status); err != nil {
			log.Warn("Failed to cache pipeline status", zap.Error(err))
		}
	}

	lastRunID := "none"
	if status.LastRun != nil {
		lastRunID = status.LastRun.RunID
	}
	log.Debugf(msg.GetMessage("pipeline.freshness-updated", lastRunID, status.QueueDepth))

	return status, nil
}
