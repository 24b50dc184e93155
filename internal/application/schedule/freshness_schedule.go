package schedule

import (
	"time"

	"weather-dashboard/internal/domain/usecase/pipeline"
	"weather-dashboard/pkg/log"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// FreshnessScheduler polls the pipeline API and ingest queue so the status
// panel stays fresh without hitting the upstreams on every page view.
type FreshnessScheduler struct {
	scheduler gocron.Scheduler
	useCase   pipeline.UseCase
	interval  time.Duration
}

func NewFreshnessScheduler(useCase pipeline.UseCase, interval time.Duration) (*FreshnessScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &FreshnessScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		interval:  interval,
	}, nil
}

// InitFreshnessScheduleTasks starts the recurring freshness poll
func (scheduler *FreshnessScheduler) InitFreshnessScheduleTasks() error {
	_, err := scheduler.scheduler.NewJob(
		gocron.DurationJob(scheduler.interval),
		gocron.NewTask(scheduler.RefreshPipelineFreshness),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.scheduler.Start()
	log.Infof("Pipeline freshness poller started with interval: %s", scheduler.interval)
	return nil
}

// RefreshPipelineFreshness refreshes the cached pipeline status
func (scheduler *FreshnessScheduler) RefreshPipelineFreshness() {
	if _, err := scheduler.useCase.RefreshFreshness(); err != nil {
		log.Warn("Pipeline freshness poll failed", zap.Error(err))
	}
}

// Stop gracefully stops the poller
func (scheduler *FreshnessScheduler) Stop() {
	if err := scheduler.scheduler.Shutdown(); err != nil {
		log.Warn("Failed to shut down pipeline freshness poller", zap.Error(err))
	}
}
