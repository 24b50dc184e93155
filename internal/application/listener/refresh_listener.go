package listener

import (
	"context"

	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/pipeline"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"

	"go.uber.org/zap"
)

// RefreshListener subscribes to the pipeline's load-completed channel and
// clears the series caches so the next page view reflects the new load.
type RefreshListener struct {
	channel          string
	redisClient      *redis.Client
	dashboardUseCase dashboard.UseCase
	pipelineUseCase  pipeline.UseCase
}

func NewRefreshListener(channel string, redisClient *redis.Client, dashboardUseCase dashboard.UseCase, pipelineUseCase pipeline.UseCase) *RefreshListener {
	return &RefreshListener{
		channel:          channel,
		redisClient:      redisClient,
		dashboardUseCase: dashboardUseCase,
		pipelineUseCase:  pipelineUseCase,
	}
}

// InitRefreshListener starts the subscription. The subscriber reconnects on
// its own; only a closed error channel ends the listener.
func (listener *RefreshListener) InitRefreshListener(ctx context.Context) {
	subscriber := redis.NewSubscriber(
		listener.redisClient,
		redis.HandlerFunc(listener.handleLoadCompleted),
		redis.NewSubscriberConfig(),
	)

	errChan := subscriber.Subscribe(ctx, listener.channel)

	go func() {
		for err := range errChan {
			log.Warn("Pipeline refresh listener error", zap.Error(err))
		}
	}()
}

func (listener *RefreshListener) handleLoadCompleted(ctx context.Context, channel string, message string) error {
	log.Info(msg.GetMessage("pipeline.refresh-received", channel), zap.String("message", message))

	if err := listener.dashboardUseCase.InvalidateCaches(); err != nil {
		log.Warn("Failed to clear series caches after pipeline load", zap.Error(err))
	}

	if _, err := listener.pipelineUseCase.RefreshFreshness(); err != nil {
		log.Warn("Failed to refresh pipeline status after load", zap.Error(err))
	}

	return nil
}
