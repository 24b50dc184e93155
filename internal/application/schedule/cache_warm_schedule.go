package schedule

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// CacheWarmSchedulerConfig holds configuration for the cache warm scheduler
type CacheWarmSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// CacheWarmScheduler precomputes the unfiltered dashboard series on a cron,
// guarded by a distributed lock so only one instance warms the cache.
type CacheWarmScheduler struct {
	cron        *cron.Cron
	useCase     dashboard.UseCase
	redisClient *redis.Client
	config      *CacheWarmSchedulerConfig
}

// NewCacheWarmScheduler creates a new cache warm scheduler with distributed locking support
func NewCacheWarmScheduler(useCase dashboard.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *CacheWarmScheduler {
	return &CacheWarmScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &CacheWarmSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitCacheWarmScheduleTasks initializes the cache warm tasks with distributed locking
func (s *CacheWarmScheduler) InitCacheWarmScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewLock(
			s.redisClient,
			"cache_warm_scheduler",
			redis.NewLockOptions().
				WithTTL(s.getLockTTL()).
				WithRefreshInterval(s.getRefreshInterval()).
				WithLockNamespace("dashboard_schedules"),
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Warnf(msg.GetMessage("cache-warm.error.lock-failed"))
			return
		}

		// Keep the lock alive for as long as this instance owns the schedule
		refreshErrChan := lock.AutoRefresh(ctx)

		_, err = s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
		if err != nil {
			log.Errorf("Failed to initialize cache warm scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Cache warm scheduler started successfully with cron expression: %s", s.config.CronExpression)

		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Cache warm scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Cache warm scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask warms the dashboard caches
func (s *CacheWarmScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("cache-warm.cron.start", requestID))

	if err := s.useCase.WarmCaches(requestID); err != nil {
		log.Error(msg.GetMessage("cache-warm.error.warm-failed", requestID, err.Error()))
		return
	}

	log.Info(msg.GetMessage("cache-warm.cron.end", requestID))
}

// Stop gracefully stops the scheduler
func (s *CacheWarmScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *CacheWarmScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *CacheWarmScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
