package health

import (
	"sync"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

// CacheChecker reports the health of the cache backend. Satisfied by
// redis.HealthChecker.
type CacheChecker interface {
	HealthCheck() redis.HealthCheckResult
}

type healthUseCase struct {
	warehouseGateway db.WarehouseHealthGateway
	cacheChecker     CacheChecker
	queueGateway     queue.PipelineQueueGateway
	pipelineGateway  api.PipelineGateway
}

func NewHealthUseCase(warehouseGateway db.WarehouseHealthGateway, cacheChecker CacheChecker, queueGateway queue.PipelineQueueGateway, pipelineGateway api.PipelineGateway) UseCase {
	return &healthUseCase{
		warehouseGateway: warehouseGateway,
		cacheChecker:     cacheChecker,
		queueGateway:     queueGateway,
		pipelineGateway:  pipelineGateway,
	}
}

// CheckHealth probes every component in parallel. Only the warehouse is
// load-bearing: a degraded cache or pipeline never takes the dashboard down.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	var wg sync.WaitGroup
	var warehouseHealth, cacheHealth, queueHealth, pipelineHealth model.ComponentHealthStatus

	wg.Add(1)
	go func() {
		defer wg.Done()
		warehouseHealth = useCase.warehouseGateway.Health()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		cacheHealth = useCase.checkCache()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		queueHealth = useCase.queueGateway.Health()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		pipelineHealth = useCase.checkPipelineAPI()
	}()

	wg.Wait()

	overallStatus := model.StatusUp
	if warehouseHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:        overallStatus,
		Warehouse:     warehouseHealth,
		Cache:         cacheHealth,
		PipelineQueue: queueHealth,
		PipelineAPI:   pipelineHealth,
	}
}

func (useCase *healthUseCase) checkCache() model.ComponentHealthStatus {
	result := useCase.cacheChecker.HealthCheck()

	status := model.StatusDown
	if result.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: result.Details,
	}
}

func (useCase *healthUseCase) checkPipelineAPI() model.ComponentHealthStatus {
	lastRun, err := useCase.pipelineGateway.GetLatestLoadRun()
	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	details := map[string]string{
		"message": string(model.StatusUp),
	}
	if lastRun != nil {
		details["last_run_id"] = lastRun.RunID
		details["last_run_status"] = lastRun.Status
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: details,
	}
}
