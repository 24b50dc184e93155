package health

import (
	"context"
	"errors"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

type fakeWarehouseHealthGateway struct {
	status model.HealthStatus
}

func (f *fakeWarehouseHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

type fakeCacheChecker struct {
	status redis.HealthStatus
}

func (f *fakeCacheChecker) HealthCheck() redis.HealthCheckResult {
	return redis.HealthCheckResult{Status: f.status}
}

type fakeQueueGateway struct {
	status model.HealthStatus
}

func (f *fakeQueueGateway) QueueDepth(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeQueueGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

type fakePipelineGateway struct {
	run *entity.LoadRun
	err error
}

func (f *fakePipelineGateway) GetLatestLoadRun() (*entity.LoadRun, error) {
	return f.run, f.err
}

func TestCheckHealthOnlyWarehouseIsLoadBearing(t *testing.T) {
	tests := []struct {
		name      string
		warehouse model.HealthStatus
		cache     redis.HealthStatus
		queue     model.HealthStatus
		apiErr    error
		expected  model.HealthStatus
	}{
		{
			name:      "all components up",
			warehouse: model.StatusUp, cache: redis.StatusUp, queue: model.StatusUp,
			expected: model.StatusUp,
		},
		{
			name:      "warehouse down takes the dashboard down",
			warehouse: model.StatusDown, cache: redis.StatusUp, queue: model.StatusUp,
			expected: model.StatusDown,
		},
		{
			name:      "cache down only degrades",
			warehouse: model.StatusUp, cache: redis.StatusDown, queue: model.StatusUp,
			expected: model.StatusUp,
		},
		{
			name:      "queue down only degrades",
			warehouse: model.StatusUp, cache: redis.StatusUp, queue: model.StatusDown,
			expected: model.StatusUp,
		},
		{
			name:      "pipeline api down only degrades",
			warehouse: model.StatusUp, cache: redis.StatusUp, queue: model.StatusUp,
			apiErr:   errors.New("connection refused"),
			expected: model.StatusUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(
				&fakeWarehouseHealthGateway{status: tt.warehouse},
				&fakeCacheChecker{status: tt.cache},
				&fakeQueueGateway{status: tt.queue},
				&fakePipelineGateway{err: tt.apiErr},
			)

			response := useCase.CheckHealth()
			if response.Status != tt.expected {
				t.Errorf("expected overall status %s, got %s", tt.expected, response.Status)
			}
		})
	}
}

func TestCheckHealthReportsEveryComponent(t *testing.T) {
	run := &entity.LoadRun{RunID: "run-7", Status: "succeeded"}
	useCase := NewHealthUseCase(
		&fakeWarehouseHealthGateway{status: model.StatusUp},
		&fakeCacheChecker{status: redis.StatusDown},
		&fakeQueueGateway{status: model.StatusUp},
		&fakePipelineGateway{run: run},
	)

	response := useCase.CheckHealth()

	if response.Warehouse.Status != model.StatusUp {
		t.Errorf("expected warehouse UP, got %s", response.Warehouse.Status)
	}
	if response.Cache.Status != model.StatusDown {
		t.Errorf("expected cache DOWN, got %s", response.Cache.Status)
	}
	if response.PipelineQueue.Status != model.StatusUp {
		t.Errorf("expected queue UP, got %s", response.PipelineQueue.Status)
	}
	if response.PipelineAPI.Status != model.StatusUp {
		t.Errorf("expected pipeline api UP, got %s", response.PipelineAPI.Status)
	}
	if response.PipelineAPI.Details["last_run_id"] != "run-7" {
		t.Errorf("expected last run id in details, got %v", response.PipelineAPI.Details)
	}
}
