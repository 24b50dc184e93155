package pipeline

import (
	"context"
	"errors"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type fakePipelineGateway struct {
	run *entity.LoadRun
	err error
}

func (f *fakePipelineGateway) GetLatestLoadRun() (*entity.LoadRun, error) {
	return f.run, f.err
}

type fakeQueueGateway struct {
	depth int64
	err   error
}

func (f *fakeQueueGateway) QueueDepth(ctx context.Context) (int64, error) {
	return f.depth, f.err
}

func (f *fakeQueueGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func TestRefreshFreshness(t *testing.T) {
	run := &entity.LoadRun{RunID: "run-42", Status: "succeeded", RowsLoaded: 1234}
	useCase := NewPipelineUseCase(&fakePipelineGateway{run: run}, &fakeQueueGateway{depth: 7}, nil)

	status, err := useCase.RefreshFreshness()
	if err != nil {
		t.Fatalf("RefreshFreshness failed: %v", err)
	}

	if status.LastRun == nil || status.LastRun.RunID != "run-42" {
		t.Errorf("unexpected last run: %+v", status.LastRun)
	}
	if !status.QueueKnown || status.QueueDepth != 7 {
		t.Errorf("expected known queue depth 7, got known=%v depth=%d", status.QueueKnown, status.QueueDepth)
	}
	if status.CheckedAt == "" {
		t.Error("expected a checked-at timestamp")
	}
}

func TestRefreshFreshnessDegradesOnQueueFailure(t *testing.T) {
	run := &entity.LoadRun{RunID: "run-42", Status: "succeeded"}
	useCase := NewPipelineUseCase(
		&fakePipelineGateway{run: run},
		&fakeQueueGateway{err: errors.New("queue unreachable")},
		nil,
	)

	status, err := useCase.RefreshFreshness()
	if err != nil {
		t.Fatalf("a queue failure must not fail the refresh: %v", err)
	}
	if status.QueueKnown {
		t.Error("queue depth should be marked unknown on failure")
	}
	if status.LastRun == nil {
		t.Error("last run should still be reported")
	}
}

func TestRefreshFreshnessFailsWhenAPIUnavailable(t *testing.T) {
	useCase := NewPipelineUseCase(
		&fakePipelineGateway{err: errors.New("api down")},
		&fakeQueueGateway{depth: 1},
		nil,
	)

	if _, err := useCase.RefreshFreshness(); err == nil {
		t.Fatal("expected an error when the pipeline API is unavailable")
	}
}

func TestRefreshFreshnessHandlesNeverRanPipeline(t *testing.T) {
	useCase := NewPipelineUseCase(&fakePipelineGateway{}, &fakeQueueGateway{}, nil)

	status, err := useCase.RefreshFreshness()
	if err != nil {
		t.Fatalf("RefreshFreshness failed: %v", err)
	}
	if status.LastRun != nil {
		t.Error("a pipeline that never ran should report no last run")
	}
}
