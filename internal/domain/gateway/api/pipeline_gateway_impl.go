package api

import (
	"fmt"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

// pipelineGatewayImpl implements the PipelineGateway interface
type pipelineGatewayImpl struct {
	httpClient *http.Client
	backoff    *http.BackoffConfig
}

// NewPipelineGateway creates a new instance of PipelineGateway with HTTP client
func NewPipelineGateway(baseUrl string, clientOptions http.ClientOptions) PipelineGateway {
	clientOptions.Dismiss404 = true
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &pipelineGatewayImpl{
		httpClient: httpClient,
		backoff: &http.BackoffConfig{
			MaxRetries:   2,
			InitialDelay: 500 * time.Millisecond,
			Multiplier:   2.0,
		},
	}
}

// GetLatestLoadRun fetches the most recent load run of the pipeline
func (p *pipelineGatewayImpl) GetLatestLoadRun() (*entity.LoadRun, error) {
	successResp, errResp, _, err := p.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/loads/latest").
		WithSuccessResp(&external.LoadRunResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		WithBackoff(p.backoff).
		Execute()

	if err == nil {
		if successResp == nil {
			// 404, the pipeline has never completed a run
			return nil, nil
		}

		response := successResp.(*external.LoadRunResponse)
		return &entity.LoadRun{
			RunID:      response.RunID,
			StartedAt:  response.StartedAt,
			FinishedAt: response.FinishedAt,
			Status:     response.Status,
			RowsLoaded: response.RowsLoaded,
		}, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, fmt.Errorf("pipeline api error: %s", errorResponse.Detail)
	}

	return nil, err
}
