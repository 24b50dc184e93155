package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of an application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of the whole application.
// Only the warehouse is load-bearing; the remaining components degrade the
// dashboard without taking it down.
type HealthResponse struct {
	Status        HealthStatus          `json:"status"`
	Warehouse     ComponentHealthStatus `json:"warehouse"`
	Cache         ComponentHealthStatus `json:"cache"`
	PipelineQueue ComponentHealthStatus `json:"pipelineQueue"`
	PipelineAPI   ComponentHealthStatus `json:"pipelineApi"`
}
