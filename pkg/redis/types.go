package redis

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the component is healthy and reachable
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the component is not healthy or not reachable
	StatusDown HealthStatus = "DOWN"
	// StatusUnknown indicates the component status cannot be determined
	StatusUnknown HealthStatus = "UNKNOWN"
)
