package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// HealthCheckResult represents the health check response for Redis
type HealthCheckResult struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *Client
	isHealthy int32
	lastError atomic.Value
	lastCheck atomic.Value
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// HealthCheck performs a health check on the Redis connection: connectivity,
// a set/get/delete round trip and pool accessibility.
func (h *HealthChecker) HealthCheck() HealthCheckResult {
	pingOk, pingErr := h.testPing()
	opsOk, opsErr := h.testBasicOperations()
	poolOk := h.testConnectionPool()

	status := StatusUp
	lastError := ""
	if !pingOk || !opsOk || !poolOk {
		status = StatusDown
		atomic.StoreInt32(&h.isHealthy, 0)
		switch {
		case pingErr != nil:
			lastError = pingErr.Error()
		case opsErr != nil:
			lastError = opsErr.Error()
		default:
			lastError = "connection pool is not accessible"
		}
	} else {
		atomic.StoreInt32(&h.isHealthy, 1)
	}

	now := time.Now()
	h.lastError.Store(lastError)
	h.lastCheck.Store(now)

	config := h.client.GetConfig()
	details := map[string]string{
		"host":                  config.Host,
		"port":                  strconv.Itoa(config.Port),
		"database":              strconv.Itoa(config.Database),
		"ping_successful":       strconv.FormatBool(pingOk),
		"operations_successful": strconv.FormatBool(opsOk),
		"pool_healthy":          strconv.FormatBool(poolOk),
		"last_check":            now.Format(time.RFC3339),
		"last_error":            lastError,
	}

	return HealthCheckResult{
		Status:  status,
		Details: details,
	}
}

// testPing tests basic connectivity to Redis
func (h *HealthChecker) testPing() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx); err != nil {
		return false, fmt.Errorf("ping failed: %w", err)
	}
	return true, nil
}

// testBasicOperations tests a set/get/delete round trip
func (h *HealthChecker) testBasicOperations() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	testKey := "health_check_test"
	testValue := "test_value"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		return false, fmt.Errorf("set operation failed: %w", err)
	}

	value, err := h.client.Get(ctx, testKey)
	if err != nil {
		return false, fmt.Errorf("get operation failed: %w", err)
	}
	if value != testValue {
		return false, fmt.Errorf("value mismatch: expected %s, got %s", testValue, value)
	}

	if err := h.client.Delete(ctx, testKey); err != nil {
		return false, fmt.Errorf("delete operation failed: %w", err)
	}

	return true, nil
}

// testConnectionPool tests the connection pool health
func (h *HealthChecker) testConnectionPool() bool {
	stats := h.client.Stats()
	return stats.TotalConns > 0 || stats.IdleConns > 0
}

// IsHealthy returns the result of the last health check
func (h *HealthChecker) IsHealthy() bool {
	return atomic.LoadInt32(&h.isHealthy) == 1
}

// QuickHealthCheck performs a quick health check (ping only)
func (h *HealthChecker) QuickHealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx); err != nil {
		atomic.StoreInt32(&h.isHealthy, 0)
		h.lastError.Store(fmt.Sprintf("quick ping failed: %v", err))
		return false
	}

	atomic.StoreInt32(&h.isHealthy, 1)
	h.lastError.Store("")
	return true
}
