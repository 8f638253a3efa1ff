package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	AgentRequestsTotal          metric.Int64Counter
	AgentRequestDurationSeconds metric.Float64Histogram
	AgentRequestErrorsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments ONLY ONCE,
// using the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("VibeNavigator")
		var err error
		m := &AppMetrics{}

		m.AgentRequestsTotal, err = meter.Int64Counter(
			"agent_requests_total",
			metric.WithDescription("Total number of agent backend requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create agent_requests_total: %v", err)
		}

		m.AgentRequestDurationSeconds, err = meter.Float64Histogram(
			"agent_request_duration_seconds",
			metric.WithDescription("Duration of agent backend requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create agent_request_duration_seconds: %v", err)
		}

		m.AgentRequestErrorsTotal, err = meter.Int64Counter(
			"agent_request_errors_total",
			metric.WithDescription("Total number of agent backend requests that failed at the transport level"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create agent_request_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance. Panics if
// InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics.InitAppMetrics must be called before metrics.Get")
	}
	return appMetrics
}
