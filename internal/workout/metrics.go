package workout

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	summariesCounter metric.Int64Counter
	summaryHistogram metric.Float64Histogram
	errorCounter     metric.Int64Counter
	caloriesGauge    metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the workout domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("workout")

	var err error

	summariesCounter, err = meter.Int64Counter("workout.summaries.total",
		metric.WithDescription("Total number of workout summaries computed"),
		metric.WithUnit("{summary}"),
	)
	if err != nil {
		return fmt.Errorf("creating summaries counter: %w", err)
	}

	summaryHistogram, err = meter.Float64Histogram("workout.summary.duration",
		metric.WithDescription("Duration of workout summary computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating summary histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("workout.errors.total",
		metric.WithDescription("Total number of workout computation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	caloriesGauge, err = meter.Float64Gauge("workout.last_calories",
		metric.WithDescription("Calories burned in the most recently summarised workout"),
		metric.WithUnit("kcal"),
	)
	if err != nil {
		return fmt.Errorf("creating calories gauge: %w", err)
	}

	return nil
}
