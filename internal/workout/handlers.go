package workout

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"trainingkit/internal/handlers"
	"trainingkit/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the workout domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("workout")

// Summarize handles POST /workouts/summary: parses a single sensor
// package, computes its summary and returns the rendered result.
func Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "workout.summary",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "summary", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := checkFinite(req.Data); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "summary", "invalid numeric input", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("workout.code", req.WorkoutType),
		attribute.Int("workout.data_len", len(req.Data)),
	)

	start := time.Now()
	summary, err := summarizePackage(req.Package)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "summary", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("workout_type", summary.WorkoutType))
	summariesCounter.Add(ctx, 1, attrs)
	summaryHistogram.Record(ctx, elapsed, attrs)
	caloriesGauge.Record(ctx, summary.CaloriesKcal, attrs)

	span.AddEvent("summary.complete", trace.WithAttributes(
		attribute.Float64("distance_km", summary.DistanceKm),
		attribute.Float64("calories_kcal", summary.CaloriesKcal),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("workout.type", summary.WorkoutType))
	span.SetStatus(codes.Ok, "")

	logger.Info("workout summarised",
		zap.String("workout_type", summary.WorkoutType),
		zap.Float64("distance_km", summary.DistanceKm),
		zap.Float64("mean_speed_kmh", summary.MeanSpeedKmh),
		zap.Float64("calories_kcal", summary.CaloriesKcal),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := SummaryResponse{
		Summary:   summary,
		Message:   summary.Message(),
		RequestID: requestID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Batch handles POST /workouts/batch: computes every package in the
// request, creating a child span per package. The first bad package
// aborts the batch with an error naming its index.
func Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "workout.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Packages) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no packages provided", fmt.Errorf("packages array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.packages_count", len(req.Packages)))

	logger.Info("starting batch summary",
		zap.Int("packages", len(req.Packages)),
		zap.String("request_id", requestID),
	)

	summaries := make([]SummaryResponse, 0, len(req.Packages))

	for i, pkg := range req.Packages {
		_, pkgSpan := tracer.Start(ctx, fmt.Sprintf("workout.batch.package.%d.%s", i, pkg.WorkoutType),
			trace.WithAttributes(
				attribute.Int("batch.package.index", i),
				attribute.String("batch.package.code", pkg.WorkoutType),
			),
		)

		pkgStart := time.Now()
		err := checkFinite(pkg.Data)
		var summary Summary
		if err == nil {
			summary, err = summarizePackage(pkg)
		}
		pkgElapsed := float64(time.Since(pkgStart).Microseconds()) / 1000.0

		if err != nil {
			err = fmt.Errorf("package %d: %w", i, err)

			pkgSpan.RecordError(err)
			pkgSpan.SetStatus(codes.Error, err.Error())
			pkgSpan.End()

			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed at package %d", i))

			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "batch")))

			logger.Error("batch package failed",
				zap.Int("package", i),
				zap.String("workout_type", pkg.WorkoutType),
				zap.Error(err),
				zap.String("request_id", requestID),
			)

			handlers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		attrs := metric.WithAttributes(attribute.String("workout_type", summary.WorkoutType))
		summariesCounter.Add(ctx, 1, attrs)
		summaryHistogram.Record(ctx, pkgElapsed, attrs)
		caloriesGauge.Record(ctx, summary.CaloriesKcal, attrs)

		pkgSpan.AddEvent("package.complete", trace.WithAttributes(
			attribute.Float64("calories_kcal", summary.CaloriesKcal),
		))
		pkgSpan.SetStatus(codes.Ok, "")
		pkgSpan.End()

		logger.Info("batch package summarised",
			zap.Int("package", i),
			zap.String("workout_type", summary.WorkoutType),
			zap.Float64("calories_kcal", summary.CaloriesKcal),
			zap.Float64("duration_ms", pkgElapsed),
		)

		summaries = append(summaries, SummaryResponse{
			Summary: summary,
			Message: summary.Message(),
		})
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total_packages", len(req.Packages)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch summary completed",
		zap.Int("packages", len(req.Packages)),
		zap.String("request_id", requestID),
	)

	resp := BatchResponse{
		Summaries: summaries,
		RequestID: requestID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// summarizePackage is the shared parse-then-summarise step behind both
// handlers.
func summarizePackage(pkg Package) (Summary, error) {
	rec, err := ParsePackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(rec), nil
}

func checkFinite(data []float64) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("data[%d] is not a finite number: %g", i, v)
		}
	}
	return nil
}
