package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trainingkit/internal/handlers"
	"trainingkit/internal/observability"
	"trainingkit/internal/workout"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	workout.RegisterRoutes(r)

	return r
}
