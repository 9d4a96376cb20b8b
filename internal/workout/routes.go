package workout

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all workout endpoints onto the given router
// under the /workouts prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/workouts", func(r chi.Router) {
		r.Post("/summary", Summarize)
		r.Post("/batch", Batch)
	})
}
