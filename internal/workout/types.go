package workout

// Package is one sensor package as received off the wire: a workout code
// plus the positional measurement values for that code.
type Package struct {
	WorkoutType string    `json:"workout_type"` // "SWM", "RUN" or "WLK"
	Data        []float64 `json:"data"`
}

// SummaryRequest is the JSON body for POST /workouts/summary.
type SummaryRequest struct {
	Package
}

// SummaryResponse is the JSON response for POST /workouts/summary.
type SummaryResponse struct {
	Summary
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// BatchRequest is the JSON body for POST /workouts/batch.
type BatchRequest struct {
	Packages []Package `json:"packages"`
}

// BatchResponse is the JSON response for POST /workouts/batch.
type BatchResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
	RequestID string            `json:"request_id"`
}
