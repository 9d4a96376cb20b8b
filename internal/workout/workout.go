// Package workout computes summary fitness statistics (distance, mean
// speed, calories burned) from raw sensor packages for running,
// race-walking and swimming sessions.
package workout

import "fmt"

// Conversion constants shared by all workout kinds.
const (
	mInKm      = 1000.0
	minInHour  = 60.0
	cmInM      = 100.0
	kmhToMs    = 0.278
	stepLenM   = 0.65 // metres covered per step
	strokeLenM = 1.38 // metres covered per swim stroke
)

// Record is a single parsed workout. The variant set is closed: only
// Running, Walking and Swimming implement it, each with its own calorie
// formula, so there is no "base" record that could be summarised without
// one.
type Record interface {
	// Name is the display name of the workout kind.
	Name() string
	// DurationHours is the session length in hours.
	DurationHours() float64
	// DistanceKm is the distance covered in kilometres.
	DistanceKm() float64
	// MeanSpeedKmh is the average speed over the session in km/h.
	MeanSpeedKmh() float64
	// CaloriesKcal is the estimated energy spent in kilocalories.
	CaloriesKcal() float64

	record()
}

// session holds the fields common to every workout kind.
type session struct {
	actions  int     // steps or strokes counted by the sensor
	duration float64 // hours
	weight   float64 // kg
}

func (s session) DurationHours() float64 { return s.duration }

func (s session) record() {}

// distanceFor converts an action count to kilometres given the metres
// covered per action.
func (s session) distanceFor(actionLenM float64) float64 {
	return float64(s.actions) * actionLenM / mInKm
}

// Running is a running session.
type Running struct {
	session
}

const (
	runSpeedMultiplier = 18
	runSpeedShift      = 1.79
)

func (r Running) Name() string { return "Running" }

func (r Running) DistanceKm() float64 { return r.distanceFor(stepLenM) }

func (r Running) MeanSpeedKmh() float64 { return r.DistanceKm() / r.duration }

func (r Running) CaloriesKcal() float64 {
	return (runSpeedMultiplier*r.MeanSpeedKmh() + runSpeedShift) *
		r.weight / mInKm * r.duration * minInHour
}

// Walking is a race-walking session.
type Walking struct {
	session
	height float64 // cm
}

const (
	walkWeightCoeff = 0.035
	walkSpeedCoeff  = 0.029
)

func (w Walking) Name() string { return "SportsWalking" }

func (w Walking) DistanceKm() float64 { return w.distanceFor(stepLenM) }

func (w Walking) MeanSpeedKmh() float64 { return w.DistanceKm() / w.duration }

func (w Walking) CaloriesKcal() float64 {
	// The squared-speed term divides by height in centimetres and scales
	// back by 100, as the reference formula does. Keep it in this form.
	speedMs := w.MeanSpeedKmh() * kmhToMs
	return (walkWeightCoeff*w.weight +
		speedMs*speedMs/w.height*cmInM*walkSpeedCoeff*w.weight) *
		w.duration * minInHour
}

// Swimming is a swimming session.
type Swimming struct {
	session
	poolLength float64 // m
	poolLaps   float64
}

const (
	swimSpeedShift      = 1.1
	swimSpeedMultiplier = 2
)

func (s Swimming) Name() string { return "Swimming" }

func (s Swimming) DistanceKm() float64 { return s.distanceFor(strokeLenM) }

func (s Swimming) MeanSpeedKmh() float64 {
	return s.poolLength * s.poolLaps / mInKm / s.duration
}

func (s Swimming) CaloriesKcal() float64 {
	return (s.MeanSpeedKmh() + swimSpeedShift) * swimSpeedMultiplier *
		s.weight * s.duration
}

// Summary is the display-ready result of one workout computation.
type Summary struct {
	WorkoutType   string  `json:"workout_type"`
	DurationHours float64 `json:"duration_h"`
	DistanceKm    float64 `json:"distance_km"`
	MeanSpeedKmh  float64 `json:"mean_speed_kmh"`
	CaloriesKcal  float64 `json:"calories_kcal"`
}

// BuildSummary evaluates all three statistics for a record. It is pure:
// the same record always yields an identical summary.
func BuildSummary(r Record) Summary {
	return Summary{
		WorkoutType:   r.Name(),
		DurationHours: r.DurationHours(),
		DistanceKm:    r.DistanceKm(),
		MeanSpeedKmh:  r.MeanSpeedKmh(),
		CaloriesKcal:  r.CaloriesKcal(),
	}
}

// Message renders the summary with every numeric field at exactly three
// decimal places.
func (s Summary) Message() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		s.WorkoutType, s.DurationHours, s.DistanceKm, s.MeanSpeedKmh, s.CaloriesKcal,
	)
}
