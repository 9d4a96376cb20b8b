package workout

import (
	"errors"
	"fmt"
)

// Sensor package codes.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnsupportedWorkout reports a package code outside SWM/RUN/WLK.
	ErrUnsupportedWorkout = errors.New("unsupported workout type")
	// ErrInvalidArguments reports a data length that does not match the
	// arity of the recognised code.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrInvalidMeasurement reports a non-positive duration, weight,
	// height or pool length, or a negative lap count.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// ParsePackage maps a sensor package (workout code plus positional data)
// to a typed record:
//
//	SWM: actions, durationHours, weightKg, poolLengthM, poolLaps
//	RUN: actions, durationHours, weightKg
//	WLK: actions, durationHours, weightKg, heightCm
//
// Measurements are validated before a record is constructed, so a
// returned record can always be summarised without dividing by zero.
func ParsePackage(code string, data []float64) (Record, error) {
	switch code {
	case CodeSwimming:
		if err := checkArity(code, data, 5); err != nil {
			return nil, err
		}
		s := Swimming{
			session:    session{actions: int(data[0]), duration: data[1], weight: data[2]},
			poolLength: data[3],
			poolLaps:   data[4],
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		return s, nil

	case CodeRunning:
		if err := checkArity(code, data, 3); err != nil {
			return nil, err
		}
		r := Running{
			session: session{actions: int(data[0]), duration: data[1], weight: data[2]},
		}
		if err := r.session.validate(); err != nil {
			return nil, err
		}
		return r, nil

	case CodeWalking:
		if err := checkArity(code, data, 4); err != nil {
			return nil, err
		}
		w := Walking{
			session: session{actions: int(data[0]), duration: data[1], weight: data[2]},
			height:  data[3],
		}
		if err := w.validate(); err != nil {
			return nil, err
		}
		return w, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWorkout, code)
	}
}

func checkArity(code string, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s takes %d values, got %d", ErrInvalidArguments, code, want, len(data))
	}
	return nil
}

func (s session) validate() error {
	if s.actions <= 0 {
		return fmt.Errorf("%w: action count must be positive, got %d", ErrInvalidMeasurement, s.actions)
	}
	if s.duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidMeasurement, s.duration)
	}
	if s.weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidMeasurement, s.weight)
	}
	return nil
}

func (w Walking) validate() error {
	if err := w.session.validate(); err != nil {
		return err
	}
	if w.height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %g", ErrInvalidMeasurement, w.height)
	}
	return nil
}

func (s Swimming) validate() error {
	if err := s.session.validate(); err != nil {
		return err
	}
	if s.poolLength <= 0 {
		return fmt.Errorf("%w: pool length must be positive, got %g", ErrInvalidMeasurement, s.poolLength)
	}
	if s.poolLaps < 0 {
		return fmt.Errorf("%w: lap count must not be negative, got %g", ErrInvalidMeasurement, s.poolLaps)
	}
	return nil
}
