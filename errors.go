package footwork

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidLegType is returned when a leg is given as something other
	// than a string.
	ErrInvalidLegType = errors.New("kicking leg must be a string equal to one of " + legNames())

	// ErrInvalidLegValue is returned when a leg name is neither left nor right.
	ErrInvalidLegValue = errors.New("kicking leg must be one of " + legNames())

	// ErrInvalidDistance is returned (wrapped in a DistanceError) when a stance
	// distance is not a finite number greater than zero.
	ErrInvalidDistance = errors.New("invalid distance")
)

// DistanceError describes a stance distance which can't be used. The angle of
// each kick is derived from atan(fb/lr), so zero or negative values would send
// NaN or Inf all the way through to the output.
type DistanceError struct {
	Name  string
	Value float64
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("the value of the %s argument must be greater than 0 (got %g)", e.Name, e.Value)
}

func (e *DistanceError) Unwrap() error {
	return ErrInvalidDistance
}

// CheckDistance returns a DistanceError unless d is finite and positive.
func CheckDistance(name string, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return &DistanceError{Name: name, Value: d}
	}

	return nil
}
