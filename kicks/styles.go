package kicks

import (
	"math"

	"github.com/adammck/footwork"
)

var (

	// FrontLegSwingKick is a front-leg swing kick which lands in a side stance.
	// The stance turns by the complement of the angle between the feet.
	FrontLegSwingKick = Style{
		Name: "front-leg swing kick",
		Angle: func(lr float64, fb float64) float64 {
			return (math.Pi / 2) - math.Atan(fb/lr)
		},
		CCW: footwork.Right,
	}

	// SpinningSideKick turns the stance most of the way around, plus the angle
	// between the feet.
	SpinningSideKick = Style{
		Name: "spinning side kick",
		Angle: func(lr float64, fb float64) float64 {
			return math.Pi + math.Atan(fb/lr)
		},
		CCW: footwork.Left,
	}
)

// NewFrontLegSwingKick returns a front-leg swing kick with the given leg.
func NewFrontLegSwingKick(leg footwork.Leg, lr float64, fb float64) (*Kick, error) {
	return New(FrontLegSwingKick, leg, lr, fb)
}

// NewSpinningSideKick returns a spinning side kick with the given leg.
func NewSpinningSideKick(leg footwork.Leg, lr float64, fb float64) (*Kick, error) {
	return New(SpinningSideKick, leg, lr, fb)
}
