// Package pattern replays the kicks of the il dan (blue belt) pattern, and
// tracks where the feet end up.
package pattern

import (
	"github.com/adammck/footwork"
	"github.com/adammck/footwork/kicks"
	"github.com/adammck/footwork/math2d"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "pattern",
})

type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Directions are the four repetitions of the kicking sequence, in order. They
// only label the steps; the same two kicks are performed facing each way.
var Directions = [4]Direction{North, East, South, West}

// Step is the position of the feet after one move.
type Step struct {

	// Direction is empty for the initial position.
	Direction Direction

	// Kick is nil for the initial position.
	Kick *kicks.Kick

	Positions math2d.Positions
}

// Move describes how the feet came to be in this step's position.
func (s Step) Move() string {
	if s.Kick == nil {
		return "initial position"
	}

	return s.Kick.Name()
}

type Pattern struct {
	Side footwork.Leg
	LR   float64
	FB   float64

	// The two kicks, which are performed with opposite legs.
	Swing *kicks.Kick
	Spin  *kicks.Kick

	Start math2d.Positions
}

// New prepares the pattern for the given side. Performing the right side
// means swing kicking with the right leg and spinning with the left; the left
// side is the mirror image.
func New(side footwork.Leg, lr float64, fb float64) (*Pattern, error) {
	side, err := footwork.LegFrom(side)
	if err != nil {
		return nil, err
	}

	swing, err := kicks.NewFrontLegSwingKick(side, lr, fb)
	if err != nil {
		return nil, err
	}

	spin, err := kicks.NewSpinningSideKick(side.Opposite(), lr, fb)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		Side:  side,
		LR:    lr,
		FB:    fb,
		Swing: swing,
		Spin:  spin,
		Start: StartPositions(side, lr, fb),
	}, nil
}

// StartPositions returns the initial stance. The foot on the pattern's side is
// placed at the origin, and the other foot behind it and off to the side.
func StartPositions(side footwork.Leg, lr float64, fb float64) math2d.Positions {
	if side == footwork.Right {
		return math2d.MakePositions(math2d.Vector2{X: -lr, Y: -fb}, math2d.ZeroVector2)
	}

	return math2d.MakePositions(math2d.ZeroVector2, math2d.Vector2{X: lr, Y: -fb})
}

// Steps performs the pattern, and returns the initial position followed by the
// position after every kick: a swing kick then a spinning kick in each
// direction.
func (p *Pattern) Steps() []Step {
	steps := make([]Step, 0, 1+(2*len(Directions)))
	steps = append(steps, Step{Positions: p.Start})

	pos := p.Start
	for _, d := range Directions {
		for _, k := range []*kicks.Kick{p.Swing, p.Spin} {
			pos = k.Kick(pos)
			steps = append(steps, Step{Direction: d, Kick: k, Positions: pos})

			logger.WithFields(log.Fields{
				"direction": d,
				"kick":      k.Name(),
				"leg":       k.Leg(),
			}).Debugf("after kick: %s", pos)
		}
	}

	return steps
}

// Final returns the position of the feet at the end of the pattern.
func (p *Pattern) Final() math2d.Positions {
	steps := p.Steps()
	return steps[len(steps)-1].Positions
}
