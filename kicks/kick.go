// Package kicks models kicks as rigid rotations of the stance about the foot
// which stays on the ground.
package kicks

import (
	"fmt"

	"github.com/adammck/footwork"
	"github.com/adammck/footwork/math2d"
	"github.com/adammck/footwork/utils"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "kicks",
})

// Style is what distinguishes one kind of kick from another. Every kick pivots
// on the non-kicking foot; styles differ only in how far, and which way, the
// stance turns.
type Style struct {
	Name string

	// Angle returns the (unsigned) rotation in radians, given the left-right
	// and front-back distances between the feet.
	Angle func(lr float64, fb float64) float64

	// CCW is the kicking leg for which the stance rotates counter-clockwise.
	// Kicking with the other leg mirrors the rotation.
	CCW footwork.Leg
}

// Kick is a style of kick bound to a kicking leg and a stance. It's immutable
// once made.
type Kick struct {
	style    Style
	leg      footwork.Leg
	lr       float64
	fb       float64
	theta    float64
	angle    float64
	rotation math2d.Matrix33
}

// New returns a kick of the given style, performed with the given leg, from a
// stance with the given left-right and front-back foot separation.
func New(style Style, leg footwork.Leg, lr float64, fb float64) (*Kick, error) {
	leg, err := footwork.LegFrom(leg)
	if err != nil {
		return nil, err
	}

	if err := footwork.CheckDistance("dist_leftright", lr); err != nil {
		return nil, err
	}

	if err := footwork.CheckDistance("dist_frontback", fb); err != nil {
		return nil, err
	}

	theta := style.Angle(lr, fb)

	signed := theta
	if leg != style.CCW {
		signed = -theta
	}

	k := &Kick{
		style:    style,
		leg:      leg,
		lr:       lr,
		fb:       fb,
		theta:    theta,
		angle:    signed,
		rotation: math2d.MakeRotation(signed),
	}

	logger.WithFields(log.Fields{
		"kick":  style.Name,
		"leg":   leg,
		"theta": fmt.Sprintf("%+.2f°", utils.Deg(signed)),
	}).Debug("prepared kick")

	return k, nil
}

func (k Kick) String() string {
	return fmt.Sprintf("&Kick{%s leg=%s lr=%.2f fb=%.2f θ=%+.2f°}", k.style.Name, k.leg, k.lr, k.fb, utils.Deg(k.theta))
}

// Name returns the name of the style of the kick.
func (k *Kick) Name() string {
	return k.style.Name
}

// Leg returns the kicking leg.
func (k *Kick) Leg() footwork.Leg {
	return k.leg
}

// Pivot returns the leg whose foot stays planted during the kick.
func (k *Kick) Pivot() footwork.Leg {
	return k.leg.Opposite()
}

// Theta returns the magnitude of the rotation, in radians.
func (k *Kick) Theta() float64 {
	return k.theta
}

// Angle returns the rotation in radians, signed: positive is counter-clockwise.
func (k *Kick) Angle() float64 {
	return k.angle
}

// Rotation returns the matrix which rotates the stance about the origin. Its
// off-diagonal signs depend on which leg is kicking.
func (k *Kick) Rotation() math2d.Matrix33 {
	return k.rotation
}

// Matrix returns the transform which applies the kick to the given positions,
// i.e. the rotation about the planted foot.
func (k *Kick) Matrix(p math2d.Positions) math2d.Matrix33 {
	return math2d.RotationAbout(p.Foot(k.Pivot().Column()), k.rotation)
}

// Kick returns the positions of the feet after the kick lands. The planted
// foot doesn't move; the kicking foot swings around it.
func (k *Kick) Kick(p math2d.Positions) math2d.Positions {
	return p.Transform(k.Matrix(p))
}
