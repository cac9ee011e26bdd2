package footwork

import (
	"fmt"
	"strings"
)

// Leg identifies one of the two legs (and so one of the two feet).
type Leg int

const (
	Left Leg = iota
	Right
)

// Legs lists every leg, in column order.
var Legs = [2]Leg{Left, Right}

// ParseLeg returns the leg named by s. Case is ignored.
func ParseLeg(s string) (Leg, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil

	case "right":
		return Right, nil
	}

	return Left, fmt.Errorf("%w: got %q", ErrInvalidLegValue, s)
}

// LegFrom is like ParseLeg, but accepts any value which looks like a string.
// Values loaded from config files arrive untyped, so this is where a number or
// a list gets rejected.
func LegFrom(v any) (Leg, error) {
	switch vv := v.(type) {
	case Leg:
		if vv != Left && vv != Right {
			return Left, fmt.Errorf("%w: got %d", ErrInvalidLegValue, int(vv))
		}
		return vv, nil

	case string:
		return ParseLeg(vv)

	case []byte:
		return ParseLeg(string(vv))

	case fmt.Stringer:
		return ParseLeg(vv.String())
	}

	return Left, fmt.Errorf("%w: got %T", ErrInvalidLegType, v)
}

// Column returns the index of this leg's foot in a Positions matrix.
func (l Leg) Column() int {
	if l == Right {
		return 1
	}

	return 0
}

// Opposite returns the other leg.
func (l Leg) Opposite() Leg {
	if l == Right {
		return Left
	}

	return Right
}

func (l Leg) String() string {
	switch l {
	case Left:
		return "left"

	case Right:
		return "right"
	}

	return fmt.Sprintf("Leg(%d)", int(l))
}

// legNames is used to build error messages.
func legNames() string {
	names := make([]string, len(Legs))
	for i, l := range Legs {
		names[i] = l.String()
	}

	return "{" + strings.Join(names, ", ") + "}"
}
