package footwork

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestParseLeg(t *testing.T) {
	type eg struct {
		in  string
		out Leg
	}

	examples := []eg{
		{"left", Left},
		{"right", Right},
		{"LEFT", Left},
		{"Right", Right},
		{" right ", Right},
	}

	for _, x := range examples {
		l, err := ParseLeg(x.in)
		require.NoError(t, err, "parsing %q", x.in)
		assert.Equal(t, x.out, l, "parsing %q", x.in)
	}
}

func TestParseLegInvalid(t *testing.T) {
	for _, s := range []string{"", "up", "lefty", "r"} {
		_, err := ParseLeg(s)
		require.Error(t, err, "parsing %q", s)
		assert.True(t, errors.Is(err, ErrInvalidLegValue))
		assert.False(t, errors.Is(err, ErrInvalidLegType))
		assert.Contains(t, err.Error(), "{left, right}")
	}
}

func TestLegFrom(t *testing.T) {
	l, err := LegFrom("Left")
	require.NoError(t, err)
	assert.Equal(t, Left, l)

	l, err = LegFrom([]byte("right"))
	require.NoError(t, err)
	assert.Equal(t, Right, l)

	l, err = LegFrom(stringer("RIGHT"))
	require.NoError(t, err)
	assert.Equal(t, Right, l)

	l, err = LegFrom(Right)
	require.NoError(t, err)
	assert.Equal(t, Right, l)

	_, err = LegFrom(Leg(7))
	assert.ErrorIs(t, err, ErrInvalidLegValue)

	_, err = LegFrom("middle")
	assert.ErrorIs(t, err, ErrInvalidLegValue)
}

func TestLegFromWrongType(t *testing.T) {
	for _, v := range []any{nil, 1, 1.5, true, []string{"left"}} {
		_, err := LegFrom(v)
		require.Error(t, err, "value %#v", v)
		assert.ErrorIs(t, err, ErrInvalidLegType)
		assert.NotErrorIs(t, err, ErrInvalidLegValue)
		assert.Contains(t, err.Error(), "must be a string equal to one of {left, right}")
	}
}

func TestLegColumnAndOpposite(t *testing.T) {
	assert.Equal(t, 0, Left.Column())
	assert.Equal(t, 1, Right.Column())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "Leg(9)", Leg(9).String())
}

func TestCheckDistance(t *testing.T) {
	assert.NoError(t, CheckDistance("lrdist", 0.5))

	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckDistance("lrdist(-l)", d)
		require.Error(t, err, "distance %v", d)
		assert.ErrorIs(t, err, ErrInvalidDistance)

		var de *DistanceError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "lrdist(-l)", de.Name)
	}

	assert.Equal(t,
		"the value of the fbdist(-f) argument must be greater than 0 (got -2)",
		CheckDistance("fbdist(-f)", -2).Error())
}
