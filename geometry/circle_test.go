package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	_, err := NewCircle(Affine(0, 0), -1)
	assert.True(t, errors.Is(err, ErrDomain))
	c, err := NewCircle(Affine(0, 0), 0)
	require.NoError(t, err)
	assert.True(t, c.Contains(Affine(0, 0)))
}

func TestTangentsFrom(t *testing.T) {
	t.Run("affine", func(t *testing.T) {
		c := Circle[AffinePoint]{Center: Affine(0, 0), Radius: 1}
		right, left, err := c.TangentsFrom(Affine(2, 0))
		require.NoError(t, err)
		// Facing west toward the center, right is north
		assert.InDelta(t, 0.5, right.X(), Tolerance)
		assert.InDelta(t, math.Sqrt(3)/2, right.Y(), Tolerance)
		assert.InDelta(t, 0.5, left.X(), Tolerance)
		assert.InDelta(t, -math.Sqrt(3)/2, left.Y(), Tolerance)

		_, _, err = c.TangentsFrom(Affine(0.5, 0))
		assert.True(t, errors.Is(err, ErrNoTangent))
		_, _, err = c.TangentsFrom(Affine(0, 1))
		assert.True(t, errors.Is(err, ErrNoTangent), "on the circle")
	})

	t.Run("hyperbolic", func(t *testing.T) {
		center := hyper(t, 0.2+0.1i)
		c := Circle[HyperPoint]{Center: center, Radius: 0.4}
		v := hyper(t, -0.6-0.2i)
		right, left, err := c.TangentsFrom(v)
		require.NoError(t, err)
		for _, x := range []HyperPoint{right, left} {
			assert.InDelta(t, c.Radius, center.DistanceTo(x), 1e-7)
			// The radius meets the tangent at a right angle
			toCenter, _ := x.HeadingTo(center)
			toV, _ := x.HeadingTo(v)
			assert.InDelta(t, math.Pi/2, AngleBetween(toCenter, toV), 1e-7)
		}
		line, _ := NewLine(v, center)
		assert.Less(t, line.Side(right), 0.0)
		assert.Greater(t, line.Side(left), 0.0)
	})
}

func TestFourthCircle(t *testing.T) {
	t.Run("inscribed in an angle", func(t *testing.T) {
		tangency := Affine(1, 1)
		line1, _ := NewLine(tangency, Affine(2, 0))
		line2, _ := NewLine(Affine(1, 0), Affine(2, 0))
		c, err := FourthCircle(tangency, line1, line2)
		require.NoError(t, err)
		a := 2 - math.Sqrt2
		assert.InDelta(t, a, c.Radius, 1e-9)
		assert.InDelta(t, a, c.Center.X(), 1e-9)
		assert.InDelta(t, a, c.Center.Y(), 1e-9)
	})

	t.Run("parallel lines", func(t *testing.T) {
		line1, _ := NewLine(Affine(0, 0), Affine(1, 0))
		line2, _ := NewLine(Affine(5, 2), Affine(-1, 2))
		c, err := FourthCircle(Affine(0, 0), line1, line2)
		require.NoError(t, err)
		assert.InDelta(t, 1, c.Radius, 1e-9)
		assert.InDelta(t, 0, c.Center.X(), 1e-9)
		assert.InDelta(t, 1, c.Center.Y(), 1e-9)
	})

	t.Run("degenerate", func(t *testing.T) {
		line1, _ := NewLine(Affine(0, 0), Affine(1, 0))
		same, _ := NewLine(Affine(3, 0), Affine(4, 0))
		_, err := FourthCircle(Affine(0, 0), line1, same)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry), "coincident lines")

		through, _ := NewLine(Affine(0, 0), Affine(0, 1))
		_, err = FourthCircle(Affine(0, 0), line1, through)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry), "tangency on both lines")

		_, err = FourthCircle(Affine(0, 1), line1, through)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry), "tangency off the first line")
	})

	t.Run("hyperbolic", func(t *testing.T) {
		apex := hyper(t, 0.5+0.1i)
		tangency := hyper(t, -0.3-0.2i)
		other := hyper(t, -0.2+0.5i)
		line1, _ := NewLine(tangency, apex)
		line2, _ := NewLine(other, apex)
		c, err := FourthCircle(tangency, line1, line2)
		require.NoError(t, err)
		assert.InDelta(t, c.Radius, c.Center.DistanceTo(tangency), 1e-7)
		assert.InDelta(t, c.Radius, DistanceToLine(c.Center, line2), 1e-7)
		assert.Equal(t, line1.Side(other) > 0, line1.Side(c.Center) > 0, "same side as the second line")
	})

	t.Run("hyperbolic circle outgrows the plane", func(t *testing.T) {
		// Two geodesics from the origin at 120 degrees. A circle tangent to
		// the first one at distance t and to the second one has radius
		// atanh(sqrt(3) sinh t), which only exists while sqrt(3) sinh t < 1.
		origin := HyperPoint{}
		line1, _ := NewLine(origin, origin.Travel(0, 0.5))
		line2, _ := NewLine(origin.Travel(2*math.Pi/3, 0.5), origin)

		c, err := FourthCircle(origin.Travel(0, 0.3), line1, line2)
		require.NoError(t, err)
		assert.InDelta(t, math.Atanh(math.Sqrt(3)*math.Sinh(0.3)), c.Radius, 1e-7)
		assert.InDelta(t, c.Radius, c.Center.DistanceTo(origin.Travel(0, 0.3)), 1e-7)
		assert.False(t, c.Center.IsIdeal())

		_, err = FourthCircle(origin.Travel(0, 3), line1, line2)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
		_, err = FourthCircle(origin.Travel(0, 0.6), line1, line2)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry), "just past the limit")
	})
}
