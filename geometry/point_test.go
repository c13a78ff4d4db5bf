package geometry

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffinePoint(t *testing.T) {
	a := Affine(1, 2)
	b := Affine(4, 6)

	t.Run("distance", func(t *testing.T) {
		assert.InDelta(t, 5, a.DistanceTo(b), Tolerance)
		assert.InDelta(t, 5, b.DistanceTo(a), Tolerance)
		assert.Equal(t, 0.0, a.DistanceTo(a))
	})

	t.Run("heading", func(t *testing.T) {
		h, err := Affine(0, 0).HeadingTo(Affine(0, 1))
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, h, Tolerance)

		h, err = Affine(0, 0).HeadingTo(Affine(0, -1))
		require.NoError(t, err)
		assert.InDelta(t, 3*math.Pi/2, h, Tolerance, "headings are normalized to [0, 2π)")

		_, err = a.HeadingTo(a)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})

	t.Run("invert", func(t *testing.T) {
		assert.Equal(t, Affine(-2, -2), a.Invert(b))
		assert.Equal(t, b, a.Invert(a.Invert(b)))
	})

	t.Run("travel", func(t *testing.T) {
		p := Affine(0, 0).Travel(math.Pi/4, math.Sqrt2)
		assert.InDelta(t, 1, p.X(), Tolerance)
		assert.InDelta(t, 1, p.Y(), Tolerance)

		back := p.Travel(math.Pi/4, -math.Sqrt2)
		assert.InDelta(t, 0, back.DistanceTo(Affine(0, 0)), Tolerance)
	})
}

func TestHyperPointCharts(t *testing.T) {
	coordinates := []complex128{0, 0.5, 0.3 - 0.4i, -0.99i, 1, -1i}
	for _, z := range coordinates {
		p, err := FromPoincare(z)
		require.NoError(t, err)
		assert.Equal(t, z, p.Poincare(), "Poincaré round trip is exact")

		q, err := FromKlein(p.Klein())
		require.NoError(t, err)
		assert.InDelta(t, 0, cmplx.Abs(q.Poincare()-z), Tolerance, "Klein chart denotes the same point as %v", z)
	}

	for _, z := range []complex128{1.0001, 0.8 + 0.8i, -2i} {
		_, err := FromPoincare(z)
		assert.True(t, errors.Is(err, ErrDomain), "%v is outside the disk", z)
		_, err = FromKlein(z)
		assert.True(t, errors.Is(err, ErrDomain), "%v is outside the disk", z)
	}
}

func TestHyperPointMetric(t *testing.T) {
	origin := HyperPoint{}
	p, _ := FromPoincare(0.5)
	q, _ := FromPoincare(-0.2 + 0.6i)

	t.Run("distance from origin", func(t *testing.T) {
		// d(0, r) = 2 artanh(r) = ln((1+r)/(1-r))
		assert.InDelta(t, math.Log(3), origin.DistanceTo(p), Tolerance)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, p.DistanceTo(q), q.DistanceTo(p), Tolerance)
		assert.Equal(t, 0.0, q.DistanceTo(q))
	})

	t.Run("ideal points are infinitely far", func(t *testing.T) {
		ideal, _ := FromPoincare(1i)
		assert.True(t, ideal.IsIdeal())
		assert.True(t, math.IsInf(origin.DistanceTo(ideal), 1))
	})

	t.Run("heading", func(t *testing.T) {
		h, err := origin.HeadingTo(p)
		require.NoError(t, err)
		assert.InDelta(t, 0, h, Tolerance)

		_, err = q.HeadingTo(q)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})

	t.Run("travel inverts distance and heading", func(t *testing.T) {
		h, err := p.HeadingTo(q)
		require.NoError(t, err)
		d := p.DistanceTo(q)
		arrived := p.Travel(h, d)
		assert.InDelta(t, 0, cmplx.Abs(arrived.Poincare()-q.Poincare()), 1e-7)
	})

	t.Run("invert is a half turn", func(t *testing.T) {
		image := p.Invert(q)
		assert.InDelta(t, p.DistanceTo(q), p.DistanceTo(image), 1e-7)
		back := p.Invert(image)
		assert.InDelta(t, 0, cmplx.Abs(back.Poincare()-q.Poincare()), 1e-7)

		// The image lies on the geodesic through q and p, beyond p
		toQ, _ := p.HeadingTo(q)
		toImage, _ := p.HeadingTo(image)
		assert.InDelta(t, math.Pi, AngleBetween(toQ, toImage), 1e-7)
	})
}

func TestReflect(t *testing.T) {
	cases := []struct {
		name              string
		incident, tangent float64
		expected          float64
	}{
		{"off a horizontal wall", math.Pi / 4, 0, 7 * math.Pi / 4},
		{"off a vertical wall", math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4},
		{"grazing", 0, 0, 0},
		{"head on", math.Pi / 2, 0, 3 * math.Pi / 2},
		{"tangent given backwards", math.Pi / 4, math.Pi, 7 * math.Pi / 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := Reflect(c.incident, c.tangent)
			assert.InDelta(t, c.expected, out, Tolerance)
			// Angle of incidence equals angle of reflection
			assert.InDelta(t,
				math.Abs(math.Sin(c.incident-c.tangent)),
				math.Abs(math.Sin(out-c.tangent)),
				Tolerance)
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), Tolerance)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), Tolerance)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(5*math.Pi/2), Tolerance)
	assert.Less(t, NormalizeAngle(-1e-18), 2*math.Pi)
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}
