// Package dbg holds helpers for looking at tables and orbits while debugging.
package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/billiards/geometry"
)

// Padding around the drawing, in pixels
const drawPadding = 40

// Samples per geodesic segment. Hyperbolic geodesics are arcs in the Poincaré
// chart, so they are drawn as polylines.
const segmentSamples = 32

// planar returns the drawing coordinates of a point: its own coordinates in
// the plane, and its Poincaré disk coordinates in the hyperbolic plane.
func planar[P geometry.Point[P]](p P) complex128 {
	switch p := any(p).(type) {
	case geometry.AffinePoint:
		return complex128(p)
	case geometry.HyperPoint:
		return p.Poincare()
	}
	return p.Projective()
}

// geodesic samples the segment from a to b, a included.
func geodesic[P geometry.Point[P]](a, b P) []complex128 {
	ray, err := geometry.RayThrough(a, b)
	if err != nil {
		return []complex128{planar(a)}
	}
	length := a.DistanceTo(b)
	samples := make([]complex128, 0, segmentSamples)
	for i := 0; i < segmentSamples; i++ {
		samples = append(samples, planar(ray.PointAlong(length*float64(i)/segmentSamples)))
	}
	return samples
}

// DrawOrbit renders a table and an orbit to a PNG at path. The table is filled
// and the orbit is drawn as the geodesic path through its points. The disk
// boundary is outlined for hyperbolic tables.
func DrawOrbit[P geometry.Point[P]](vertices []P, orbit []P, scale float64, path string) error {
	if len(vertices) == 0 {
		return errors.New("nothing to draw")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(z complex128) {
		minX = math.Min(minX, real(z))
		minY = math.Min(minY, imag(z))
		maxX = math.Max(maxX, real(z))
		maxY = math.Max(maxY, imag(z))
	}
	for _, p := range vertices {
		grow(planar(p))
	}
	for _, p := range orbit {
		if z := planar(p); !math.IsNaN(real(z)) && !math.IsInf(real(z), 0) {
			grow(z)
		}
	}
	hyperbolic := vertices[0].Curvature() < 0
	if hyperbolic {
		grow(-1 - 1i)
		grow(1 + 1i)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if hyperbolic {
		c.DrawCircle(0, 0, 1)
		c.SetRGB(0.3, 0.3, 0.3)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	for i, v := range vertices {
		for j, z := range geodesic(v, vertices[geometry.CircularIndex(i+1, len(vertices))]) {
			if i == 0 && j == 0 {
				c.MoveTo(real(z), imag(z))
			} else {
				c.LineTo(real(z), imag(z))
			}
		}
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	if len(orbit) > 0 {
		start := planar(orbit[0])
		c.MoveTo(real(start), imag(start))
		for i := 1; i < len(orbit); i++ {
			for _, z := range geodesic(orbit[i-1], orbit[i]) {
				c.LineTo(real(z), imag(z))
			}
			end := planar(orbit[i])
			c.LineTo(real(end), imag(end))
		}
		c.SetRGBA(1, 1, 0, 0.8)
		c.SetLineWidth(1 / scale)
		c.Stroke()

		for _, p := range orbit {
			z := planar(p)
			c.DrawCircle(real(z), imag(z), 3/scale)
		}
		c.SetRGB(1, 0.3, 0.3)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// CatOrbit draws an orbit to a temporary file and prints it to the terminal
// (iTerm only). Each call gets its own file, removed once printed.
func CatOrbit[P geometry.Point[P]](vertices []P, orbit []P, scale float64) error {
	path, err := tempPNG("")
	if err != nil {
		return err
	}
	defer os.Remove(path)

	if err := DrawOrbit(vertices, orbit, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

// tempPNG creates an empty, uniquely named image file in dir, or in the
// default temporary directory when dir is empty.
func tempPNG(dir string) (string, error) {
	f, err := os.CreateTemp(dir, "billiards_orbit_*.png")
	if err != nil {
		return "", errors.Wrap(err, "creating orbit image")
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrapf(err, "closing %s", path)
	}
	return path, nil
}
