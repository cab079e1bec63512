// seehuhn.de/go/limiter - limiter setup for 2D rasterization hardware
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// referenceCoverage rasterizes the polygon poly, given in device pixels,
// with x/image/vector.
func referenceCoverage(w, h int, poly []vec.Vec2) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// pixels converts a 28.4 point to device pixels.
func pixels(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / SubpixelOne, Y: float64(p.Y) / SubpixelOne}
}

// linePolygon returns the outline of a line with butt or square caps.
func linePolygon(p0, p1 Point, hw, r0, r1 int32, ext0, ext1 int32) []vec.Vec2 {
	a, b := pixels(p0), pixels(p1)
	d := b.Sub(a)
	t := d.Mul(1 / d.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}
	if hw > 0 {
		r0, r1 = hw, hw
	}
	a = a.Sub(t.Mul(float64(ext0) / SubpixelOne))
	b = b.Add(t.Mul(float64(ext1) / SubpixelOne))
	w0 := float64(r0) / SubpixelOne
	w1 := float64(r1) / SubpixelOne
	return []vec.Vec2{
		a.Add(n.Mul(w0)),
		b.Add(n.Mul(w1)),
		b.Sub(n.Mul(w1)),
		a.Sub(n.Mul(w0)),
	}
}

// compareCoverage checks the single pass in rec against the reference
// image. Pixels which are mostly covered must be inside, pixels which are
// mostly uncovered must be outside.
func compareCoverage(t *testing.T, rec *Recorder, ref *image.Alpha) {
	t.Helper()
	if len(rec.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(rec.Passes))
	}
	p := &rec.Passes[0]

	bad := 0
	b := ref.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := ref.AlphaAt(x, y).A
			in, _ := covers(p, x, y)
			switch {
			case c > 191 && !in:
				t.Errorf("pixel (%d, %d) with coverage %d/255 is outside", x, y, c)
				bad++
			case c < 64 && in:
				t.Errorf("pixel (%d, %d) with coverage %d/255 is inside", x, y, c)
				bad++
			}
			if bad > 10 {
				t.Fatal("too many errors")
			}
		}
	}
}

func TestLineCoverage(t *testing.T) {
	const size = 64
	px := func(x, y float64) Point {
		return Point{X: Subpixel(x), Y: Subpixel(y)}
	}
	cases := []struct {
		name     string
		ln       Line
		capStyle graphics.LineCapStyle
	}{
		{"falling", Line{P0: px(8, 10), P1: px(50, 40), HalfWidth: Subpixel(4)}, graphics.LineCapButt},
		{"rising", Line{P0: px(8, 50), P1: px(56, 12.5), HalfWidth: Subpixel(3.5)}, graphics.LineCapButt},
		{"steep", Line{P0: px(30.25, 4), P1: px(34, 60), HalfWidth: Subpixel(3)}, graphics.LineCapButt},
		{"rising_square", Line{P0: px(12, 44), P1: px(40, 20), HalfWidth: Subpixel(5)}, graphics.LineCapSquare},
		{"horizontal_square", Line{P0: px(10, 20), P1: px(40, 20), HalfWidth: Subpixel(5)}, graphics.LineCapSquare},
		{"vertical", Line{P0: px(20.5, 50), P1: px(20.5, 6), HalfWidth: Subpixel(6.25)}, graphics.LineCapButt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dev, rec := newTestDevice(size, size)
			ctx := hardContext()
			ctx.Cap = tc.capStyle
			if !CompileLine(dev, ctx, tc.ln) {
				t.Fatal("line not drawn")
			}

			var ext int32
			if tc.capStyle == graphics.LineCapSquare {
				ext = tc.ln.HalfWidth
			}
			poly := linePolygon(tc.ln.P0, tc.ln.P1, tc.ln.HalfWidth, 0, 0, ext, ext)
			compareCoverage(t, rec, referenceCoverage(size, size, poly))
		})
	}
}

func TestTaperCoverage(t *testing.T) {
	const size = 64
	px := func(x, y float64) Point {
		return Point{X: Subpixel(x), Y: Subpixel(y)}
	}
	cases := []struct {
		name string
		tp   Taper
	}{
		{"falling", Taper{P0: px(10, 10), R0: Subpixel(8), P1: px(54, 40), R1: Subpixel(2)}},
		{"rising", Taper{P0: px(6, 50), R0: Subpixel(3), P1: px(52, 14), R1: Subpixel(9)}},
		{"horizontal", Taper{P0: px(8, 30), R0: Subpixel(12), P1: px(56, 30), R1: Subpixel(4)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dev, rec := newTestDevice(size, size)
			if !CompileTaperedLine(dev, hardContext(), tc.tp) {
				t.Fatal("taper not drawn")
			}
			poly := linePolygon(tc.tp.P0, tc.tp.P1, 0, tc.tp.R0, tc.tp.R1, 0, 0)
			compareCoverage(t, rec, referenceCoverage(size, size, poly))
		})
	}
}
