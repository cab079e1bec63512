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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/limiter/testcases"
)

// CompileExample compiles a test case for a canvas of tc.Width by
// tc.Height pixels and sends the passes to sink. The result reports
// whether anything was emitted.
func CompileExample(tc testcases.TestCase, sink Sink) bool {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(tc.Width), URy: float64(tc.Height)}
	dev := NewDevice(BoxFromRect(clip), sink)
	ctx := exampleContext(tc.Style)

	switch s := tc.Shape.(type) {
	case testcases.Circle:
		return CompileCircle(dev, ctx, Circle{
			Center:    PointFromVec(s.Center),
			Radius:    Subpixel(s.Radius),
			RingWidth: Subpixel(s.RingWidth),
			Invert:    s.Invert,
		})
	case testcases.Polyline:
		return compilePolyline(dev, ctx, s)
	case testcases.Taper:
		return CompileTaperedLine(dev, ctx, Taper{
			P0: PointFromVec(s.P0),
			R0: Subpixel(s.W0 / 2),
			P1: PointFromVec(s.P1),
			R1: Subpixel(s.W1 / 2),
		})
	case testcases.Wedge:
		sweep := math.Mod(s.Angle2-s.Angle1, 360)
		if sweep < 0 {
			sweep += 360
		}
		return CompileWedge(dev, ctx, Wedge{
			Center:    PointFromVec(s.Center),
			Radius:    Subpixel(s.Radius),
			RingWidth: Subpixel(s.RingWidth),
			Dir1:      direction(s.Angle1),
			Dir2:      direction(s.Angle2),
			Concave:   sweep > 180,
		})
	default:
		panic("unknown shape")
	}
}

func exampleContext(st testcases.Style) *DrawContext {
	ctx := NewDrawContext()
	ctx.Cap = st.Cap
	ctx.Join = st.Join
	if st.MiterLimit > 0 {
		ctx.MiterLimit = int32(math.Round(st.MiterLimit * FixedOne))
	}
	if st.NoAA {
		ctx.Features &^= FeatureAntialias
	}
	ctx.SetBlur(Subpixel(st.Blur))
	return ctx
}

// compilePolyline compiles the segments of an open polyline, with joins
// at the interior vertices.
func compilePolyline(dev *Device, ctx *DrawContext, pl testcases.Polyline) bool {
	pts := make([]Point, len(pl.Points))
	for i, p := range pl.Points {
		pts[i] = PointFromVec(p)
	}
	hw := Subpixel(pl.Width / 2)

	if len(pts) == 2 && pts[0] == pts[1] {
		return CompileLine(dev, ctx, Line{P0: pts[0], P1: pts[1], HalfWidth: hw})
	}

	drawn := false
	for i := 1; i < len(pts); i++ {
		ln := Line{P0: pts[i-1], P1: pts[i], HalfWidth: hw}
		if ln.P0 == ln.P1 {
			continue
		}
		if i > 1 {
			ln.Prev = pts[i-1].Sub(pts[i-2])
		}
		if i < len(pts)-1 {
			ln.Next = pts[i+1].Sub(pts[i])
		}
		if CompileLine(dev, ctx, ln) {
			drawn = true
		}
	}
	return drawn
}

// direction returns the vector of length 1024 pixels at the given angle in
// degrees.
func direction(deg float64) Point {
	s, c := math.Sincos(deg * math.Pi / 180)
	return PointFromVec(vec.Vec2{X: 1024 * c, Y: 1024 * s})
}
