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

// Wedge is a sector of a disc or ring, bounded by two rays from the centre.
// The sector runs from Dir1 to Dir2 in the direction of positive rotation
// (clockwise on screen, since the y axis points down).
type Wedge struct {
	Center            Point
	Radius, RingWidth int32

	Dir1, Dir2 Point

	// Concave selects the sector which is larger than a half disc, where
	// the two bounding half planes are combined by union.
	Concave bool

	// Shared1 and Shared2 mark bounding rays which coincide with a ray of
	// an adjacent wedge.
	Shared1, Shared2 bool
}

// wedgeGradient is the index of the first of the two gradient descriptors
// which CompileWedge uses for the bounding rays.
const wedgeGradient = 0

// wedgeSeam is one subpixel in limiter units.
const wedgeSeam = 1 << subToFixed

// wedgeScope holds the shared state which CompileWedge changes while it
// runs.
type wedgeScope struct {
	dev   *Device
	ctx   *DrawContext
	clip  Box
	grads [2]GradientDescriptor
}

func acquireWedgeScope(dev *Device, ctx *DrawContext) *wedgeScope {
	s := &wedgeScope{dev: dev, ctx: ctx, clip: dev.Clip}
	copy(s.grads[:], ctx.Gradients[wedgeGradient:])
	return s
}

func (s *wedgeScope) restore() {
	s.dev.Clip = s.clip
	copy(s.ctx.Gradients[wedgeGradient:], s.grads[:])
}

// CompileWedge compiles a sector of a disc or ring. The bounding rays
// become two gradients in the first two descriptors of ctx.Gradients, and
// the circle is compiled by CompileCircle. The clip rectangle of dev and
// the gradient descriptors are restored before CompileWedge returns.
//
// If Dir1 and Dir2 point in the same direction, the wedge is empty and the
// result is false.
func CompileWedge(dev *Device, ctx *DrawContext, w Wedge) bool {
	defer acquireWedgeScope(dev, ctx).restore()

	cross := w.Dir1.cross(w.Dir2)
	dot := w.Dir1.dot(w.Dir2)
	if cross == 0 && dot > 0 {
		Logger().Debug("wedge has zero angle", "center", w.Center, "dir", w.Dir1)
		return false
	}

	u1x, u1y := unitVector(w.Dir1.X, w.Dir1.Y)
	u2x, u2y := unitVector(w.Dir2.X, w.Dir2.Y)
	mode := GradientEnabled | GradientAutoOrigin
	if ctx.antialiased() {
		mode |= GradientThreshold
	}
	if w.Concave {
		mode |= GradientConcave
	}
	g1 := GradientDescriptor{Mode: mode, XSlope: -u1y, YSlope: u1x}
	g2 := GradientDescriptor{Mode: mode, XSlope: u2y, YSlope: -u2x}
	if w.Concave && dot >= 0 {
		switch {
		case !w.Shared1:
			g1.Offset += wedgeSeam
		case !w.Shared2:
			g2.Offset += wedgeSeam
		}
	}
	ctx.Gradients[wedgeGradient] = g1
	ctx.Gradients[wedgeGradient+1] = g2

	if !w.Concave && cross > 0 {
		dev.Clip = dev.Clip.Intersect(w.sectorBox(ctx))
	}

	return CompileCircle(dev, ctx, Circle{
		Center:    w.Center,
		Radius:    w.Radius,
		RingWidth: w.RingWidth,
	})
}

// sectorBox returns a box containing the convex sector, with a margin of
// one pixel on top of the soft edge.
func (w *Wedge) sectorBox(ctx *DrawContext) Box {
	c := w.Center.Add(ctx.ShadowOffset)
	width := w.RingWidth
	if width == 0 {
		width = ctx.OutlineWidth
	}
	ext := w.Radius + width/2 + ctx.edgeMargin()

	box := Box{XMin: c.X, YMin: c.Y, XMax: c.X, YMax: c.Y}
	add := func(dx, dy int32) {
		p := Point{X: c.X + scaleFixed(ext, dx), Y: c.Y + scaleFixed(ext, dy)}
		box = box.Union(Box{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y})
	}
	u1x, u1y := unitVector(w.Dir1.X, w.Dir1.Y)
	u2x, u2y := unitVector(w.Dir2.X, w.Dir2.Y)
	add(u1x, u1y)
	add(u2x, u2y)
	for _, a := range [4]Point{{FixedOne, 0}, {0, FixedOne}, {-FixedOne, 0}, {0, -FixedOne}} {
		if w.Dir1.cross(a) >= 0 && a.cross(w.Dir2) >= 0 {
			add(a.X, a.Y)
		}
	}
	return box.grow(SubpixelOne)
}
