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

import "seehuhn.de/go/pdf/graphics"

// Taper is a line whose half width changes linearly from R0 at P0 to R1 at
// P1.
type Taper struct {
	P0 Point
	R0 int32
	P1 Point
	R1 int32
}

// CompileTaperedLine compiles a line of varying width. The outline is a
// quadrilateral given by four limiters; round caps are drawn as separate
// passes after the body. The result is false if nothing was emitted.
func CompileTaperedLine(dev *Device, ctx *DrawContext, tp Taper) bool {
	p0 := tp.P0.Add(ctx.ShadowOffset)
	p1 := tp.P1.Add(ctx.ShadowOffset)
	d := p1.Sub(p0)
	r := max(tp.R0, tp.R1)
	pat := ctx.linePattern(p0, d)

	if d.IsZero() {
		return compileDot(dev, ctx, p0, r, ctx.lineCap(r), pat)
	}

	tx, ty := unitVector(d.X, d.Y)
	nx, ny := -ty, tx
	offset := func(p Point, rad, sign int32) Point {
		return Point{X: p.X + sign*scaleFixed(rad, nx), Y: p.Y + sign*scaleFixed(rad, ny)}
	}
	a0, a1 := offset(p0, tp.R0, 1), offset(p1, tp.R1, 1)
	b0, b1 := offset(p0, tp.R0, -1), offset(p1, tp.R1, -1)

	cap0 := ctx.lineCap(tp.R0)
	cap1 := ctx.lineCap(tp.R1)
	reach := r
	if cap0 == graphics.LineCapSquare || cap1 == graphics.LineCapSquare {
		reach = r * 3 / 2
	}

	drawn := false
	box := boxSpan(p0, p1).grow(reach + ctx.edgeMargin())
	if em, ok := beginPass(dev, ctx, box); ok {
		mid := Point{X: p0.X + d.X/2, Y: p0.Y + d.Y/2}
		sax, say := sideNormal(a0, a1, mid)
		sbx, sby := sideNormal(b0, b1, mid)
		em.edge(0, a0, sax, say, 0, true)
		em.edge(1, b0, sbx, sby, 0, true)
		em.taperEnd(2, p0, tx, ty, tp.R0, cap0)
		em.taperEnd(3, p1, -tx, -ty, tp.R1, cap1)

		if int64(d.X)*int64(d.Y) < 0 {
			em.flip()
		}
		em.ctl.SpanStore = true
		em.ctl.SpanAbort = true
		em.ctl.SpanDelay = spanDelay(em.box, nx, r)

		em.compileGradients(p0, ctx.Gradients[:])
		em.compileFill(pat)
		em.commit()
		drawn = true
	} else {
		Logger().Debug("tapered line clipped", "p0", p0, "p1", p1)
	}

	out := Point{X: tx, Y: ty}
	if cap0 == graphics.LineCapRound && tp.R0 > 0 && compileCapPass(dev, ctx, p0, out.Neg(), tp.R0, p0, pat) {
		drawn = true
	}
	if cap1 == graphics.LineCapRound && tp.R1 > 0 && compileCapPass(dev, ctx, p1, out, tp.R1, p0, pat) {
		drawn = true
	}
	return drawn
}

// sideNormal returns the unit normal of the line through a and b which
// points towards inside.
func sideNormal(a, b, inside Point) (nx, ny int32) {
	s := b.Sub(a)
	nx, ny = unitVector(-s.Y, s.X)
	if (Point{X: nx, Y: ny}).dot(inside.Sub(a)) < 0 {
		nx, ny = -nx, -ny
	}
	return nx, ny
}

// taperEnd loads the end limiter at p, where (ix, iy) points into the
// line. Round ends are hard, since the cap pass provides the soft edge.
func (em *emitter) taperEnd(slot int, p Point, ix, iy, rad int32, capStyle graphics.LineCapStyle) {
	switch capStyle {
	case graphics.LineCapSquare:
		em.edge(slot, p, ix, iy, rad, true)
	case graphics.LineCapRound:
		em.edge(slot, p, ix, iy, 0, false)
	default:
		em.edge(slot, p, ix, iy, 0, true)
	}
}
