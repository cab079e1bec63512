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

	"seehuhn.de/go/pdf/graphics"
)

// Edge is a limiter shared between two connected segments. The segment
// covers the side where XSlope·(x-Anchor.X) + YSlope·(y-Anchor.Y) ≥ 0.
type Edge struct {
	Anchor         Point
	XSlope, YSlope int32
}

// Line is a straight line segment with caps or joins at both ends.
type Line struct {
	P0, P1    Point
	HalfWidth int32

	// ExcludeStart and ExcludeEnd mark ends which are shared with a
	// neighbouring segment. Excluded ends get neither cap nor join, and
	// their edge is hard. If StartEdge (EndEdge) is set, it replaces the
	// computed end limiter.
	ExcludeStart, ExcludeEnd bool
	StartEdge, EndEdge       *Edge

	// Prev is the direction of the segment which ends at P0, and Next is
	// the direction of the segment which starts at P1. A non-zero vector
	// selects a join at that end.
	Prev, Next Point
}

type endKind int

const (
	endOpen   endKind = iota // bounded by the pass box alone
	endButt                  // flat end through the end point
	endSquare                // flat end, extended by the half width
	endRound                 // flat end in union with a disc
	endShared                // externally supplied edge
	endJoin                  // bisector with the adjacent segment
)

// lineEnd is the plan for one end of a line.
type lineEnd struct {
	kind endKind
	p    Point

	// out is the outward tangent in the scaling of the rails.
	out Point

	soft  bool
	ext   int32 // distance of the end limiter beyond p (28.4)
	edge  *Edge
	reach int32 // extent of the end beyond p, for the pass box

	// join data, in 16.16 unit vectors
	bisector Point
	cut      bool
	cutDir   Point
	cutDist  int32
}

func (e *lineEnd) slots() int {
	switch e.kind {
	case endOpen:
		return 0
	case endRound:
		return 3
	case endJoin:
		if e.cut {
			return 2
		}
		return 1
	default:
		return 1
	}
}

// CompileLine compiles a line segment. Lines are normally drawn in one
// pass; lines with two round caps, very wide round-capped lines and lines
// which would run out of limiter slots are split into a body pass followed
// by one pass per round cap. The result is false if nothing was emitted.
//
// If the pattern of ctx has AutoAdvance set, ctx.PatternOffset advances by
// the length of the line, whether or not the line is visible.
func CompileLine(dev *Device, ctx *DrawContext, ln Line) bool {
	p0 := ln.P0.Add(ctx.ShadowOffset)
	p1 := ln.P1.Add(ctx.ShadowOffset)
	d := p1.Sub(p0)
	hw := ln.HalfWidth
	pat := ctx.linePattern(p0, d)
	capStyle := ctx.lineCap(hw)

	if d.IsZero() {
		if ln.ExcludeStart && ln.ExcludeEnd {
			// both ends belong to neighbours, nothing of this segment remains
			return false
		}
		return compileDot(dev, ctx, p0, hw, capStyle, pat)
	}

	tx, ty := lineTangent(d, hw)
	t := Point{X: tx, Y: ty}
	axis := d.X == 0 || d.Y == 0

	var startEdge, endEdge *Edge
	if ln.StartEdge != nil {
		e := *ln.StartEdge
		e.Anchor = e.Anchor.Add(ctx.ShadowOffset)
		startEdge = &e
	}
	if ln.EndEdge != nil {
		e := *ln.EndEdge
		e.Anchor = e.Anchor.Add(ctx.ShadowOffset)
		endEdge = &e
	}
	ends := [2]lineEnd{
		planEnd(ctx, p0, d.Neg(), t.Neg(), hw, capStyle, axis, ln.ExcludeStart, startEdge, ln.Prev.Neg()),
		planEnd(ctx, p1, d, t, hw, capStyle, axis, ln.ExcludeEnd, endEdge, ln.Next),
	}

	need := 2
	rounds := 0
	for i := range ends {
		need += ends[i].slots()
		if ends[i].kind == endRound {
			rounds++
		}
	}
	split := rounds == 2 ||
		rounds > 0 && (hw >= splitThreshold || need > MaxLimiters || ctx.hasConcaveGradient())

	var caps []lineEnd
	if split {
		Logger().Debug("line split into separate passes", "p0", p0, "p1", p1, "halfWidth", hw)
		for i := range ends {
			if ends[i].kind != endRound {
				continue
			}
			caps = append(caps, ends[i])
			ends[i].soft = false
			if axis {
				ends[i].kind = endOpen
			} else {
				ends[i].kind = endButt
			}
		}
	}

	drawn := compileLineBody(dev, ctx, p0, p1, t, hw, ends, pat)
	for _, e := range caps {
		if compileCapPass(dev, ctx, e.p, e.out, hw, p0, pat) {
			drawn = true
		}
	}
	return drawn
}

// lineTangent returns the direction of d as a 16.16 vector. Thin lines use
// the L∞ norm, so that their width is measured along the minor axis;
// thicker lines are normalized to unit length.
func lineTangent(d Point, hw int32) (tx, ty int32) {
	if hw < sqrtSetupThreshold {
		m := max(abs32(d.X), abs32(d.Y))
		return int32((int64(d.X) << FixedShift) / m), int32((int64(d.Y) << FixedShift) / m)
	}
	return unitVector(d.X, d.Y)
}

// planEnd decides how the end of a line at p is closed. dir points
// outwards along the line, out is the same direction in the scaling of the
// rails, and adj is the direction of the adjacent segment, pointing away
// from p.
func planEnd(ctx *DrawContext, p, dir, out Point, hw int32, capStyle graphics.LineCapStyle, axis, exclude bool, edge *Edge, adj Point) lineEnd {
	e := lineEnd{p: p, out: out, reach: hw}
	switch {
	case exclude && edge != nil:
		e.kind = endShared
		e.edge = edge
	case exclude:
		e.kind = endButt
		if axis {
			e.kind = endOpen
		}
	case !adj.IsZero():
		planJoin(ctx, &e, dir, adj, hw)
	case capStyle == graphics.LineCapRound:
		e.kind = endRound
		e.soft = true
	case capStyle == graphics.LineCapSquare:
		e.kind = endSquare
		e.soft = true
		e.ext = hw
		e.reach = hw * 3 / 2
		if axis {
			e.kind = endOpen
		}
	default:
		e.kind = endButt
		e.soft = true
		if axis {
			e.kind = endOpen
		}
	}
	return e
}

// planJoin sets up the join between a segment ending at e.p in direction
// dir and the adjacent segment leaving in direction adj.
func planJoin(ctx *DrawContext, e *lineEnd, dir, adj Point, hw int32) {
	cross := dir.cross(adj)
	if cross == 0 && dir.dot(adj) < 0 {
		// the path reverses; nothing sensible to join
		e.kind = endButt
		e.soft = true
		return
	}

	ox, oy := unitVector(dir.X, dir.Y)
	ax, ay := unitVector(adj.X, adj.Y)
	bx, by := unitVector(-(ox + ax), -(oy + ay))
	e.kind = endJoin
	e.bisector = Point{X: bx, Y: by}
	if cross == 0 {
		return
	}

	mx, my := unitVector(ox-ax, oy-ay)
	e.cut = true
	e.cutDir = Point{X: mx, Y: my}

	// |n·m| is the sine of half the join angle
	sin := int32(abs64(int64(-oy)*int64(mx)+int64(ox)*int64(my)) >> FixedShift)
	tip := int64(math.MaxInt32)
	if sin > 0 {
		tip = int64(hw) << FixedShift / int64(sin)
	}
	if ctx.Join == graphics.LineJoinMiter {
		e.cutDist = scaleFixed(hw, ctx.MiterLimit)
	} else {
		e.cutDist = scaleFixed(hw, sin)
	}
	e.reach = sat32(min(int64(e.cutDist), tip) + int64(hw) + 1)
}

// compileLineBody emits the pass for the rails and the two ends of a line.
func compileLineBody(dev *Device, ctx *DrawContext, p0, p1, t Point, hw int32, ends [2]lineEnd, pat PatternDescriptor) bool {
	reach := max(ends[0].reach, ends[1].reach)
	box := boxSpan(p0, p1).grow(reach + ctx.edgeMargin())
	for i := range ends {
		if ends[i].kind == endOpen {
			pinBox(&box, ends[i].p, ends[i].out, ends[i].ext)
		}
	}

	em, ok := beginPass(dev, ctx, box)
	if !ok {
		Logger().Debug("line clipped", "p0", p0, "p1", p1)
		return false
	}

	nx, ny := -t.Y, t.X
	em.edge(0, p0, nx, ny, hw, true)
	em.edge(1, p0, -nx, -ny, hw, true)

	var roundEnds []int
	for i := range ends {
		e := &ends[i]
		switch e.kind {
		case endButt, endSquare, endRound:
			slot, _ := em.alloc()
			em.edge(slot, e.p, -e.out.X, -e.out.Y, e.ext, e.soft)
			if e.kind == endRound {
				em.ctl.Union |= slotBit(slot)
				roundEnds = append(roundEnds, i)
			}
		case endShared:
			slot, _ := em.alloc()
			em.set(slot, em.halfPlane(e.edge.Anchor, e.edge.XSlope, e.edge.YSlope))
		case endJoin:
			slot, _ := em.alloc()
			em.edge(slot, e.p, e.bisector.X, e.bisector.Y, 0, false)
			if e.cut {
				slot, _ = em.alloc()
				em.edge(slot, e.p, -e.cutDir.X, -e.cutDir.Y, e.cutDist, true)
				em.slots[slot].Start = sat32(int64(em.slots[slot].Start) + 1)
			}
		}
	}

	d := p1.Sub(p0)
	if int64(d.X)*int64(d.Y) < 0 {
		em.flip()
	}

	allowHP := ctx.Features&FeatureHighPrecision != 0
	for _, i := range roundEnds {
		slot, ok := em.allocPair()
		if !ok {
			// planned for, cannot happen
			continue
		}
		em.compileCircle(slot, ends[i].p, hw, 0, false, allowHP)
		em.ctl.Union |= slotBit(slot) | slotBit(slot+1)
	}

	em.ctl.SpanStore = true
	em.ctl.SpanAbort = true
	em.ctl.SpanDelay = spanDelay(em.box, nx, hw)

	em.compileGradients(p0, ctx.Gradients[:])
	em.compileFill(pat)
	em.commit()
	return true
}

// compileCapPass emits a round cap at p as a pass of its own: the disc of
// radius hw, cut off by the end of the line body. out is the outward
// tangent of the line at p and origin is the start point of the line.
func compileCapPass(dev *Device, ctx *DrawContext, p, out Point, hw int32, origin Point, pat PatternDescriptor) bool {
	em, ok := beginPass(dev, ctx, boxAround(p, hw+ctx.edgeMargin()))
	if !ok {
		return false
	}
	allowHP := ctx.Features&FeatureHighPrecision != 0
	em.compileCircle(0, p, hw, 0, false, allowHP)
	em.edge(2, p, out.X, out.Y, 0, false)
	em.ctl.SpanAbort = true

	em.compileGradients(origin, ctx.Gradients[:])
	em.compileFill(pat)
	em.commit()
	return true
}

// compileDot handles lines of length zero. Square dots are bounded by
// four soft edges, like the square caps of longer lines.
func compileDot(dev *Device, ctx *DrawContext, p Point, hw int32, capStyle graphics.LineCapStyle, pat PatternDescriptor) bool {
	switch capStyle {
	case graphics.LineCapRound:
		return compileRing(dev, ctx, p, hw, 0, false)
	case graphics.LineCapSquare:
		em, ok := beginPass(dev, ctx, boxAround(p, hw+ctx.edgeMargin()))
		if !ok {
			return false
		}
		for slot, n := range [4]Point{{FixedOne, 0}, {-FixedOne, 0}, {0, FixedOne}, {0, -FixedOne}} {
			em.edge(slot, p, n.X, n.Y, hw, true)
		}
		em.ctl.SpanAbort = true
		em.compileGradients(p, ctx.Gradients[:])
		em.compileFill(pat)
		em.commit()
		return true
	default:
		return false
	}
}

// pinBox moves the side of box which faces the axis-aligned direction out
// to distance ext beyond p.
func pinBox(box *Box, p, out Point, ext int32) {
	switch {
	case out.X > 0:
		box.XMax = p.X + ext
	case out.X < 0:
		box.XMin = p.X - ext
	case out.Y > 0:
		box.YMax = p.Y + ext
	case out.Y < 0:
		box.YMin = p.Y - ext
	}
}

// spanDelay returns the horizontal extent of a line in whole pixels, given
// the x component of its normal (16.16) and its half width (28.4).
func spanDelay(box Box, nx, hw int32) uint8 {
	const limit = 255
	if nx == 0 {
		return uint8(min(box.columns(), limit))
	}
	w := (int64(2*hw)<<FixedShift + abs32(nx) - 1) / abs32(nx)
	px := (w + subpixelMask) >> SubpixelShift
	return uint8(min(px, limit))
}
