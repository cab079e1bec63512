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

// GradientMode holds the mode flags of a GradientDescriptor.
type GradientMode uint8

const (
	// GradientEnabled marks a descriptor as active.
	GradientEnabled GradientMode = 1 << iota

	// GradientAutoOrigin makes Anchor relative to the origin of the shape
	// (the circle centre, or the start point of a line) instead of absolute.
	GradientAutoOrigin

	// GradientRightEdge moves the zero crossing down by one unit, so that
	// two gradients with opposite slopes through the same anchor do not
	// both cover the pixels on the boundary.
	GradientRightEdge

	// GradientConcave puts the gradient into the union group.
	GradientConcave

	// GradientThreshold gives the gradient a soft edge when antialiasing
	// is enabled.
	GradientThreshold
)

// Has reports whether all flags in f are set.
func (m GradientMode) Has(f GradientMode) bool {
	return m&f == f
}

// GradientDescriptor describes a linear ramp which is layered onto a shape
// as one extra limiter.
type GradientDescriptor struct {
	Mode GradientMode

	// Anchor is the point where the ramp is zero (28.4).
	Anchor Point

	// XSlope and YSlope give the increase per device pixel (16.16).
	XSlope, YSlope int32

	// Offset is added to the ramp (16.16).
	Offset int32
}

// compileLinearGradient loads g into slot. origin is the reference point
// for GradientAutoOrigin.
func (em *emitter) compileLinearGradient(g *GradientDescriptor, origin Point, slot int) {
	anchor := g.Anchor
	if g.Mode.Has(GradientAutoOrigin) {
		anchor = anchor.Add(origin)
	}

	l := em.halfPlane(anchor, g.XSlope, g.YSlope)
	if em.ctl.Flip {
		l = l.flipped(em.rows)
	}
	s := int64(l.Start) + int64(g.Offset)
	if g.Mode.Has(GradientRightEdge) {
		s--
	}
	if g.Mode.Has(GradientThreshold) && em.ctx.antialiased() {
		s += fixedHalf
		em.ctl.Threshold |= slotBit(slot)
	}
	l.Start = sat32(s)
	em.set(slot, l)

	if g.Mode.Has(GradientConcave) {
		// coverage is no longer a single span per row
		em.ctl.Union |= slotBit(slot)
		em.ctl.SpanAbort = false
	}
}

// compileGradients loads the enabled descriptors of gs into the free slots,
// in order. Descriptors which find no free slot are dropped. The return
// value is the number of gradients loaded.
func (em *emitter) compileGradients(origin Point, gs []GradientDescriptor) int {
	n := 0
	for i := range gs {
		g := &gs[i]
		if !g.Mode.Has(GradientEnabled) {
			continue
		}
		slot, ok := em.alloc()
		if !ok {
			Logger().Debug("no limiter slot for gradient", "index", i)
			break
		}
		em.compileLinearGradient(g, origin, slot)
		n++
	}
	return n
}
