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

// Circle describes a disc or a ring.
type Circle struct {
	Center Point
	Radius int32

	// RingWidth is the width of the ring, centred on Radius. If zero, the
	// OutlineWidth of the DrawContext is used, and a width of zero gives a
	// filled disc.
	RingWidth int32

	// Invert selects the outside of the circle. Inverted circles cover the
	// whole clip rectangle apart from the disc (or ring).
	Invert bool
}

// CompileCircle compiles a disc or ring into one pass. The result is false
// if the circle lies outside the clip rectangle, in which case nothing is
// emitted. The radius must be positive.
func CompileCircle(dev *Device, ctx *DrawContext, c Circle) bool {
	width := c.RingWidth
	if width == 0 {
		width = ctx.OutlineWidth
	}
	return compileRing(dev, ctx, c.Center.Add(ctx.ShadowOffset), c.Radius, width/2, c.Invert)
}

// compileRing emits the pass for a circle with the given centre, after the
// shadow offset has been applied. A band of zero gives a disc.
func compileRing(dev *Device, ctx *DrawContext, center Point, radius, band int32, invert bool) bool {
	box := boxAround(center, radius+band+ctx.edgeMargin())
	if invert {
		box = dev.Clip
	}
	em, ok := beginPass(dev, ctx, box)
	if !ok {
		Logger().Debug("circle clipped", "center", center, "radius", radius)
		return false
	}

	allowHP := ctx.Features&FeatureHighPrecision != 0
	em.compileCircle(0, center, radius, band, invert, allowHP)
	ring := band > 0 && radius > band
	if ring {
		extra := em.compileCircle(2, center, radius, -band, !invert, allowHP)
		em.slots[2].Start = sat32(int64(em.slots[2].Start) - fixedHalf<<extra)
		if invert {
			em.ctl.Union |= slotBit(0) | slotBit(1) | slotBit(2) | slotBit(3)
		}
	}
	em.ctl.SpanAbort = !ring && !invert

	em.compileGradients(center, ctx.Gradients[:])
	em.compileFill(ctx.Pattern)
	em.commit()
	return true
}

// compileCircle loads the circle of radius radius+band around center into
// the slots slot and slot+1, and returns the number of fractional bits
// beyond 16.16 in the loaded values.
//
// If the pass is scanned bottom-to-top, flip must be called before this
// method.
func (em *emitter) compileCircle(slot int, center Point, radius, band int32, invert, allowHP bool) uint {
	r := radius + band
	x, y := em.relative(center)
	if em.ctl.Flip {
		y = int64(em.rows-1)<<SubpixelShift - y
	}

	mode := selectPrecision(em.dev, em.ctx, x, y, r, em.clipped, allowHP)
	q := newQuadScale(mode, em.dev, em.ctx, r, allowHP)
	c := q.circle(x, y, r)
	if invert {
		c = c.negate()
	}
	em.setCircle(slot, c)

	if mode == precisionBlurLegacy {
		em.ctl.Legacy = true
	}
	if em.ctx.antialiased() {
		em.ctl.Threshold |= slotBit(slot)
	}
	return q.extra
}
