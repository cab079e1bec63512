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

// PatternDescriptor maps device coordinates to the pattern coordinate u,
// which the rasterizer uses to look up pattern and texture fills.
type PatternDescriptor struct {
	// Origin is the point where u is zero (28.4).
	Origin Point

	// XSlope and YSlope give the increase of u per device pixel (16.16).
	XSlope, YSlope int32

	// AutoAdvance aligns the pattern with the direction of each line, and
	// continues it from where the previous line ended.
	AutoAdvance bool
}

// compilePattern returns the pattern limiter for a pass over box, scanned
// top-to-bottom.
func compilePattern(p PatternDescriptor, box Box) Limiter {
	o := box.origin()
	x := int64(p.Origin.X) - int64(o.X)
	y := int64(p.Origin.Y) - int64(o.Y)
	return plane(x, y, p.XSlope, p.YSlope)
}

// compilePatternFlipped returns the pattern limiter for a pass over box,
// scanned bottom-to-top. The origin is reflected across the rows of the
// box and the y slope changes sign.
func compilePatternFlipped(p PatternDescriptor, box Box) Limiter {
	o := box.origin()
	x := int64(p.Origin.X) - int64(o.X)
	y := int64(box.rows())<<SubpixelShift - (int64(p.Origin.Y) - int64(o.Y))
	return plane(x, y, p.XSlope, -p.YSlope)
}

// compileFill loads the pattern limiter, unless the fill is solid.
func (em *emitter) compileFill(p PatternDescriptor) {
	if em.ctx.Fill == FillSolid {
		return
	}
	if em.ctl.Flip {
		em.pattern = compilePatternFlipped(p, em.box)
	} else {
		em.pattern = compilePattern(p, em.box)
	}
	em.ctl.Pattern = true
}

// linePattern returns the pattern descriptor for a line from p0 in
// direction d, and advances the pattern pen by the length of the line.
func (c *DrawContext) linePattern(p0, d Point) PatternDescriptor {
	p := c.Pattern
	if !p.AutoAdvance || d.IsZero() {
		return p
	}

	tx, ty := unitVector(d.X, d.Y)
	scale := vecLength(p.XSlope, p.YSlope)
	p.XSlope = scaleFixed(tx, scale)
	p.YSlope = scaleFixed(ty, scale)
	p.Origin = Point{
		X: p0.X - scaleFixed(c.PatternOffset, tx),
		Y: p0.Y - scaleFixed(c.PatternOffset, ty),
	}

	c.PatternOffset += vecLength(d.X, d.Y)
	return p
}
