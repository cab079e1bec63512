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

import "math"

// precision identifies the numeric strategy used to set up a circle.
type precision int

const (
	// precisionAligned works in whole pixels. Only valid for unclipped
	// circles whose centre and radius lie on pixel boundaries.
	precisionAligned precision = iota

	// precisionSubpixel works in 28.4 units with circleTweak extra bits
	// in the reciprocal.
	precisionSubpixel

	// precisionBlurWide computes 1/(2·r·blur) with one 64-bit division and
	// scales the results by truncating division.
	precisionBlurWide

	// precisionBlurLegacy computes 1/(2·r) by 32-bit division, multiplies
	// by InvBlur and scales by arithmetic shift into the legacy format.
	// The two blur strategies can differ by one unit in the last place.
	precisionBlurLegacy
)

func (p precision) String() string {
	switch p {
	case precisionAligned:
		return "aligned"
	case precisionSubpixel:
		return "subpixel"
	case precisionBlurWide:
		return "blur-wide"
	case precisionBlurLegacy:
		return "blur-legacy"
	default:
		return "unknown"
	}
}

// circleTweak is the number of extra fractional bits kept in the circle
// reciprocal. Larger values overflow the squared terms of far-away pixels.
const circleTweak = 8

// quadScale is a precision strategy with its reciprocal factor.
// The circle value for a numerator num with frac fractional bits is
// num·recip / 2^(frac+shift).
type quadScale struct {
	mode  precision
	recip int64
	shift uint

	// extra is the number of fractional bits beyond 16.16 in the result.
	extra uint
}

// selectPrecision picks the strategy for a circle of radius r whose centre
// is at (x, y) relative to the pass origin.
func selectPrecision(dev *Device, ctx *DrawContext, x, y int64, r int32, clipped, allowHP bool) precision {
	if ctx.blurred() {
		if allowHP && dev.Caps.Has(CapLegacyHighPrecision) {
			return precisionBlurLegacy
		}
		return precisionBlurWide
	}
	if !clipped && (x|y|int64(r))&subpixelMask == 0 {
		return precisionAligned
	}
	return precisionSubpixel
}

// newQuadScale computes the reciprocal factor for the given strategy.
// The radius must be positive.
func newQuadScale(mode precision, dev *Device, ctx *DrawContext, r int32, allowHP bool) quadScale {
	var extra uint
	if allowHP && dev.Caps.Has(CapHighPrecision) {
		extra = HighPrecisionShift
	}

	q := quadScale{mode: mode, shift: circleTweak - extra, extra: extra}
	switch mode {
	case precisionAligned:
		// 1/(2r) in 16.16 is 2^15/r for r in pixels
		q.recip = (int64(1) << (15 + circleTweak)) / int64(r>>SubpixelShift)
	case precisionSubpixel:
		// 1/(2r) in 16.16 is 2^19/r for r in 28.4
		q.recip = (int64(1) << (19 + circleTweak)) / int64(r)
	case precisionBlurWide:
		q.recip = (int64(1) << (19 + circleTweak + FixedShift)) / (int64(r) * int64(ctx.BlurFactor))
	case precisionBlurLegacy:
		r32 := int32((int64(1) << (19 + circleTweak)) / int64(r))
		q.recip = int64(mulShift(r32, ctx.InvBlur, FixedShift))
		q.extra = legacyPrecisionShift
		q.shift = circleTweak - legacyPrecisionShift
	}
	return q
}

// scale converts a numerator with frac fractional bits.
func (q quadScale) scale(num int64, frac uint) int32 {
	if num != 0 && q.recip != 0 && abs64(num) > math.MaxInt64/q.recip {
		if num < 0 {
			return -math.MaxInt32
		}
		return math.MaxInt32
	}
	v := num * q.recip
	if q.mode == precisionBlurWide {
		return sat32(divPow2(v, frac+q.shift))
	}
	return sat32(v >> (frac + q.shift))
}

// circle evaluates the circle setup for centre (x, y), relative to the
// pass origin, and radius r, all in 28.4 units:
//
//	f = (x²+y²-r²)/(2r),  a = (1-2x)/(2r),  b = (1-2y)/(2r)
//
// in pixel units, with XStep = 2a and YStep = 2b.
func (q quadScale) circle(x, y int64, r int32) CircleLimiter {
	var f, a, b int32
	if q.mode == precisionAligned {
		xi := x >> SubpixelShift
		yi := y >> SubpixelShift
		ri := int64(r >> SubpixelShift)
		f = q.scale(xi*xi+yi*yi-ri*ri, 0)
		a = q.scale(1-2*xi, 0)
		b = q.scale(1-2*yi, 0)
	} else {
		rr := int64(r)
		f = q.scale(x*x+y*y-rr*rr, 2*SubpixelShift)
		a = q.scale(SubpixelOne-2*x, SubpixelShift)
		b = q.scale(SubpixelOne-2*y, SubpixelShift)
	}
	return CircleLimiter{
		Start:  f,
		ASlope: a,
		BSlope: b,
		XStep:  sat32(2 * int64(a)),
		YStep:  sat32(2 * int64(b)),
	}
}
