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
	"math/bits"
)

// Fixed-point formats.
//
// Coordinates are 28.4 subpixel values: one device pixel is SubpixelOne
// units. Limiter coefficients are 16.16 values per device pixel, optionally
// shifted left by HighPrecisionShift when the high-precision limiter mode is
// active.
const (
	// SubpixelShift is the number of fractional bits of a coordinate.
	SubpixelShift = 4

	// SubpixelOne is one device pixel in coordinate units.
	SubpixelOne = 1 << SubpixelShift

	subpixelMask = SubpixelOne - 1

	// FixedShift is the number of fractional bits of a limiter coefficient.
	FixedShift = 16

	// FixedOne is 1.0 as a limiter coefficient.
	FixedOne = 1 << FixedShift

	fixedHalf = FixedOne >> 1

	// HighPrecisionShift is the extra number of fractional bits carried by
	// limiter coefficients in high-precision mode.
	HighPrecisionShift = 4

	// legacyPrecisionShift is the extra number of fractional bits of the
	// legacy high-precision format used for blurred circles.
	legacyPrecisionShift = 2

	// subToFixed converts a coordinate distance to a 16.16 value.
	subToFixed = FixedShift - SubpixelShift
)

// subFloor rounds a coordinate down to a whole pixel.
func subFloor(v int32) int32 { return v &^ subpixelMask }

// subCeil rounds a coordinate up to a whole pixel.
func subCeil(v int32) int32 { return (v + subpixelMask) &^ subpixelMask }

// sat32 clamps v to [-MaxInt32, MaxInt32]. The range is symmetric, so that
// negating a saturated value is exact.
func sat32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < -math.MaxInt32:
		return -math.MaxInt32
	}
	return int32(v)
}

// mulShift returns (a*b) >> shift using a 64-bit intermediate product.
// The shift is arithmetic, so the result rounds towards negative infinity.
func mulShift(a, b int32, shift uint) int32 {
	return sat32((int64(a) * int64(b)) >> shift)
}

// shiftLeftSat shifts v left by s bits, saturating on overflow.
func shiftLeftSat(v int32, s uint) int32 {
	return sat32(int64(v) << s)
}

// divPow2 divides v by 2^shift, truncating towards zero.
func divPow2(v int64, shift uint) int64 {
	return v / (int64(1) << shift)
}

// abs32 returns the absolute value of v as an int64, so that MinInt32 is
// representable.
func abs32(v int32) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// rsqrtTable[i] approximates 1/sqrt((i+64)/64) as a 24.8 value.
var rsqrtTable = func() (t [192]uint16) {
	for i := range t {
		m := float64(i+64) / 64
		t[i] = uint16(math.Round(256 / math.Sqrt(m)))
	}
	return t
}()

// rsqrt approximates 1/sqrt(v) for v > 0. The result is r / 2^shift.
//
// The argument is normalized to a mantissa in [64, 256), the table gives
// an 8 bit estimate and two Newton steps refine it to about 30 bits.
func rsqrt(v uint64) (r uint64, shift int) {
	e := bits.Len64(v) - 8
	if e&1 != 0 {
		e++
	}
	var m uint64
	if e >= 0 {
		m = v >> uint(e)
	} else {
		m = v << uint(-e)
	}

	// y approximates 2^30 / sqrt(m)
	y := uint64(rsqrtTable[m-64]) << 19
	for range 2 {
		t := (m * y * y) >> 30
		y = (y * (3<<30 - t)) >> 31
	}
	return y, 30 + e/2
}

// unitVector returns (dx, dy) scaled to unit length, as 16.16 values
// rounded to nearest.
// The zero vector maps to itself.
func unitVector(dx, dy int32) (ux, uy int32) {
	l2 := uint64(abs32(dx)*abs32(dx)) + uint64(abs32(dy)*abs32(dy))
	if l2 == 0 {
		return 0, 0
	}
	r, shift := rsqrt(l2)
	s := uint(shift - FixedShift)
	half := int64(1) << (s - 1)
	ux = sat32((int64(dx)*int64(r) + half) >> s)
	uy = sat32((int64(dy)*int64(r) + half) >> s)
	return ux, uy
}

// vecLength returns the length of (dx, dy) in the units of its arguments.
func vecLength(dx, dy int32) int32 {
	l2 := uint64(abs32(dx)*abs32(dx)) + uint64(abs32(dy)*abs32(dy))
	if l2 == 0 {
		return 0
	}
	r, shift := rsqrt(l2)
	// |d| = l2 / sqrt(l2), rounded to nearest
	hi, lo := bits.Mul64(l2, r)
	lo, carry := bits.Add64(lo, 1<<(shift-1), 0)
	hi += carry
	return sat32(int64(shiftRight128(hi, lo, uint(shift))))
}

// shiftRight128 returns the low 64 bits of (hi:lo) >> s.
func shiftRight128(hi, lo uint64, s uint) uint64 {
	if s >= 64 {
		return hi >> (s - 64)
	}
	return lo>>s | hi<<(64-s)
}

// scaleFixed multiplies a coordinate distance by a 16.16 factor.
func scaleFixed(v, f int32) int32 {
	return mulShift(v, f, FixedShift)
}
