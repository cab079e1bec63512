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

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a position or direction in 28.4 subpixel device coordinates.
// The y axis points down.
type Point struct {
	X, Y int32
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the origin (or the zero vector).
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// cross returns the z component of the cross product p × q.
func (p Point) cross(q Point) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// dot returns the dot product p · q.
func (p Point) dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// Subpixel converts a length in device pixels to 28.4 units, rounding to
// the nearest subpixel.
func Subpixel(v float64) int32 {
	return int32(math.Round(v * SubpixelOne))
}

// PointFromVec converts a point given in device pixels.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: Subpixel(v.X), Y: Subpixel(v.Y)}
}

// PointFromFixed converts a 26.6 point, as used by golang.org/x/image,
// discarding the two least significant fractional bits.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{X: int32(p.X) >> 2, Y: int32(p.Y) >> 2}
}

// Box is an axis-aligned rectangle in 28.4 subpixel device coordinates.
// The box is empty unless XMin < XMax and YMin < YMax.
type Box struct {
	XMin, YMin, XMax, YMax int32
}

// BoxFromRect converts a rectangle given in device pixels. Since device
// space has its y axis pointing down, LLy becomes the top edge.
func BoxFromRect(r rect.Rect) Box {
	return Box{
		XMin: Subpixel(r.LLx),
		YMin: Subpixel(r.LLy),
		XMax: Subpixel(r.URx),
		YMax: Subpixel(r.URy),
	}
}

// Empty reports whether b contains no area.
func (b Box) Empty() bool {
	return b.XMin >= b.XMax || b.YMin >= b.YMax
}

// Intersect returns the largest box contained in both b and c.
// The result may be empty.
func (b Box) Intersect(c Box) Box {
	return Box{
		XMin: max(b.XMin, c.XMin),
		YMin: max(b.YMin, c.YMin),
		XMax: min(b.XMax, c.XMax),
		YMax: min(b.YMax, c.YMax),
	}
}

// Union returns the smallest box containing both b and c.
func (b Box) Union(c Box) Box {
	return Box{
		XMin: min(b.XMin, c.XMin),
		YMin: min(b.YMin, c.YMin),
		XMax: max(b.XMax, c.XMax),
		YMax: max(b.YMax, c.YMax),
	}
}

// Contains reports whether p lies inside b (right and bottom edge
// excluded).
func (b Box) Contains(p Point) bool {
	return p.X >= b.XMin && p.X < b.XMax && p.Y >= b.YMin && p.Y < b.YMax
}

// origin returns the top-left corner of the first pixel touched by b.
// Limiter coordinates are relative to this point.
func (b Box) origin() Point {
	return Point{X: subFloor(b.XMin), Y: subFloor(b.YMin)}
}

// rows returns the number of pixel rows touched by b.
func (b Box) rows() int32 {
	return (subCeil(b.YMax) - subFloor(b.YMin)) >> SubpixelShift
}

// columns returns the number of pixel columns touched by b.
func (b Box) columns() int32 {
	return (subCeil(b.XMax) - subFloor(b.XMin)) >> SubpixelShift
}

// boxAround returns the square of half side ext centred at p.
func boxAround(p Point, ext int32) Box {
	return Box{XMin: p.X - ext, YMin: p.Y - ext, XMax: p.X + ext, YMax: p.Y + ext}
}

// boxSpan returns the smallest box containing p and q.
func boxSpan(p, q Point) Box {
	return Box{
		XMin: min(p.X, q.X),
		YMin: min(p.Y, q.Y),
		XMax: max(p.X, q.X),
		YMax: max(p.Y, q.Y),
	}
}

// grow moves all four edges of b outwards by ext.
func (b Box) grow(ext int32) Box {
	return Box{XMin: b.XMin - ext, YMin: b.YMin - ext, XMax: b.XMax + ext, YMax: b.YMax + ext}
}
