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

package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single compiler scenario.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Shape  Shape  // the geometry to compile
	Style  Style
}

// Shape is one of Circle, Polyline, Taper or Wedge.
type Shape interface {
	isShape()
}

// Circle is a disc, or a ring if RingWidth is positive.
type Circle struct {
	Center    vec.Vec2
	Radius    float64
	RingWidth float64
	Invert    bool
}

func (Circle) isShape() {}

// Polyline is an open sequence of line segments of constant width,
// connected by joins.
type Polyline struct {
	Points []vec.Vec2
	Width  float64
}

func (Polyline) isShape() {}

// Taper is a single line segment whose width changes linearly from W0 to
// W1.
type Taper struct {
	P0, P1 vec.Vec2
	W0, W1 float64
}

func (Taper) isShape() {}

// Wedge is a sector of a disc or ring, from Angle1 to Angle2 in degrees,
// measured clockwise from the positive x axis (the y axis points down).
// Sectors wider than 180 degrees are concave.
type Wedge struct {
	Center         vec.Vec2
	Radius         float64
	RingWidth      float64
	Angle1, Angle2 float64
}

func (Wedge) isShape() {}

// Style holds the drawing state for a scenario.
type Style struct {
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // zero means the default of 10
	Blur       float64                // blur radius in pixels, zero for none
	NoAA       bool                   // disable antialiasing
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
