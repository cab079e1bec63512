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

// Package limiter compiles analytic shapes into the edge equations
// ("limiters") of a fixed-function rasterization unit.
//
// A limiter is a linear function Start + x*XSlope + y*YSlope, evaluated at
// every pixel of a pass. The rasterizer combines up to MaxLimiters of them,
// plus quadratic circle limiters occupying two slots each, into the
// coverage of a disc, ring, line, tapered line or wedge. The compilers in
// this package compute the coefficients and control bits for each pass and
// hand them to a Sink; scan conversion itself happens downstream.
//
// Coordinates are 28.4 fixed point device coordinates with the y axis
// pointing down. Limiter values are 16.16 fixed point.
package limiter

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
