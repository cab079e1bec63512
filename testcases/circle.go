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

var circleCases = []TestCase{
	{
		Name:   "disc",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 20},
	},
	{
		Name:   "disc_subpixel",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(31.25, 32.5), Radius: 19.75},
	},
	{
		Name:   "disc_clipped",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(60, 10), Radius: 24},
	},
	{
		Name:   "disc_blur",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 20},
		Style:  Style{Blur: 3},
	},
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 20, RingWidth: 6},
	},
	{
		Name:   "ring_thin",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 24, RingWidth: 1},
	},
	{
		Name:   "inverted",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 20, Invert: true},
	},
	{
		Name:   "inverted_ring",
		Width:  64,
		Height: 64,
		Shape:  Circle{Center: pt(32, 32), Radius: 20, RingWidth: 8, Invert: true},
	},
	{
		Name:   "large",
		Width:  512,
		Height: 512,
		Shape:  Circle{Center: pt(256, 256), Radius: 240},
	},
}
