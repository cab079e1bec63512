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

var wedgeCases = []TestCase{
	{
		Name:   "quarter",
		Width:  64,
		Height: 64,
		Shape:  Wedge{Center: pt(32, 32), Radius: 24, Angle1: 0, Angle2: 90},
	},
	{
		Name:   "narrow",
		Width:  64,
		Height: 64,
		Shape:  Wedge{Center: pt(32, 32), Radius: 24, Angle1: 200, Angle2: 215},
	},
	{
		Name:   "half",
		Width:  64,
		Height: 64,
		Shape:  Wedge{Center: pt(32, 32), Radius: 24, Angle1: 90, Angle2: 270},
	},
	{
		Name:   "concave",
		Width:  64,
		Height: 64,
		Shape:  Wedge{Center: pt(32, 32), Radius: 24, Angle1: 30, Angle2: 300},
	},
	{
		Name:   "ring_segment",
		Width:  64,
		Height: 64,
		Shape:  Wedge{Center: pt(32, 32), Radius: 22, RingWidth: 8, Angle1: -45, Angle2: 120},
	},
}
