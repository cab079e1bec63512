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

import "seehuhn.de/go/pdf/graphics"

var taperCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Shape:  Taper{P0: pt(10, 32), W0: 4, P1: pt(54, 32), W1: 12},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Shape:  Taper{P0: pt(12, 52), W0: 10, P1: pt(52, 12), W1: 2},
	},
	{
		Name:   "pointed",
		Width:  64,
		Height: 64,
		Shape:  Taper{P0: pt(8, 8), W0: 0, P1: pt(56, 40), W1: 16},
	},
	{
		Name:   "round",
		Width:  64,
		Height: 64,
		Shape:  Taper{P0: pt(14, 32), W0: 8, P1: pt(48, 32), W1: 20},
		Style:  Style{Cap: graphics.LineCapRound},
	},
}
