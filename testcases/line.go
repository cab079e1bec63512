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

var lineCases = []TestCase{
	{
		Name:   "horizontal_butt",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 32), pt(54, 32)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapButt},
	},
	{
		Name:   "horizontal_square",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 32), pt(54, 32)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapSquare},
	},
	{
		Name:   "horizontal_round",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 32), pt(54, 32)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapRound},
	},
	{
		Name:   "vertical_butt",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(32, 54), pt(32, 10)}, Width: 6},
		Style:  Style{Cap: graphics.LineCapButt},
	},
	{
		Name:   "diagonal_butt",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 10), pt(54, 44)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapButt},
	},
	{
		Name:   "diagonal_flipped",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 54), pt(54, 20)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapSquare},
	},
	{
		Name:   "diagonal_round",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(12, 50), pt(52, 14)}, Width: 10},
		Style:  Style{Cap: graphics.LineCapRound},
	},
	{
		Name:   "hairline",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(5.5, 7.25), pt(58.5, 41.75)}, Width: 1},
		Style:  Style{Cap: graphics.LineCapRound},
	},
	{
		Name:   "wide_round",
		Width:  512,
		Height: 512,
		Shape:  Polyline{Points: []vec.Vec2{pt(150, 150), pt(362, 362)}, Width: 280},
		Style:  Style{Cap: graphics.LineCapRound},
	},
	{
		Name:   "corner_miter",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 50), pt(32, 14), pt(54, 50)}, Width: 6},
		Style:  Style{Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_miter_limited",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 50), pt(32, 14), pt(54, 50)}, Width: 6},
		Style:  Style{Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 1.2},
	},
	{
		Name:   "corner_bevel",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 50), pt(32, 14), pt(54, 50)}, Width: 6},
		Style:  Style{Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "zigzag",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(6, 40), pt(18, 20), pt(30, 40), pt(42, 20), pt(58, 40)}, Width: 4},
		Style:  Style{Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter},
	},
	{
		Name:   "blur",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(10, 20), pt(54, 44)}, Width: 8},
		Style:  Style{Cap: graphics.LineCapButt, Blur: 2},
	},
	{
		Name:   "dot_round",
		Width:  64,
		Height: 64,
		Shape:  Polyline{Points: []vec.Vec2{pt(32, 32), pt(32, 32)}, Width: 12},
		Style:  Style{Cap: graphics.LineCapRound},
	},
}
