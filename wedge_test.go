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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wedgeState is the part of the device and context which CompileWedge
// must leave unchanged.
type wedgeState struct {
	Clip      Box
	Gradients [MaxGradients]GradientDescriptor
}

func getWedgeState(dev *Device, ctx *DrawContext) wedgeState {
	return wedgeState{Clip: dev.Clip, Gradients: ctx.Gradients}
}

func TestWedgeRestoresState(t *testing.T) {
	c := Point{800, 800}
	cases := []struct {
		name string
		w    Wedge
	}{
		{"convex", Wedge{Center: c, Radius: 320, Dir1: Point{16, 0}, Dir2: Point{0, 16}}},
		{"concave", Wedge{Center: c, Radius: 320, Dir1: Point{0, 16}, Dir2: Point{16, 0}, Concave: true}},
		{"same_direction", Wedge{Center: c, Radius: 320, Dir1: Point{16, 16}, Dir2: Point{32, 32}}},
		{"clipped", Wedge{Center: Point{-8000, -8000}, Radius: 320, Dir1: Point{16, 0}, Dir2: Point{0, 16}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dev, _ := newTestDevice(100, 100)
			ctx := NewDrawContext()
			ctx.Gradients[0] = GradientDescriptor{Mode: GradientEnabled, XSlope: FixedOne}
			ctx.Gradients[1] = GradientDescriptor{Mode: GradientEnabled | GradientRightEdge, YSlope: -FixedOne}
			ctx.Gradients[3] = GradientDescriptor{Mode: GradientEnabled, Offset: 7}

			before := getWedgeState(dev, ctx)
			CompileWedge(dev, ctx, tc.w)
			after := getWedgeState(dev, ctx)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("state changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestWedgeSameDirection(t *testing.T) {
	for _, concave := range []bool{false, true} {
		dev, rec := newTestDevice(100, 100)
		w := Wedge{Center: Point{800, 800}, Radius: 320, Dir1: Point{16, 0}, Dir2: Point{48, 0}, Concave: concave}
		if CompileWedge(dev, NewDrawContext(), w) {
			t.Errorf("concave=%t: empty wedge reported as drawn", concave)
		}
		if len(rec.Passes) != 0 {
			t.Errorf("concave=%t: got %d passes, want 0", concave, len(rec.Passes))
		}
	}
}

func TestWedgeQuarter(t *testing.T) {
	dev, rec := newTestDevice(100, 100)
	ctx := NewDrawContext()
	c := Point{800, 800}
	const radius = 320
	w := Wedge{Center: c, Radius: radius, Dir1: Point{16, 0}, Dir2: Point{0, 16}}
	if !CompileWedge(dev, ctx, w) {
		t.Fatal("wedge not drawn")
	}
	if len(rec.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(rec.Passes))
	}
	p := &rec.Passes[0]
	if p.Control.Enable != 0b1111 || p.Control.Quadratic != 0b0001 {
		t.Errorf("Enable = %06b, Quadratic = %06b", p.Control.Enable, p.Control.Quadratic)
	}
	if p.Control.Union != 0 {
		t.Errorf("convex wedge uses union: %06b", p.Control.Union)
	}

	// the box is trimmed to the quadrant, plus a pixel of margin
	ext := int32(radius) + ctx.edgeMargin()
	want := Box{XMin: c.X - SubpixelOne, YMin: c.Y - SubpixelOne, XMax: c.X + ext, YMax: c.Y + ext}
	if p.Box != want {
		t.Errorf("box %v, want %v", p.Box, want)
	}

	g1, _ := p.Get(2)
	g2, _ := p.Get(3)
	if g1.XSlope != 0 || g1.YSlope != FixedOne {
		t.Errorf("first ray has slopes (%d, %d)", g1.XSlope, g1.YSlope)
	}
	if g2.XSlope != FixedOne || g2.YSlope != 0 {
		t.Errorf("second ray has slopes (%d, %d)", g2.XSlope, g2.YSlope)
	}
	if problems := checkPass(p); problems != nil {
		t.Error(problems)
	}
}

func TestWedgeHalfDisc(t *testing.T) {
	dev, rec := newTestDevice(100, 100)
	w := Wedge{Center: Point{800, 800}, Radius: 320, Dir1: Point{16, 0}, Dir2: Point{-16, 0}}
	if !CompileWedge(dev, NewDrawContext(), w) {
		t.Fatal("wedge not drawn")
	}
	p := &rec.Passes[0]
	g1, _ := p.Get(2)
	g2, _ := p.Get(3)
	if g1 != g2 {
		t.Errorf("half disc rays differ: %v %v", g1, g2)
	}
	if want := boxAround(Point{800, 800}, 320+SubpixelOne); p.Box != want {
		t.Errorf("box %v, want %v", p.Box, want)
	}
}

func TestWedgeConcave(t *testing.T) {
	compile := func(w Wedge) *Pass {
		t.Helper()
		dev, rec := newTestDevice(100, 100)
		if !CompileWedge(dev, NewDrawContext(), w) {
			t.Fatal("wedge not drawn")
		}
		return &rec.Passes[0]
	}
	start := func(p *Pass, slot int) int32 {
		l, _ := p.Get(slot)
		return l.Start
	}

	// 270 degrees: the rays are perpendicular, so a seam is needed
	base := Wedge{Center: Point{800, 800}, Radius: 320, Dir1: Point{0, 16}, Dir2: Point{16, 0}, Concave: true}
	p := compile(base)
	if p.Control.Union != 0b1100 {
		t.Errorf("Union = %06b, want 001100", p.Control.Union)
	}
	if p.Control.SpanAbort {
		t.Error("SpanAbort set for a concave wedge")
	}

	shared1 := base
	shared1.Shared1 = true
	both := shared1
	both.Shared2 = true

	q1 := compile(shared1)
	q2 := compile(both)
	if d := start(p, 2) - start(q1, 2); d != wedgeSeam {
		t.Errorf("first ray seam offset %d, want %d", d, wedgeSeam)
	}
	if d := start(q1, 3) - start(q2, 3); d != wedgeSeam {
		t.Errorf("second ray seam offset %d, want %d", d, wedgeSeam)
	}
	if start(q2, 2) != start(p, 2)-wedgeSeam {
		t.Error("shared first ray has a seam")
	}

	// 225 degrees: the rays diverge and no seam is added
	wide := Wedge{Center: Point{800, 800}, Radius: 320, Dir1: Point{0, 16}, Dir2: Point{16, -16}, Concave: true}
	wideShared := wide
	wideShared.Shared1 = true
	if a, b := start(compile(wide), 2), start(compile(wideShared), 2); a != b {
		t.Errorf("seam added to diverging rays: %d != %d", a, b)
	}
}

func TestWedgeUserGradients(t *testing.T) {
	dev, rec := newTestDevice(100, 100)
	ctx := NewDrawContext()
	ctx.Gradients[2] = GradientDescriptor{Mode: GradientEnabled, XSlope: FixedOne, Anchor: Point{800, 0}}
	w := Wedge{Center: Point{800, 800}, Radius: 320, Dir1: Point{16, 0}, Dir2: Point{0, 16}}
	CompileWedge(dev, ctx, w)
	if n := len(rec.Passes[0].Limiters); n != 5 {
		t.Errorf("got %d limiters, want circle, two rays and one user gradient", n)
	}
}
