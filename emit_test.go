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

func TestLimiterFlipped(t *testing.T) {
	const rows = 17
	ll := []Limiter{
		{Start: 12345, XSlope: 65536, YSlope: -40000},
		{Start: -7, XSlope: 0, YSlope: 65536},
		{Start: 1 << 20, XSlope: -3, YSlope: 123},
	}
	for _, l := range ll {
		f := l.flipped(rows)
		for py := range int32(rows) {
			for px := range int32(5) {
				if got, want := f.At(px, rows-1-py), l.At(px, py); got != want {
					t.Fatalf("%v flipped: value at (%d, %d) = %d, want %d", l, px, py, got, want)
				}
			}
		}
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	rec.Emit(0, Limiter{Start: 1})
	rec.Emit(3, Limiter{Start: 2})
	box := Box{XMax: 16, YMax: 16}
	rec.Commit(box, Control{Enable: 0b1001})
	rec.Commit(box, Control{})

	want := []Pass{
		{
			Box: box,
			Limiters: []SlotLimiter{
				{Slot: 0, Limiter: Limiter{Start: 1}},
				{Slot: 3, Limiter: Limiter{Start: 2}},
			},
			Control: Control{Enable: 0b1001},
		},
		{Box: box},
	}
	if diff := cmp.Diff(want, rec.Passes); diff != "" {
		t.Errorf("unexpected passes (-want +got):\n%s", diff)
	}

	l, ok := rec.Passes[0].Get(3)
	if !ok || l.Start != 2 {
		t.Errorf("Get(3) = %v, %t", l, ok)
	}
	if _, ok := rec.Passes[0].Get(1); ok {
		t.Error("Get(1) found a limiter in an empty slot")
	}

	rec.Reset()
	if len(rec.Passes) != 0 {
		t.Errorf("%d passes after Reset", len(rec.Passes))
	}
}

func TestEmitterCommit(t *testing.T) {
	dev, rec := newTestDevice(100, 100)
	dev.Caps = CapHighPrecision
	ctx := NewDrawContext()
	ctx.Features |= FeatureHighPrecision
	ctx.AAMask = 0b000001
	ctx.Fill = FillPattern
	ctx.Pattern = PatternDescriptor{XSlope: FixedOne}

	em, ok := beginPass(dev, ctx, Box{XMin: 160, YMin: 160, XMax: 320, YMax: 320})
	if !ok {
		t.Fatal("pass rejected")
	}
	if em.clipped {
		t.Error("box inside the clip rectangle reported as clipped")
	}
	em.edge(0, Point{X: 160, Y: 160}, FixedOne, 0, 0, true)
	em.edge(1, Point{X: 160, Y: 160}, 0, FixedOne, 0, true)
	em.compileFill(ctx.Pattern)
	em.commit()

	p := rec.Passes[0]
	if problems := checkPass(&p); problems != nil {
		t.Fatal(problems)
	}
	if !p.Control.HighPrecision {
		t.Error("HighPrecision not set")
	}
	if p.Control.Threshold != 0b000001 {
		t.Errorf("Threshold = %06b, want AAMask 000001", p.Control.Threshold)
	}

	// value at the first pixel centre is half a pixel, plus the soft
	// edge bias, shifted into the high-precision format
	l, _ := p.Get(0)
	want := Limiter{
		Start:  (fixedHalf + fixedHalf) << HighPrecisionShift,
		XSlope: FixedOne << HighPrecisionShift,
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("slot 0 (-want +got):\n%s", diff)
	}

	pat, ok := p.Get(PatternSlot)
	if !ok {
		t.Fatal("no pattern limiter")
	}
	if want := (Limiter{Start: (10*FixedOne + fixedHalf) << HighPrecisionShift, XSlope: FixedOne << HighPrecisionShift}); pat != want {
		t.Errorf("pattern limiter = %v, want %v", pat, want)
	}
}

func TestBeginPassClipped(t *testing.T) {
	dev, rec := newTestDevice(10, 10)
	ctx := NewDrawContext()

	if _, ok := beginPass(dev, ctx, Box{XMin: 200, YMin: 0, XMax: 300, YMax: 100}); ok {
		t.Error("box outside the clip rectangle accepted")
	}
	em, ok := beginPass(dev, ctx, Box{XMin: -50, YMin: 0, XMax: 100, YMax: 100})
	if !ok || !em.clipped {
		t.Errorf("partly visible box: ok=%t clipped=%t", ok, em != nil && em.clipped)
	}
	if len(rec.Passes) != 0 {
		t.Error("beginPass must not emit anything")
	}
}

type rejectAll struct{}

func (rejectAll) ClipBox(Box, *Box) bool { return false }

func TestClipper(t *testing.T) {
	dev, rec := newTestDevice(100, 100)
	dev.Clipper = rejectAll{}
	ctx := NewDrawContext()
	if CompileCircle(dev, ctx, Circle{Center: Point{X: 800, Y: 800}, Radius: 160}) {
		t.Error("circle rejected by the clipper was compiled")
	}
	if len(rec.Passes) != 0 {
		t.Errorf("%d passes emitted", len(rec.Passes))
	}
}
