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
	"seehuhn.de/go/geom/rect"
)

// newTestDevice returns a device with the given clip rectangle (in pixels)
// which records all passes.
func newTestDevice(w, h float64) (*Device, *Recorder) {
	rec := &Recorder{}
	dev := NewDevice(BoxFromRect(rect.Rect{URx: w, URy: h}), rec)
	return dev, rec
}

// hardContext returns a draw context without antialiasing, so that every
// limiter is a plain half plane test at the pixel centres.
func hardContext() *DrawContext {
	ctx := NewDrawContext()
	ctx.Features = 0
	return ctx
}

// covers evaluates the linear limiters of a pass at device pixel (x, y).
// The second result is false if the pixel is outside the pass box. Passes
// containing circle limiters cannot be evaluated this way.
func covers(p *Pass, x, y int) (bool, bool) {
	cx := int32(x)<<SubpixelShift + SubpixelOne/2
	cy := int32(y)<<SubpixelShift + SubpixelOne/2
	if !p.Box.Contains(Point{X: cx, Y: cy}) {
		return false, false
	}
	if p.Control.Quadratic != 0 {
		panic("pass contains circle limiters")
	}

	o := p.Box.origin()
	px := int32(x) - o.X>>SubpixelShift
	py := int32(y) - o.Y>>SubpixelShift
	if p.Control.Flip {
		py = p.Box.rows() - 1 - py
	}

	inside := true
	anyUnion, inUnion := false, false
	for _, sl := range p.Limiters {
		if sl.Slot >= MaxLimiters {
			continue
		}
		v := sl.Limiter.At(px, py)
		if p.Control.Union.Has(sl.Slot) {
			anyUnion = true
			inUnion = inUnion || v >= 0
		} else {
			inside = inside && v >= 0
		}
	}
	return inside && (!anyUnion || inUnion), true
}

// checkPass verifies the structural invariants which every pass must
// satisfy.
func checkPass(p *Pass) []string {
	var problems []string
	ctl := p.Control
	var seen SlotMask
	last := -1
	for _, sl := range p.Limiters {
		switch {
		case sl.Slot == PatternSlot:
			if !ctl.Pattern {
				problems = append(problems, "pattern limiter without Pattern bit")
			}
			continue
		case sl.Slot < 0 || sl.Slot >= MaxLimiters:
			problems = append(problems, "slot index out of range")
			continue
		case sl.Slot <= last:
			problems = append(problems, "limiters not in slot order")
		}
		last = sl.Slot
		seen |= slotBit(sl.Slot)
	}
	if seen != ctl.Enable {
		problems = append(problems, "Enable does not match the emitted slots")
	}
	if ctl.Threshold&^ctl.Enable != 0 {
		problems = append(problems, "Threshold bit on an empty slot")
	}
	if ctl.Union&^ctl.Enable != 0 {
		problems = append(problems, "Union bit on an empty slot")
	}
	for i := range MaxLimiters {
		if ctl.Quadratic.Has(i) && (i+1 >= MaxLimiters || !ctl.Enable.Has(i) || !ctl.Enable.Has(i+1)) {
			problems = append(problems, "circle pair not fully enabled")
		}
	}
	if p.Box.Empty() {
		problems = append(problems, "empty pass box")
	}
	return problems
}
