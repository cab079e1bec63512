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

// Limiter is one edge equation. The value at pixel (px, py) of a pass,
// counted from the top-left pixel touched by the pass box, is
//
//	Start + px*XSlope + py*YSlope
//
// in 16.16 pixel units; the pixel-centre offset is included in Start.
// A pixel is inside a linear limiter where the value is non-negative.
type Limiter struct {
	Start  int32
	XSlope int32
	YSlope int32
}

// At returns the value of l at pixel (px, py).
func (l Limiter) At(px, py int32) int64 {
	return int64(l.Start) + int64(px)*int64(l.XSlope) + int64(py)*int64(l.YSlope)
}

func (l Limiter) negate() Limiter {
	return Limiter{Start: -l.Start, XSlope: -l.XSlope, YSlope: -l.YSlope}
}

// flipped re-expresses l for bottom-to-top scanning of a pass with the
// given number of rows. This is the row-reflection form: row py of the
// flipped pass sees the value of row rows-1-py, since values are sampled
// at pixel centres rather than at the box edge.
func (l Limiter) flipped(rows int32) Limiter {
	return Limiter{
		Start:  sat32(int64(l.Start) + int64(rows-1)*int64(l.YSlope)),
		XSlope: l.XSlope,
		YSlope: -l.YSlope,
	}
}

// scaled multiplies all coefficients by the 16.16 factor f.
func (l Limiter) scaled(f int32) Limiter {
	return Limiter{
		Start:  mulShift(l.Start, f, FixedShift),
		XSlope: mulShift(l.XSlope, f, FixedShift),
		YSlope: mulShift(l.YSlope, f, FixedShift),
	}
}

func (l Limiter) shifted(s uint) Limiter {
	if s == 0 {
		return l
	}
	return Limiter{
		Start:  shiftLeftSat(l.Start, s),
		XSlope: shiftLeftSat(l.XSlope, s),
		YSlope: shiftLeftSat(l.YSlope, s),
	}
}

// CircleLimiter holds the five values which describe a circle boundary.
// It occupies two consecutive slots: the first carries Start, ASlope and
// BSlope, the second carries XStep and YStep with a zero start value.
//
// Circle limiters use the opposite sign convention of linear limiters: a
// pixel is inside the circle where the value is negative. Inverted circles
// have all five values negated.
type CircleLimiter struct {
	Start  int32
	ASlope int32
	BSlope int32
	XStep  int32
	YStep  int32
}

func (c CircleLimiter) negate() CircleLimiter {
	return CircleLimiter{
		Start:  -c.Start,
		ASlope: -c.ASlope,
		BSlope: -c.BSlope,
		XStep:  -c.XStep,
		YStep:  -c.YStep,
	}
}

// pair returns the register contents of both slots.
func (c CircleLimiter) pair() (Limiter, Limiter) {
	return Limiter{Start: c.Start, XSlope: c.ASlope, YSlope: c.BSlope},
		Limiter{XSlope: c.XStep, YSlope: c.YStep}
}

// Limiter slots.
const (
	// MaxLimiters is the number of coverage limiter slots.
	MaxLimiters = 6

	// PatternSlot is the register index of the pattern limiter, which is
	// separate from the coverage slots.
	PatternSlot = MaxLimiters
)

// SlotMask has one bit per limiter slot.
type SlotMask uint8

const allSlots SlotMask = 1<<MaxLimiters - 1

// Has reports whether the bit for slot is set.
func (m SlotMask) Has(slot int) bool {
	return m&(1<<slot) != 0
}

// Count returns the number of bits set.
func (m SlotMask) Count() int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}

func slotBit(slot int) SlotMask {
	return 1 << slot
}

// Control holds the logical control bits of one pass. Mapping these to the
// physical control register is up to the Sink.
//
// Coverage is the intersection of all enabled limiters outside Union,
// intersected with the union of the enabled limiters in Union.
type Control struct {
	// Enable lists the slots which hold limiters.
	Enable SlotMask

	// Union lists the slots whose coverage is combined by union.
	Union SlotMask

	// Quadratic marks the first slot of every circle pair.
	Quadratic SlotMask

	// Threshold lists the slots which get a soft (antialiased) edge.
	Threshold SlotMask

	// Pattern is set if the pattern limiter was loaded.
	Pattern bool

	// HighPrecision is set if the limiters use the high-precision format.
	HighPrecision bool

	// Legacy is set if circle pairs use the legacy high-precision format.
	Legacy bool

	// Flip is set if the pass is scanned bottom-to-top.
	Flip bool

	// SpanAbort allows the rasterizer to leave a row once the covered span
	// has ended.
	SpanAbort bool

	// SpanStore allows the rasterizer to start each row at the first
	// covered pixel of the previous row.
	SpanStore bool

	// SpanDelay is the number of pixels to scan past the stored span start
	// before SpanAbort may trigger.
	SpanDelay uint8
}

// Sink receives the output of the compilers, in command-stream order.
//
// For every pass, Emit is called once per loaded limiter, followed by one
// call to Commit with the clipped pass box and the control bits.
type Sink interface {
	Emit(slot int, l Limiter)
	Commit(box Box, ctl Control)
}

// SlotLimiter is a limiter together with its slot index.
type SlotLimiter struct {
	Slot    int
	Limiter Limiter
}

// Pass is one committed pass, as recorded by a Recorder.
type Pass struct {
	Box      Box
	Limiters []SlotLimiter
	Control  Control
}

// Get returns the limiter loaded into the given slot.
func (p *Pass) Get(slot int) (Limiter, bool) {
	for _, sl := range p.Limiters {
		if sl.Slot == slot {
			return sl.Limiter, true
		}
	}
	return Limiter{}, false
}

// Circle returns the circle limiter whose pair starts at slot.
func (p *Pass) Circle(slot int) (CircleLimiter, bool) {
	if !p.Control.Quadratic.Has(slot) {
		return CircleLimiter{}, false
	}
	a, ok1 := p.Get(slot)
	b, ok2 := p.Get(slot + 1)
	if !ok1 || !ok2 {
		return CircleLimiter{}, false
	}
	return CircleLimiter{
		Start:  a.Start,
		ASlope: a.XSlope,
		BSlope: a.YSlope,
		XStep:  b.XSlope,
		YStep:  b.YSlope,
	}, true
}

// Recorder is a Sink which stores all passes in memory.
type Recorder struct {
	Passes []Pass

	pending []SlotLimiter
}

// Emit implements the Sink interface.
func (r *Recorder) Emit(slot int, l Limiter) {
	r.pending = append(r.pending, SlotLimiter{Slot: slot, Limiter: l})
}

// Commit implements the Sink interface.
func (r *Recorder) Commit(box Box, ctl Control) {
	r.Passes = append(r.Passes, Pass{Box: box, Limiters: r.pending, Control: ctl})
	r.pending = nil
}

// Reset discards all recorded passes.
func (r *Recorder) Reset() {
	r.Passes = r.Passes[:0]
	r.pending = nil
}

// emitter collects the limiters of one pass. Slots are handed out in
// ascending order, and all limiters are sent to the sink in slot order when
// the pass is committed.
type emitter struct {
	dev *Device
	ctx *DrawContext

	box     Box
	origin  Point
	rows    int32
	clipped bool // box was reduced by the clipper

	// shift is the precision shift applied to linear limiters on commit.
	shift uint

	ctl     Control
	slots   [MaxLimiters]Limiter
	raw     SlotMask // slots holding circle values, already in final format
	pattern Limiter
}

func newEmitter(dev *Device, ctx *DrawContext, box Box) *emitter {
	em := &emitter{
		dev:    dev,
		ctx:    ctx,
		box:    box,
		origin: box.origin(),
		rows:   box.rows(),
	}
	if ctx.highPrecision(dev) {
		em.shift = HighPrecisionShift
		em.ctl.HighPrecision = true
	}
	return em
}

// beginPass clips box and prepares a pass over the result.
func beginPass(dev *Device, ctx *DrawContext, box Box) (*emitter, bool) {
	orig := box
	if !dev.clipBox(&box) {
		return nil, false
	}
	em := newEmitter(dev, ctx, box)
	em.clipped = box != orig
	return em, true
}

// alloc returns the lowest free slot.
func (em *emitter) alloc() (int, bool) {
	for i := range MaxLimiters {
		if !em.ctl.Enable.Has(i) {
			return i, true
		}
	}
	return 0, false
}

// allocPair returns the lowest slot s such that s and s+1 are free.
func (em *emitter) allocPair() (int, bool) {
	for i := range MaxLimiters - 1 {
		if !em.ctl.Enable.Has(i) && !em.ctl.Enable.Has(i+1) {
			return i, true
		}
	}
	return 0, false
}

// free returns the number of unused slots.
func (em *emitter) free() int {
	return MaxLimiters - em.ctl.Enable.Count()
}

func (em *emitter) set(slot int, l Limiter) {
	em.slots[slot] = l
	em.ctl.Enable |= slotBit(slot)
}

func (em *emitter) setCircle(slot int, c CircleLimiter) {
	a, b := c.pair()
	em.set(slot, a)
	em.set(slot+1, b)
	em.raw |= slotBit(slot) | slotBit(slot+1)
	em.ctl.Quadratic |= slotBit(slot)
}

// relative returns p relative to the pass origin.
func (em *emitter) relative(p Point) (x, y int64) {
	return int64(p.X) - int64(em.origin.X), int64(p.Y) - int64(em.origin.Y)
}

// halfPlane returns the limiter with slopes (nx, ny) which is zero at p.
// Values are sampled at pixel centres.
func (em *emitter) halfPlane(p Point, nx, ny int32) Limiter {
	x, y := em.relative(p)
	return plane(x, y, nx, ny)
}

// plane returns the limiter with slopes (nx, ny) which is zero at the
// box-relative position (x, y), given in 28.4 units.
func plane(x, y int64, nx, ny int32) Limiter {
	s := -((x*int64(nx) + y*int64(ny)) >> SubpixelShift)
	s += (int64(nx) + int64(ny)) >> 1
	return Limiter{Start: sat32(s), XSlope: nx, YSlope: ny}
}

// edge loads the limiter n·(q-p) + offset into slot, where n = (nx, ny) is
// a 16.16 direction and offset is a 28.4 distance. Soft edges get the
// antialiasing treatment if the context asks for it.
func (em *emitter) edge(slot int, p Point, nx, ny, offset int32, soft bool) {
	l := em.halfPlane(p, nx, ny)
	l.Start = sat32(int64(l.Start) + int64(offset)<<subToFixed)
	if soft && em.ctx.antialiased() {
		if em.ctx.blurred() {
			l = l.scaled(em.ctx.InvBlur)
		}
		l.Start = sat32(int64(l.Start) + fixedHalf)
		em.ctl.Threshold |= slotBit(slot)
	}
	em.set(slot, l)
}

// flip switches the pass to bottom-to-top scanning. Linear limiters loaded
// so far are converted in place; circles must be compiled afterwards.
func (em *emitter) flip() {
	if em.ctl.Flip {
		return
	}
	em.ctl.Flip = true
	for i := range MaxLimiters {
		if em.ctl.Enable.Has(i) && !em.raw.Has(i) {
			em.slots[i] = em.slots[i].flipped(em.rows)
		}
	}
}

// commit sends the pass to the sink.
func (em *emitter) commit() {
	ctl := em.ctl
	ctl.Threshold &= ctl.Enable & em.ctx.AAMask
	sink := em.dev.Sink
	for i := range MaxLimiters {
		if !ctl.Enable.Has(i) {
			continue
		}
		l := em.slots[i]
		if !em.raw.Has(i) {
			l = l.shifted(em.shift)
		}
		sink.Emit(i, l)
	}
	if ctl.Pattern {
		sink.Emit(PatternSlot, em.pattern.shifted(em.shift))
	}
	sink.Commit(em.box, ctl)
}
