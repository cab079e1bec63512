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

// Caps describes optional features of the limiter hardware.
type Caps uint8

const (
	// CapHighPrecision indicates that limiters can be loaded with
	// HighPrecisionShift extra fractional bits.
	CapHighPrecision Caps = 1 << iota

	// CapLegacyHighPrecision indicates the older high-precision format,
	// which blurred circles use instead of the wide-division setup.
	CapLegacyHighPrecision
)

// Has reports whether all capabilities in c2 are present.
func (c Caps) Has(c2 Caps) bool {
	return c&c2 == c2
}

// Clipper clamps the bounding box of a primitive to the device clip
// rectangle. ClipBox returns false if nothing of the primitive can be
// visible, in which case the primitive is skipped.
type Clipper interface {
	ClipBox(clip Box, box *Box) bool
}

// Device holds the per-instance state of one rasterization unit.
//
// Compilers read the clip rectangle and write to the sink. A Device and
// the DrawContexts used with it must not be used by more than one goroutine
// at a time; the hardware command stream is a single ordered sequence.
type Device struct {
	// Clip is the device clip rectangle.
	Clip Box

	// Caps lists the optional hardware features.
	Caps Caps

	// Sink receives the compiled limiters. Must be non-nil.
	Sink Sink

	// Clipper clamps bounding boxes to Clip. If nil, boxes are
	// intersected with Clip.
	Clipper Clipper
}

// NewDevice returns a Device with the given clip rectangle and sink and
// no optional capabilities.
func NewDevice(clip Box, sink Sink) *Device {
	return &Device{
		Clip: clip,
		Sink: sink,
	}
}

// clipBox applies the clipper to box.
func (d *Device) clipBox(box *Box) bool {
	if box.Empty() {
		return false
	}
	if d.Clipper != nil {
		return d.Clipper.ClipBox(d.Clip, box)
	}
	*box = box.Intersect(d.Clip)
	return !box.Empty()
}
