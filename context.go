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

import "seehuhn.de/go/pdf/graphics"

// Features selects optional processing for a draw call.
type Features uint8

const (
	// FeatureBlur spreads edges over BlurFactor pixels.
	FeatureBlur Features = 1 << iota

	// FeatureAntialias gives soft edges to the limiters selected by AAMask.
	FeatureAntialias

	// FeatureHighPrecision requests the high-precision limiter format,
	// if the device supports it.
	FeatureHighPrecision
)

// FillMode selects how covered pixels are painted.
type FillMode int

// These are the supported fill modes.
const (
	FillSolid FillMode = iota
	FillPattern
	FillTexture
)

// MaxGradients is the number of gradient descriptors in a DrawContext.
const MaxGradients = 4

// DrawContext holds the style state for a sequence of draw calls.
//
// The compilers update PatternOffset as lines are drawn, so consecutive
// segments of a polyline continue the pattern where the previous segment
// ended. A DrawContext must not be used concurrently.
type DrawContext struct {
	// Features selects blur, antialiasing and high precision.
	Features Features

	// BlurFactor is the blur spread in pixels (16.16, at least 1.0).
	// Use SetBlur to change it.
	BlurFactor int32

	// InvBlur is 1/BlurFactor (16.16).
	InvBlur int32

	// AAMask selects which limiter slots may receive soft edges.
	AAMask SlotMask

	// Fill selects solid, pattern or texture fill.
	Fill FillMode

	// Cap is the line cap style. Round caps on lines thinner than
	// smallLineThreshold are drawn as square caps.
	Cap graphics.LineCapStyle

	// Join is the line join style. Round joins are drawn as bevels.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, as a multiple of the
	// half width (16.16).
	MiterLimit int32

	// OutlineWidth is the ring width used for circles which don't specify
	// their own (28.4). Zero means filled discs.
	OutlineWidth int32

	// ShadowOffset translates all geometry (28.4).
	ShadowOffset Point

	// Gradients are layered onto every shape, in order, as long as
	// limiter slots are available.
	Gradients [MaxGradients]GradientDescriptor

	// Pattern maps device coordinates to pattern coordinates for
	// FillPattern and FillTexture.
	Pattern PatternDescriptor

	// PatternOffset is the pattern pen position along a polyline (28.4).
	PatternOffset int32
}

// NewDrawContext returns a DrawContext with antialiasing enabled, butt
// caps, miter joins and the PDF default miter limit.
func NewDrawContext() *DrawContext {
	return &DrawContext{
		Features:   FeatureAntialias,
		BlurFactor: FixedOne,
		InvBlur:    FixedOne,
		AAMask:     allSlots,
		Fill:       FillSolid,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// SetBlur sets the blur radius (28.4) and derives BlurFactor and InvBlur.
// Radii below one pixel are rounded up to one pixel; a radius of zero or
// less disables blurring.
func (c *DrawContext) SetBlur(radius int32) {
	if radius <= 0 {
		c.Features &^= FeatureBlur
		c.BlurFactor = FixedOne
		c.InvBlur = FixedOne
		return
	}
	c.Features |= FeatureBlur
	c.BlurFactor = max(shiftLeftSat(radius, subToFixed), FixedOne)
	c.InvBlur = int32((int64(1) << (2 * FixedShift)) / int64(c.BlurFactor))
}

// ResetPattern moves the pattern pen back to the start of the pattern.
func (c *DrawContext) ResetPattern() {
	c.PatternOffset = 0
}

func (c *DrawContext) blurred() bool {
	return c.Features&FeatureBlur != 0
}

func (c *DrawContext) antialiased() bool {
	return c.Features&FeatureAntialias != 0
}

// highPrecision reports whether limiters use the high-precision format.
func (c *DrawContext) highPrecision(dev *Device) bool {
	return c.Features&FeatureHighPrecision != 0 && dev.Caps.Has(CapHighPrecision)
}

// edgeMargin is the distance (28.4) by which soft edges reach beyond the
// geometric outline.
func (c *DrawContext) edgeMargin() int32 {
	var m int32
	if c.antialiased() {
		m += SubpixelOne
	}
	if c.blurred() {
		m += c.BlurFactor >> subToFixed
	}
	return m
}

// lineCap returns the cap style used for a line of half width hw.
func (c *DrawContext) lineCap(hw int32) graphics.LineCapStyle {
	if c.Cap == graphics.LineCapRound && hw < smallLineThreshold {
		return graphics.LineCapSquare
	}
	return c.Cap
}

// hasConcaveGradient reports whether any enabled gradient uses the
// concave (union) mode.
func (c *DrawContext) hasConcaveGradient() bool {
	for _, g := range c.Gradients {
		if g.Mode.Has(GradientEnabled | GradientConcave) {
			return true
		}
	}
	return false
}

// Default values for DrawContext fields.
const (
	// defaultMiterLimit is the PDF/PostScript default miter limit of 10.
	defaultMiterLimit = 10 * FixedOne
)

// Thresholds used by the line compilers, all in 28.4 units.
const (
	// smallLineThreshold is the half width below which round caps are
	// indistinguishable from square caps.
	smallLineThreshold = 2 * SubpixelOne

	// sqrtSetupThreshold is the half width from which line normals are
	// normalized to unit length. Thinner lines use the cheaper L∞ scaling.
	sqrtSetupThreshold = 3 * SubpixelOne

	// splitThreshold is the half width from which round caps are drawn in
	// separate passes, since disc coefficients of this size overflow the
	// limiter registers when combined with the line body.
	splitThreshold = 128 * SubpixelOne
)
