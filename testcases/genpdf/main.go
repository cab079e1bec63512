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

// Command genpdf generates reference images for the limiter test cases.
// It draws every test case as a PDF and renders it to PNG using
// Ghostscript. Blur is not represented in the references.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/limiter/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0 = no coverage, 255 = full coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases use device space
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	st := tc.Style
	miter := st.MiterLimit
	if miter == 0 {
		miter = 10
	}

	switch s := tc.Shape.(type) {
	case testcases.Circle:
		if s.Invert {
			page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
		}
		if s.RingWidth > 0 {
			circle(page, s.Center, s.Radius+s.RingWidth/2, false)
			circle(page, s.Center, s.Radius-s.RingWidth/2, true)
		} else {
			circle(page, s.Center, s.Radius, false)
		}
		page.FillEvenOdd()

	case testcases.Polyline:
		page.SetLineWidth(s.Width)
		page.SetLineCap(st.Cap)
		page.SetLineJoin(st.Join)
		page.SetMiterLimit(miter)
		for i, p := range s.Points {
			if i == 0 {
				page.MoveTo(p.X, p.Y)
			} else {
				page.LineTo(p.X, p.Y)
			}
		}
		page.Stroke()

	case testcases.Taper:
		d := s.P1.Sub(s.P0)
		n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(1 / d.Length())
		a0, a1 := s.P0.Add(n.Mul(s.W0/2)), s.P1.Add(n.Mul(s.W1/2))
		b0, b1 := s.P0.Sub(n.Mul(s.W0/2)), s.P1.Sub(n.Mul(s.W1/2))
		page.MoveTo(a0.X, a0.Y)
		page.LineTo(a1.X, a1.Y)
		page.LineTo(b1.X, b1.Y)
		page.LineTo(b0.X, b0.Y)
		page.ClosePath()
		if st.Cap == graphics.LineCapRound {
			circle(page, s.P0, s.W0/2, false)
			circle(page, s.P1, s.W1/2, false)
		}
		page.Fill()

	case testcases.Wedge:
		a1 := s.Angle1 * math.Pi / 180
		a2 := s.Angle2 * math.Pi / 180
		for a2 <= a1 {
			a2 += 2 * math.Pi
		}
		outer := s.Radius + s.RingWidth/2
		inner := s.Radius - s.RingWidth/2
		if s.RingWidth == 0 {
			inner = 0
		}
		start := polar(s.Center, outer, a1)
		page.MoveTo(start.X, start.Y)
		arc(page, s.Center, outer, a1, a2)
		if inner > 0 {
			p := polar(s.Center, inner, a2)
			page.LineTo(p.X, p.Y)
			arc(page, s.Center, inner, a2, a1)
		} else {
			page.LineTo(s.Center.X, s.Center.Y)
		}
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}

// pather is the path construction part of a PDF content stream writer.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// circle adds a full circle to the current path.
func circle(page pather, c vec.Vec2, r float64, reverse bool) {
	if r <= 0 {
		return
	}
	p := polar(c, r, 0)
	page.MoveTo(p.X, p.Y)
	if reverse {
		arc(page, c, r, 2*math.Pi, 0)
	} else {
		arc(page, c, r, 0, 2*math.Pi)
	}
	page.ClosePath()
}

// arc appends a circular arc from angle a to angle b to the current path,
// using one cubic Bézier curve per quarter circle at most.
func arc(page pather, c vec.Vec2, r, a, b float64) {
	n := int(math.Ceil(math.Abs(b-a) / (math.Pi / 2)))
	step := (b - a) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	for i := range n {
		a0 := a + float64(i)*step
		a1 := a0 + step
		p0 := polar(c, r, a0)
		p3 := polar(c, r, a1)
		p1 := p0.Add(vec.Vec2{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -math.Sin(a1), Y: math.Cos(a1)}.Mul(k))
		page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
}

func polar(c vec.Vec2, r, a float64) vec.Vec2 {
	return vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
