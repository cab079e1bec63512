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

// Command export compiles all test cases and writes the resulting limiter
// passes to JSON, for comparison with the output of the hardware driver.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/limiter"
	"seehuhn.de/go/limiter/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/limiters.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Passes []jsonPass `json:"passes"`
}

type jsonPass struct {
	Box       [4]int32      `json:"box"`
	Limiters  []jsonLimiter `json:"limiters"`
	Enable    uint8         `json:"enable"`
	Union     uint8         `json:"union,omitempty"`
	Quadratic uint8         `json:"quadratic,omitempty"`
	Threshold uint8         `json:"threshold,omitempty"`
	Flags     []string      `json:"flags,omitempty"`
	SpanDelay uint8         `json:"span_delay,omitempty"`
}

type jsonLimiter struct {
	Slot   int   `json:"slot"`
	Start  int32 `json:"start"`
	XSlope int32 `json:"x_slope"`
	YSlope int32 `json:"y_slope"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	rec := &limiter.Recorder{}
	limiter.CompileExample(tc, rec)

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Passes: []jsonPass{},
	}
	for _, p := range rec.Passes {
		jtc.Passes = append(jtc.Passes, passToJSON(p))
	}
	return jtc
}

func passToJSON(p limiter.Pass) jsonPass {
	ctl := p.Control
	jp := jsonPass{
		Box:       [4]int32{p.Box.XMin, p.Box.YMin, p.Box.XMax, p.Box.YMax},
		Enable:    uint8(ctl.Enable),
		Union:     uint8(ctl.Union),
		Quadratic: uint8(ctl.Quadratic),
		Threshold: uint8(ctl.Threshold),
		SpanDelay: ctl.SpanDelay,
	}
	for _, sl := range p.Limiters {
		jp.Limiters = append(jp.Limiters, jsonLimiter{
			Slot:   sl.Slot,
			Start:  sl.Limiter.Start,
			XSlope: sl.Limiter.XSlope,
			YSlope: sl.Limiter.YSlope,
		})
	}
	flags := []struct {
		set  bool
		name string
	}{
		{ctl.Pattern, "pattern"},
		{ctl.HighPrecision, "high_precision"},
		{ctl.Legacy, "legacy"},
		{ctl.Flip, "flip"},
		{ctl.SpanAbort, "span_abort"},
		{ctl.SpanStore, "span_store"},
	}
	for _, f := range flags {
		if f.set {
			jp.Flags = append(jp.Flags, f.name)
		}
	}
	return jp
}
