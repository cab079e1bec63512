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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/limiter/testcases"
)

func TestExamples(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				rec := &Recorder{}
				if !CompileExample(tc, rec) {
					t.Fatal("nothing drawn")
				}
				clip := BoxFromRect(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				for i := range rec.Passes {
					p := &rec.Passes[i]
					if problems := checkPass(p); problems != nil {
						t.Errorf("pass %d: %v", i, problems)
					}
					if p.Box.Intersect(clip) != p.Box {
						t.Errorf("pass %d: box %v exceeds the canvas", i, p.Box)
					}
				}
			})
		}
	}
}

func TestExamplesDeterministic(t *testing.T) {
	for _, tc := range testcases.All["line"] {
		a, b := &Recorder{}, &Recorder{}
		CompileExample(tc, a)
		CompileExample(tc, b)
		if diff := cmp.Diff(a.Passes, b.Passes); diff != "" {
			t.Errorf("%s: results differ:\n%s", tc.Name, diff)
		}
	}
}
