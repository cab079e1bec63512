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
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Its Enabled method reports false, so
// the compilers never assemble the attributes of a debug record unless a
// logger has been installed.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// current is the logger which the compilers report to.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger installs the logger which receives diagnostics from the
// compilers. A nil logger switches diagnostics off again, which is also
// the initial state.
//
// The compilers write at [slog.LevelDebug] only. They report primitives
// rejected by the clipper, gradients left without a limiter slot, lines
// drawn as several passes and wedges of zero angle. For example:
//
//	limiter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
//
// Unlike the compilers, SetLogger may be called from any goroutine.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
