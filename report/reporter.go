// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report implements the passive progress reporter of
// SPEC_FULL.md §4.L: the core performs no logging of its own (spec.md §7)
// but accepts an optional Reporter the driver notifies at each pipeline
// stage transition. Grounded on the teacher's fem/fem.go `o.ShowMsg` /
// `io.Pf` convention, generalised into an interface so console output is
// opt-in rather than baked into the core.
package report

import "github.com/cpmech/gosl/io"

// Reporter receives one Event per pipeline stage transition. stage names
// the component (e.g. "mesh", "assemble", "solve"); detail is a short
// human-readable note.
type Reporter interface {
	Event(stage, detail string)
}

// noop is the default Reporter: the core never logs unless asked to.
type noop struct{}

func (noop) Event(stage, detail string) {}

// Noop is the zero-cost default reporter.
var Noop Reporter = noop{}

// LogReporter writes each event to stdout via io.Pf, mirroring the
// teacher's "> <message>" convention in fem/fem.go.
type LogReporter struct{}

// Event implements Reporter.
func (LogReporter) Event(stage, detail string) {
	io.Pf("> %s: %s\n", stage, detail)
}
