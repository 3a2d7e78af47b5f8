// Copyright (c) the Flowscope authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package taint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/discovery"
	"github.com/flowscope/flowscope/analysis/store"
)

// Step is one hop of a taint path.
type Step struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Finding is one source-to-sink taint flow. At most one finding exists per
// (source, sink) pair.
type Finding struct {
	Source discovery.Source
	Sink   discovery.Sink

	// Path is the ordered list of (file, line) hops from the source to the
	// sink, spanning callees the search descended into.
	Path []Step

	// BudgetExceeded marks findings from a search that hit its block budget:
	// the flow is real but the search around it was incomplete.
	BudgetExceeded bool
}

func (f Finding) String() string {
	return fmt.Sprintf("%s at %s:%d reaches %s at %s:%d (%s)",
		f.Source.Kind, f.Source.File, f.Source.Line,
		f.Sink.Kind, f.Sink.File, f.Sink.Line, f.Sink.Risk)
}

// row converts the finding to its persisted form. The path is stored as a
// JSON array so downstream reporting can render it without re-running the
// search.
func (f Finding) row() (store.FindingsRow, error) {
	path, err := json.Marshal(f.Path)
	if err != nil {
		return store.FindingsRow{}, fmt.Errorf("marshaling path of %s: %w", f, err)
	}
	return store.FindingsRow{
		SourceFile:     f.Source.File,
		SourceLine:     f.Source.Line,
		SourceFunction: f.Source.Function,
		SinkFile:       f.Sink.File,
		SinkLine:       f.Sink.Line,
		SinkFunction:   f.Sink.Function,
		Category:       f.Sink.Kind.String(),
		Risk:           f.Sink.Risk.String(),
		PathJSON:       string(path),
		BudgetExceeded: f.BudgetExceeded,
	}, nil
}

// Result aggregates one analysis run.
type Result struct {
	Findings []Finding

	// Sources is the number of discovered sources, Sinks of discovered
	// sinks.
	Sources int
	Sinks   int

	// PartialSources counts searches that hit the per-source block budget.
	// SkippedSources counts sources never searched because the global
	// ceiling was reached first.
	PartialSources int
	SkippedSources int

	// VisitedBlocks is the total across all searches.
	VisitedBlocks int

	Duration time.Duration
}

// Report logs a run summary at Info level, one line per finding.
func (r *Result) Report(log *config.LogGroup) {
	log.Infof("%d sources, %d sinks, %d findings, %d blocks visited in %s",
		r.Sources, r.Sinks, len(r.Findings), r.VisitedBlocks, r.Duration)
	if r.PartialSources > 0 {
		log.Warnf("%d sources hit the per-source block budget; their results are partial", r.PartialSources)
	}
	if r.SkippedSources > 0 {
		log.Warnf("%d sources skipped after the global block ceiling was reached", r.SkippedSources)
	}
	for _, f := range r.Findings {
		log.Infof("  %s", f)
	}
}
