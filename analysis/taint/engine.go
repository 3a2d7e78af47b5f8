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
	"time"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/discovery"
	"github.com/flowscope/flowscope/analysis/store"
	"github.com/flowscope/flowscope/internal/funcutil"
)

// RunAnalysis runs the full pipeline against the store at dbPath: load the
// cache, discover sources and sinks, propagate taint with one task per
// source, persist the findings, and return them. The only errors surfaced
// are *schema.SpecError and *store.ContractViolationError; budget exhaustion
// is reported on the Result, not as an error.
func RunAnalysis(cfg *config.Config, dbPath string) (*Result, error) {
	log := config.NewLogGroup(cfg)
	start := time.Now()

	conn, err := store.OpenReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	cache := store.NewCache(log)
	if err := cache.Load(conn); err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.Close(); err != nil {
		return nil, err
	}

	sources := discovery.Sources(cache)
	sinks := discovery.Sinks(cache)
	log.Infof("discovered %d sources, %d sinks", len(sources), len(sinks))

	s := newSearcher(cfg, log, cache, sinks)
	results := funcutil.MapParallel(sources, s.run, cfg.NumWorkers())

	res := &Result{Sources: len(sources), Sinks: len(sinks)}
	for _, r := range results {
		res.Findings = append(res.Findings, r.findings...)
		res.VisitedBlocks += r.visited
		if r.partial {
			res.PartialSources++
		}
		if r.skipped {
			res.SkippedSources++
		}
	}
	res.Duration = time.Since(start)

	if err := persistFindings(dbPath, res.Findings); err != nil {
		return nil, err
	}
	res.Report(log)
	return res, nil
}

// persistFindings appends the run's findings to the store. The read
// connection used for loading is long gone; this is the only write the
// analysis performs.
func persistFindings(dbPath string, findings []Finding) error {
	if len(findings) == 0 {
		return nil
	}
	rows := make([]store.FindingsRow, 0, len(findings))
	for _, f := range findings {
		row, err := f.row()
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	conn, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	return store.WriteFindings(conn, rows)
}
