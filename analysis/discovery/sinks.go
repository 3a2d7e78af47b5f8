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

package discovery

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/flowscope/flowscope/analysis/store"
)

// Sinks returns every taint sink in the store, sorted by (file, line, kind).
func Sinks(cache *store.Cache) []Sink {
	var sinks []Sink
	for _, r := range cache.SQLQueries().All() {
		sinks = append(sinks, Sink{
			Kind:         SinkSQLInjection,
			File:         r.File,
			Line:         r.Line,
			Function:     r.InFunction,
			ArgumentExpr: r.ArgumentExpr,
			Risk:         sqlQueryRisk(r),
		})
	}
	for _, r := range cache.TemplateRenders().All() {
		sinks = append(sinks, Sink{
			Kind:         SinkReflectedOutput,
			File:         r.File,
			Line:         r.Line,
			Function:     r.InFunction,
			ArgumentExpr: r.ArgumentExpr,
			Risk:         templateRisk(r),
		})
	}
	for _, r := range cache.CommandExecutions().All() {
		sinks = append(sinks, Sink{
			Kind:         SinkCommandInjection,
			File:         r.File,
			Line:         r.Line,
			Function:     r.InFunction,
			ArgumentExpr: r.ArgumentExpr,
			Risk:         commandRisk(r),
		})
	}
	for _, r := range cache.FileWrites().All() {
		sinks = append(sinks, Sink{
			Kind:         SinkPathWrite,
			File:         r.File,
			Line:         r.Line,
			Function:     r.InFunction,
			ArgumentExpr: r.PathExpr,
			Risk:         fileWriteRisk(r),
		})
	}
	slices.SortFunc(sinks, func(a, b Sink) int {
		if c := cmp.Compare(a.File, b.File); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return sinks
}

// sqlQueryRisk classifies from the structural columns only. String
// concatenation in the query text dominates; full parameterization makes the
// sink nearly inert.
func sqlQueryRisk(r store.SQLQueriesRow) Risk {
	switch {
	case r.HasConcatenation:
		return Critical
	case r.IsParameterized:
		return Low
	default:
		return Medium
	}
}

func templateRisk(r store.TemplateRendersRow) Risk {
	if !r.IsAutoescaped {
		return High
	}
	return Low
}

func commandRisk(r store.CommandExecutionsRow) Risk {
	if r.UsesShell {
		return Critical
	}
	return High
}

func fileWriteRisk(r store.FileWritesRow) Risk {
	if !r.PathIsLiteral {
		return Medium
	}
	return Low
}
