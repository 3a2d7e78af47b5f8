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

// Sources returns every taint source in the store, sorted by
// (file, line, kind).
func Sources(cache *store.Cache) []Source {
	var sources []Source
	for _, r := range cache.APIEndpoints().All() {
		sources = append(sources, Source{
			Kind:     SourceHTTPParameter,
			File:     r.File,
			Line:     r.Line,
			Function: r.HandlerFunction,
			Risk:     endpointRisk(r),
			Detail:   r.Method + " " + r.Pattern,
		})
	}
	for _, r := range cache.EnvReads().All() {
		sources = append(sources, Source{
			Kind:      SourceEnvironmentRead,
			File:      r.File,
			Line:      r.Line,
			Function:  r.InFunction,
			TargetVar: r.TargetVar,
			Risk:      envReadRisk(r),
			Detail:    r.Name,
		})
	}
	for _, r := range cache.FileReads().All() {
		sources = append(sources, Source{
			Kind:      SourceFileRead,
			File:      r.File,
			Line:      r.Line,
			Function:  r.InFunction,
			TargetVar: r.TargetVar,
			Risk:      fileReadRisk(r),
			Detail:    r.Callee,
		})
	}
	for _, r := range cache.DeserializationSites().All() {
		sources = append(sources, Source{
			Kind:      SourceDeserializedObject,
			File:      r.File,
			Line:      r.Line,
			Function:  r.InFunction,
			TargetVar: r.TargetVar,
			Risk:      High,
			Detail:    r.Codec,
		})
	}
	slices.SortFunc(sources, func(a, b Source) int {
		if c := cmp.Compare(a.File, b.File); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return sources
}

// An endpoint without authentication exposes its parameters to anyone.
func endpointRisk(r store.APIEndpointsRow) Risk {
	if !r.HasAuth {
		return High
	}
	return Medium
}

// Credential material leaking through taint flow outranks plain
// configuration reads.
func envReadRisk(r store.EnvReadsRow) Risk {
	if r.IsCredential {
		return High
	}
	return Low
}

func fileReadRisk(r store.FileReadsRow) Risk {
	if !r.PathIsLiteral {
		return Medium
	}
	return Low
}
