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
	"github.com/flowscope/flowscope/analysis/store"
	"github.com/flowscope/flowscope/internal/graphutil"
)

// recursionSets computes the cyclic strongly connected components of the
// call graph recorded in function_call_args. The search refuses to descend
// along a call whose caller and callee share a set, cutting recursion
// without bounding straight-line call chains.
//
// Calls whose callee file was not resolved by extraction are already
// boundaries for the search, so they contribute no edges.
func recursionSets(cache *store.Cache) map[funcKey]int {
	succs := map[funcKey][]funcKey{}
	seen := map[funcKey]bool{}
	var nodes []funcKey

	addNode := func(k funcKey) {
		if !seen[k] {
			seen[k] = true
			nodes = append(nodes, k)
		}
	}

	for _, r := range cache.FunctionCallArgs().All() {
		caller := funcKey{File: r.File, Function: r.CallerFunction}
		addNode(caller)
		if r.CalleeFile == "" {
			continue
		}
		callee := funcKey{File: r.CalleeFile, Function: r.CalleeFunction}
		addNode(callee)
		succs[caller] = append(succs[caller], callee)
	}

	return graphutil.RecursionSets(nodes, func(k funcKey) []funcKey { return succs[k] })
}
