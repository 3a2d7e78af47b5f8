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

// Package taint implements the control-flow-graph based propagation engine.
//
// RunAnalysis loads the store into memory, discovers sources and sinks, and
// runs one worklist search per source over the per-function CFGs recorded by
// extraction. Each block carries its own entry state; states merge at join
// blocks with taint unioned and sanitization intersected, so a value
// sanitized on one branch and not another still reaches the sink through the
// un-sanitized branch. Taint moves through the assignment_sources junction,
// descends into callees whose CFGs are available, and is cut by sanitizer
// calls declared in the configuration. Searches are bounded by a per-source
// block budget and a global ceiling; exceeding either is a flagged partial
// result, never an error.
package taint
