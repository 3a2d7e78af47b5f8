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
	"sync/atomic"
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/discovery"
	"github.com/flowscope/flowscope/analysis/store"
)

type lineKey struct {
	File string
	Line int
}

type sinkID struct {
	File string
	Line int
	Kind discovery.SinkKind
}

// searcher holds everything shared between the per-source search tasks. All
// of it is read-only during the run except the global visit counter.
type searcher struct {
	cfg   *config.Config
	log   *config.LogGroup
	cache *store.Cache
	cfgs  *cfgCache

	sinksAt    map[lineKey][]discovery.Sink
	recursion  map[funcKey]int
	sanitizers map[string][]string

	globalVisited atomic.Int64
}

func newSearcher(cfg *config.Config, log *config.LogGroup, cache *store.Cache, sinks []discovery.Sink) *searcher {
	s := &searcher{
		cfg:        cfg,
		log:        log,
		cache:      cache,
		cfgs:       newCFGCache(cache, log),
		sinksAt:    map[lineKey][]discovery.Sink{},
		recursion:  recursionSets(cache),
		sanitizers: map[string][]string{},
	}
	for _, sink := range sinks {
		k := lineKey{File: sink.File, Line: sink.Line}
		s.sinksAt[k] = append(s.sinksAt[k], sink)
	}
	for _, spec := range cfg.Sanitizers {
		s.sanitizers[spec.Callee] = spec.Neutralizes
	}
	return s
}

// sourceResult is the outcome of one source's search.
type sourceResult struct {
	findings []Finding
	partial  bool
	skipped  bool
	visited  int
}

// search is the mutable state of one source's exploration. One per task,
// never shared.
type search struct {
	*searcher

	src      discovery.Source
	visited  int
	partial  bool
	found    map[sinkID]bool
	stack    []funcKey
	findings []Finding
}

// run explores the flow out of one source. A source whose function has no
// usable CFG, or that binds no variable, produces no findings.
func (s *searcher) run(src discovery.Source) sourceResult {
	if s.globalVisited.Load() >= int64(s.cfg.GlobalBlockCeiling) {
		return sourceResult{skipped: true}
	}

	key := funcKey{File: src.File, Function: src.Function}
	cfg := s.cfgs.get(key)
	if cfg == nil {
		return sourceResult{}
	}

	sr := &search{
		searcher: s,
		src:      src,
		found:    map[sinkID]bool{},
	}
	state := newTaintState()
	if !sr.seed(cfg, state) {
		s.log.Tracef("source %s at %s:%d binds no variable", src.Kind, src.File, src.Line)
		return sourceResult{}
	}
	start := cfg.BlockAt(src.Line)
	if start == nil {
		s.log.Debugf("no block covers source at %s:%d", src.File, src.Line)
		return sourceResult{}
	}
	sr.bfs(cfg, start.ID, state, []Step{{File: src.File, Line: src.Line}})
	if sr.partial {
		for i := range sr.findings {
			sr.findings[i].BudgetExceeded = true
		}
	}
	return sourceResult{
		findings: sr.findings,
		partial:  sr.partial,
		visited:  sr.visited,
	}
}

// seed taints the variables the source value is bound to: the assignment
// targets on the source line, or the recorded target variable when the line
// has no assignment rows.
func (s *search) seed(cfg *CFG, state *TaintState) bool {
	seeded := false
	for _, a := range cfg.AssignmentsAt(s.src.Line) {
		state.Taint(varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: a.TargetVar})
		seeded = true
	}
	if !seeded && s.src.TargetVar != "" {
		state.Taint(varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: s.src.TargetVar})
		seeded = true
	}
	return seeded
}

// blockFacts is the merged entry fact of one block: the taint state at its
// entry and one witness path from the seed to it.
type blockFacts struct {
	state *TaintState
	path  []Step
}

// bfs runs the worklist over one function's blocks. A block's entry state is
// the merge of the exit states of its processed predecessors; the block is
// re-queued when that merge changes it, and merges are monotone over a
// finite lattice, so the loop terminates. The returned map holds the exit
// state of every processed block.
func (s *search) bfs(cfg *CFG, startID int, entry *TaintState, entryPath []Step) map[int]*TaintState {
	in := map[int]*blockFacts{startID: {state: entry, path: entryPath}}
	out := map[int]*TaintState{}
	queued := map[int]bool{startID: true}
	queue := []int{startID}

	for len(queue) > 0 {
		if s.visited >= s.cfg.MaxBlocksPerSource {
			s.partial = true
			return out
		}
		id := queue[0]
		queue = queue[1:]
		queued[id] = false
		b := cfg.Blocks[id]
		s.visited++
		s.globalVisited.Add(1)

		work := in[id].state.Clone()
		path := slices.Clone(in[id].path)
		s.processBlock(cfg, b, work, &path)
		out[id] = work

		for _, succ := range b.Succs {
			sb := cfg.Blocks[succ]
			if sb == nil || sb.Dead {
				continue
			}
			f, ok := in[succ]
			if !ok {
				in[succ] = &blockFacts{state: work.Clone(), path: slices.Clone(path)}
			} else if !f.state.MergeFrom(work) {
				continue
			}
			if !queued[succ] {
				queued[succ] = true
				queue = append(queue, succ)
			}
		}
	}
	return out
}

// processBlock walks the statement lines of a block in order. Calls are
// handled before assignments on the same line so that a sanitizer call
// neutralizes its own result assignment.
func (s *search) processBlock(cfg *CFG, b *Block, state *TaintState, path *[]Step) {
	for _, line := range b.Lines {
		taintedReturns := s.processCalls(cfg, line, state, path)
		s.processAssignments(cfg, line, state, path, taintedReturns)
		s.checkSinks(cfg, line, state, *path)
	}
}

// processCalls handles every call on the line and reports whether some
// descended callee returns a tainted expression, in which case the line's
// assignment targets inherit the taint.
func (s *search) processCalls(cfg *CFG, line int, state *TaintState, path *[]Step) bool {
	taintedReturns := false
	for _, call := range groupCalls(cfg.CallsAt(line)) {
		argTainted := false
		for _, arg := range call.args {
			if anyTainted(state, cfg.Key, exprVars(arg.ArgumentExpr)) {
				argTainted = true
				break
			}
		}
		if !argTainted {
			continue
		}
		if categories, ok := s.sanitizers[call.callee]; ok {
			// The argument variables themselves are neutralized, so a bare
			// in-place call sanitizes too, with or without an assignment of
			// the result.
			for _, arg := range call.args {
				for _, v := range exprVars(arg.ArgumentExpr) {
					state.Sanitize(varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: v}, categories)
				}
			}
			for _, a := range cfg.AssignmentsAt(line) {
				state.Sanitize(varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: a.TargetVar}, categories)
			}
			continue
		}
		if s.descend(cfg, line, call, state, *path) {
			taintedReturns = true
		}
	}
	return taintedReturns
}

// descend follows a tainted call into the callee when its CFG is available
// and the descent is neither recursive nor beyond the depth bound. It
// reports whether the callee returns a tainted expression. A call that
// cannot be descended into is a boundary: the caller's assignment rows carry
// the argument taint forward on their own.
func (s *search) descend(cfg *CFG, line int, call callSite, state *TaintState, path []Step) bool {
	if call.calleeFile == "" {
		return false
	}
	calleeKey := funcKey{File: call.calleeFile, Function: call.callee}
	if len(s.stack) >= s.cfg.MaxCallDepth {
		s.log.Debugf("max call depth at %s:%d, not entering %s", cfg.Key.File, line, calleeKey)
		return false
	}
	if slices.Contains(s.stack, calleeKey) {
		return false
	}
	if set, ok := s.recursion[calleeKey]; ok {
		if callerSet, ok := s.recursion[cfg.Key]; ok && callerSet == set {
			return false
		}
	}
	calleeCFG := s.cfgs.get(calleeKey)
	if calleeCFG == nil {
		return false
	}

	calleeState := state.Clone()
	seeded := false
	for _, arg := range call.args {
		if arg.ParamName == "" {
			continue
		}
		if anyTainted(state, cfg.Key, exprVars(arg.ArgumentExpr)) {
			calleeState.Taint(varKey{File: calleeKey.File, Function: calleeKey.Function, Var: arg.ParamName})
			seeded = true
		}
	}
	if !seeded {
		return false
	}

	calleePath := append(slices.Clone(path), Step{File: cfg.Key.File, Line: line})
	s.stack = append(s.stack, cfg.Key)
	exits := s.bfs(calleeCFG, calleeCFG.Entry, calleeState, calleePath)
	s.stack = s.stack[:len(s.stack)-1]

	for _, ret := range s.cache.FunctionReturns().ByFunctionName(calleeKey.Function) {
		if ret.File != calleeKey.File {
			continue
		}
		b := calleeCFG.BlockAt(ret.Line)
		if b == nil {
			continue
		}
		exit := exits[b.ID]
		if exit == nil {
			continue
		}
		if anyTainted(exit, calleeKey, exprVars(ret.ReturnExpr)) {
			return true
		}
	}
	return false
}

func (s *search) processAssignments(cfg *CFG, line int, state *TaintState, path *[]Step, taintedReturns bool) {
	for _, a := range cfg.AssignmentsAt(line) {
		to := varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: a.TargetVar}
		before := state.TaintedAny(to)
		var froms []varKey
		for _, v := range cfg.SourcesOf(line, a.TargetVar) {
			froms = append(froms, varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: v})
		}
		state.PropagateInto(to, froms)
		if taintedReturns {
			state.Taint(to)
		}
		if !before && state.TaintedAny(to) {
			*path = append(*path, Step{File: cfg.Key.File, Line: line})
		}
	}
}

func (s *search) checkSinks(cfg *CFG, line int, state *TaintState, path []Step) {
	for _, sink := range s.sinksAt[lineKey{File: cfg.Key.File, Line: line}] {
		id := sinkID{File: sink.File, Line: sink.Line, Kind: sink.Kind}
		if s.found[id] {
			continue
		}
		category := sink.Kind.String()
		hit := false
		for _, v := range exprVars(sink.ArgumentExpr) {
			if state.TaintedFor(varKey{File: cfg.Key.File, Function: cfg.Key.Function, Var: v}, category) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		s.found[id] = true
		full := append(slices.Clone(path), Step{File: sink.File, Line: sink.Line})
		s.findings = append(s.findings, Finding{
			Source: s.src,
			Sink:   sink,
			Path:   full,
		})
	}
}

func anyTainted(state *TaintState, scope funcKey, vars []string) bool {
	for _, v := range vars {
		if state.TaintedAny(varKey{File: scope.File, Function: scope.Function, Var: v}) {
			return true
		}
	}
	return false
}

// callSite groups the per-argument rows of one call on one line.
type callSite struct {
	callee     string
	calleeFile string
	args       []store.FunctionCallArgsRow
}

func groupCalls(rows []store.FunctionCallArgsRow) []callSite {
	var sites []callSite
	index := map[string]int{}
	for _, r := range rows {
		k := r.CalleeFunction + "\x00" + r.CalleeFile
		i, ok := index[k]
		if !ok {
			i = len(sites)
			index[k] = i
			sites = append(sites, callSite{callee: r.CalleeFunction, calleeFile: r.CalleeFile})
		}
		sites[i].args = append(sites[i].args, r)
	}
	return sites
}

// exprVars extracts the identifier tokens of an extracted expression.
// Tokens are maximal runs of letters, digits and underscores that do not
// start with a digit; "user.name" yields both "user" and "name".
func exprVars(expr string) []string {
	var vars []string
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := expr[start:end]
		start = -1
		if unicode.IsDigit(rune(tok[0])) {
			return
		}
		vars = append(vars, tok)
	}
	for i, r := range expr {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(expr))
	return vars
}
