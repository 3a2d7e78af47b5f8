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
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/flowscope/flowscope/analysis/store"
	"github.com/flowscope/flowscope/internal/graphutil"
)

// funcKey identifies a function. Extraction scopes function names per file,
// so the pair is unique.
type funcKey struct {
	File     string
	Function string
}

func (k funcKey) String() string { return k.File + ":" + k.Function }

// Block is one basic block of a function CFG.
type Block struct {
	ID        int
	Type      string
	StartLine int
	EndLine   int

	// Dead marks blocks unreachable from the entry block. They are kept in
	// the CFG but the search never enqueues them.
	Dead bool

	// Succs are the successor block ids, in edge store order.
	Succs []int

	// Lines are the distinct statement lines of the block, in statement
	// order.
	Lines []int
}

// CFG is the control-flow graph of one function, together with the per-line
// facts the search consults. It is immutable once built.
type CFG struct {
	Key    funcKey
	Entry  int
	Blocks map[int]*Block

	// assignments and calls group this function's rows by line so block
	// processing is a map lookup.
	assignments map[int][]store.AssignmentsRow
	calls       map[int][]store.FunctionCallArgsRow

	// assignSources maps line -> target_var -> right-hand-side variables.
	assignSources map[int]map[string][]string
}

// AssignmentsAt returns the assignments on the given line of this function.
func (g *CFG) AssignmentsAt(line int) []store.AssignmentsRow { return g.assignments[line] }

// CallsAt returns the call arguments on the given line of this function.
func (g *CFG) CallsAt(line int) []store.FunctionCallArgsRow { return g.calls[line] }

// SourcesOf returns the variables read on the right-hand side of the
// assignment to target on the given line.
func (g *CFG) SourcesOf(line int, target string) []string {
	return g.assignSources[line][target]
}

// BlockAt returns the live block whose line span covers the given line. When
// only a dead block covers it, that block is returned; the caller decides
// whether to search from it.
func (g *CFG) BlockAt(line int) *Block {
	var dead *Block
	for _, id := range sortedBlockIDs(g.Blocks) {
		b := g.Blocks[id]
		if line < b.StartLine || line > b.EndLine {
			continue
		}
		if !b.Dead {
			return b
		}
		if dead == nil {
			dead = b
		}
	}
	return dead
}

func sortedBlockIDs(blocks map[int]*Block) []int {
	ids := make([]int, 0, len(blocks))
	for id := range blocks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// buildCFG assembles the CFG of one function from the cache. It returns nil
// when the function has no recorded blocks, or when the entry block is not
// the unique block without incoming edges; both cases are analysis
// boundaries for the caller.
func buildCFG(cache *store.Cache, key funcKey) *CFG {
	var blockRows []store.CFGBlocksRow
	for _, r := range cache.CFGBlocks().ByFile(key.File) {
		if r.FunctionName == key.Function {
			blockRows = append(blockRows, r)
		}
	}
	if len(blockRows) == 0 {
		return nil
	}
	var edgeRows []store.CFGEdgesRow
	for _, r := range cache.CFGEdges().ByFile(key.File) {
		if r.FunctionName == key.Function {
			edgeRows = append(edgeRows, r)
		}
	}

	g := &CFG{
		Key:           key,
		Blocks:        map[int]*Block{},
		assignments:   map[int][]store.AssignmentsRow{},
		calls:         map[int][]store.FunctionCallArgsRow{},
		assignSources: map[int]map[string][]string{},
	}
	for _, r := range blockRows {
		b := &Block{
			ID:        r.ID,
			Type:      r.BlockType,
			StartLine: r.StartLine,
			EndLine:   r.EndLine,
		}
		for _, s := range statementsOf(cache, r.ID) {
			if len(b.Lines) == 0 || b.Lines[len(b.Lines)-1] != s.Line {
				b.Lines = append(b.Lines, s.Line)
			}
		}
		g.Blocks[r.ID] = b
	}

	incoming := map[int]int{}
	for _, e := range edgeRows {
		if g.Blocks[e.SourceBlockID] == nil || g.Blocks[e.TargetBlockID] == nil {
			continue
		}
		g.Blocks[e.SourceBlockID].Succs = append(g.Blocks[e.SourceBlockID].Succs, e.TargetBlockID)
		if e.SourceBlockID != e.TargetBlockID {
			incoming[e.TargetBlockID]++
		}
	}

	entry, ok := entryBlock(g.Blocks, incoming)
	if !ok {
		return nil
	}
	g.Entry = entry
	markDead(g)

	for _, r := range cache.Assignments().ByFile(key.File) {
		if r.InFunction == key.Function {
			g.assignments[r.Line] = append(g.assignments[r.Line], r)
		}
	}
	for _, r := range cache.FunctionCallArgs().ByFile(key.File) {
		if r.CallerFunction == key.Function {
			g.calls[r.Line] = append(g.calls[r.Line], r)
		}
	}
	for _, r := range cache.AssignmentSources().ByFile(key.File) {
		if g.assignments[r.Line] == nil {
			continue
		}
		byTarget := g.assignSources[r.Line]
		if byTarget == nil {
			byTarget = map[string][]string{}
			g.assignSources[r.Line] = byTarget
		}
		byTarget[r.TargetVar] = append(byTarget[r.TargetVar], r.SourceVar)
	}
	return g
}

func statementsOf(cache *store.Cache, blockID int) []store.CFGBlockStatementsRow {
	stmts := slices.Clone(cache.CFGBlockStatements().ByBlockID(blockID))
	slices.SortFunc(stmts, func(a, b store.CFGBlockStatementsRow) int {
		return cmp.Compare(a.StatementOrder, b.StatementOrder)
	})
	return stmts
}

// entryBlock finds the unique block with no incoming edge. Zero or several
// candidates mean the recorded graph is degenerate and the whole CFG is
// treated as unavailable.
func entryBlock(blocks map[int]*Block, incoming map[int]int) (int, bool) {
	entry, found := 0, false
	for _, id := range sortedBlockIDs(blocks) {
		if incoming[id] == 0 {
			if found {
				return 0, false
			}
			entry, found = id, true
		}
	}
	return entry, found
}

func markDead(g *CFG) {
	nodes := make([]int64, 0, len(g.Blocks))
	var edges [][2]int64
	for id, b := range g.Blocks {
		nodes = append(nodes, int64(id))
		for _, s := range b.Succs {
			edges = append(edges, [2]int64{int64(id), int64(s)})
		}
	}
	reached := graphutil.ReachableFrom(graphutil.DirectedFromEdges(nodes, edges), int64(g.Entry))
	for id, b := range g.Blocks {
		if !reached[int64(id)] {
			b.Dead = true
		}
	}
}
