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

package taint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/discovery"
	"github.com/flowscope/flowscope/analysis/taint"
	"github.com/flowscope/flowscope/internal/dbtest"
)

// fixture wraps a test store with insert helpers for the tables the engine
// reads. Block and edge ids are globally unique across the fixture.
type fixture struct {
	t    *testing.T
	path string
	conn *sqlite.Conn

	nextEdge int
}

func newFixture(t *testing.T) *fixture {
	path, conn := dbtest.Create(t)
	return &fixture{t: t, path: path, conn: conn}
}

func (f *fixture) endpoint(file string, line int, handler string, hasAuth bool) {
	dbtest.Insert(f.t, f.conn, "api_endpoints", file, line, "GET", "/r", hasAuth, handler)
}

func (f *fixture) block(id int, file, fn string, start, end int, lines ...int) {
	dbtest.Insert(f.t, f.conn, "cfg_blocks", id, file, fn, "linear", start, end, nil)
	for i, line := range lines {
		dbtest.Insert(f.t, f.conn, "cfg_block_statements", id, i, "stmt", line, nil)
	}
}

func (f *fixture) edge(file, fn string, from, to int) {
	f.nextEdge++
	dbtest.Insert(f.t, f.conn, "cfg_edges", f.nextEdge, file, fn, from, to, "flow")
}

func (f *fixture) assign(file string, line int, target, expr, fn string, sources ...string) {
	dbtest.Insert(f.t, f.conn, "assignments", file, line, target, expr, fn)
	for _, src := range sources {
		dbtest.Insert(f.t, f.conn, "assignment_sources", file, line, target, src)
	}
}

func (f *fixture) call(file string, line int, caller, callee string, argIdx int, argExpr, param, calleeFile string) {
	var idx any = argIdx
	if argIdx < 0 {
		idx = nil
	}
	dbtest.Insert(f.t, f.conn, "function_call_args", file, line, caller, callee, idx, argExpr, param, calleeFile)
}

func (f *fixture) ret(file string, line int, fn, expr string) {
	dbtest.Insert(f.t, f.conn, "function_returns", file, line, fn, expr)
}

func (f *fixture) sqlSink(file string, line int, fn, argExpr string, concat bool) {
	dbtest.Insert(f.t, f.conn, "sql_queries", file, line, fn, "SELECT", false, concat, argExpr)
}

func (f *fixture) templateSink(file string, line int, fn, argExpr string) {
	dbtest.Insert(f.t, f.conn, "template_renders", file, line, fn, "page.html", false, argExpr)
}

func (f *fixture) countFindings() int {
	count := 0
	err := sqlitex.ExecuteTransient(f.conn, "SELECT 1 FROM findings", &sqlitex.ExecOptions{
		ResultFunc: func(*sqlite.Stmt) error { count++; return nil },
	})
	require.NoError(f.t, err)
	return count
}

func testConfig() *config.Config {
	cfg := config.NewDefault()
	cfg.Workers = 1
	return cfg
}

// Scenario: an unauthenticated request parameter is concatenated into a
// query. One critical finding.
func TestDirectFlowToSQLSink(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.assign("app.py", 12, "query", "base + uid", "handler", "uid")
	f.sqlSink("app.py", 14, "handler", "query", true)
	f.block(1, "app.py", "handler", 10, 14, 10, 12, 14)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)

	finding := res.Findings[0]
	require.Equal(t, discovery.SourceHTTPParameter, finding.Source.Kind)
	require.Equal(t, discovery.SinkSQLInjection, finding.Sink.Kind)
	require.Equal(t, discovery.Critical, finding.Sink.Risk)
	require.False(t, finding.BudgetExceeded)

	require.NotEmpty(t, finding.Path)
	require.Equal(t, taint.Step{File: "app.py", Line: 10}, finding.Path[0])
	require.Equal(t, taint.Step{File: "app.py", Line: 14}, finding.Path[len(finding.Path)-1])

	require.Equal(t, 1, f.countFindings())
}

// Scenario: the tainted value passes through a recognized sanitizer before
// the sink. No findings.
func TestSanitizedFlowProducesNoFindings(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 12, "handler", "escape", 0, "uid", "", "")
	f.assign("app.py", 12, "clean", "escape(uid)", "handler", "uid")
	f.sqlSink("app.py", 14, "handler", "clean", true)
	f.block(1, "app.py", "handler", 10, 14, 10, 12, 14)

	cfg := testConfig()
	cfg.Sanitizers = []config.SanitizerSpec{{Callee: "escape"}}

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Empty(t, res.Findings)
	require.Equal(t, 0, f.countFindings())
}

// A sanitizer that neutralizes only one category leaves the flow live for
// the others.
func TestSanitizerCategoryScope(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 12, "handler", "quote_sql", 0, "uid", "", "")
	f.assign("app.py", 12, "v", "quote_sql(uid)", "handler", "uid")
	f.sqlSink("app.py", 14, "handler", "v", true)
	f.templateSink("app.py", 15, "handler", "v")
	f.block(1, "app.py", "handler", 10, 15, 10, 12, 14, 15)

	cfg := testConfig()
	cfg.Sanitizers = []config.SanitizerSpec{{Callee: "quote_sql", Neutralizes: []string{"sql-injection"}}}

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, discovery.SinkReflectedOutput, res.Findings[0].Sink.Kind)
}

// Scenario: the per-source block budget ends the search early. The result is
// flagged partial, and findings made before the cutoff are kept but marked.
func TestBudgetExceededFlagsPartial(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.sqlSink("app.py", 11, "handler", "uid", true)
	f.block(1, "app.py", "handler", 10, 11, 10, 11)
	for i := 2; i <= 6; i++ {
		f.block(i, "app.py", "handler", 10*i, 10*i+9, 10*i)
		f.edge("app.py", "handler", i-1, i)
	}

	cfg := testConfig()
	cfg.MaxBlocksPerSource = 2

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Equal(t, 1, res.PartialSources)
	require.Len(t, res.Findings, 1)
	require.True(t, res.Findings[0].BudgetExceeded)
}

// Taint flows into the branch that uses the tainted value; a variable
// assigned from clean data in the other branch stays clean at the join.
func TestBranchSensitivePropagation(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.assign("app.py", 20, "q", "uid", "handler", "uid")
	f.assign("app.py", 30, "other", "'constant'", "handler")
	f.sqlSink("app.py", 40, "handler", "q", true)
	f.sqlSink("app.py", 41, "handler", "other", true)
	f.block(1, "app.py", "handler", 10, 11, 10)
	f.block(2, "app.py", "handler", 20, 21, 20)
	f.block(3, "app.py", "handler", 30, 31, 30)
	f.block(4, "app.py", "handler", 40, 41, 40, 41)
	f.edge("app.py", "handler", 1, 2)
	f.edge("app.py", "handler", 1, 3)
	f.edge("app.py", "handler", 2, 4)
	f.edge("app.py", "handler", 3, 4)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, 40, res.Findings[0].Sink.Line)
}

// A sanitizer on one branch of a diamond does not protect the join: the
// un-sanitized branch still carries live taint to the sink. Sanitization
// survives a join only when every incoming path applied it.
func TestUnsanitizedBranchStillReachesSink(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 20, "handler", "escape", 0, "uid", "", "")
	f.assign("app.py", 20, "uid", "escape(uid)", "handler", "uid")
	f.sqlSink("app.py", 40, "handler", "uid", true)
	f.block(1, "app.py", "handler", 10, 11, 10)
	f.block(2, "app.py", "handler", 20, 21, 20)
	f.block(3, "app.py", "handler", 30, 31)
	f.block(4, "app.py", "handler", 40, 41, 40)
	f.edge("app.py", "handler", 1, 2)
	f.edge("app.py", "handler", 1, 3)
	f.edge("app.py", "handler", 2, 4)
	f.edge("app.py", "handler", 3, 4)

	cfg := testConfig()
	cfg.Sanitizers = []config.SanitizerSpec{{Callee: "escape"}}

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, 40, res.Findings[0].Sink.Line)
}

// The same diamond with the sanitizer on both branches is quiet.
func TestSanitizerOnEveryBranchNeutralizes(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 20, "handler", "escape", 0, "uid", "", "")
	f.assign("app.py", 20, "uid", "escape(uid)", "handler", "uid")
	f.call("app.py", 30, "handler", "escape", 0, "uid", "", "")
	f.assign("app.py", 30, "uid", "escape(uid)", "handler", "uid")
	f.sqlSink("app.py", 40, "handler", "uid", true)
	f.block(1, "app.py", "handler", 10, 11, 10)
	f.block(2, "app.py", "handler", 20, 21, 20)
	f.block(3, "app.py", "handler", 30, 31, 30)
	f.block(4, "app.py", "handler", 40, 41, 40)
	f.edge("app.py", "handler", 1, 2)
	f.edge("app.py", "handler", 1, 3)
	f.edge("app.py", "handler", 2, 4)
	f.edge("app.py", "handler", 3, 4)

	cfg := testConfig()
	cfg.Sanitizers = []config.SanitizerSpec{{Callee: "escape"}}

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Empty(t, res.Findings)
}

// An in-place sanitizer call with no assignment of its result neutralizes
// the argument variable itself.
func TestBareSanitizerCallNeutralizesArgument(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "q", "request.args['q']", "handler")
	f.call("app.py", 11, "handler", "parameterize", 0, "q", "", "")
	f.sqlSink("app.py", 12, "handler", "q", true)
	f.block(1, "app.py", "handler", 10, 12, 10, 11, 12)

	cfg := testConfig()
	cfg.Sanitizers = []config.SanitizerSpec{{Callee: "parameterize"}}

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Empty(t, res.Findings)
	require.Equal(t, 0, f.countFindings())
}

// A descent that does not lead to the sink leaves no trace in the finding's
// path: the reported hops all lie on the source-to-sink flow.
func TestFindingPathStaysOnFlow(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 11, "handler", "audit", 0, "uid", "p", "lib.py")
	f.sqlSink("app.py", 12, "handler", "uid", true)
	f.block(1, "app.py", "handler", 10, 12, 10, 11, 12)
	// The callee copies its tainted parameter around but never sinks it.
	f.assign("lib.py", 21, "copy", "p", "audit", "p")
	f.block(100, "lib.py", "audit", 20, 22, 21)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, []taint.Step{
		{File: "app.py", Line: 10},
		{File: "app.py", Line: 12},
	}, res.Findings[0].Path)
}

// A loop that keeps folding the tainted value into itself terminates and
// still reports the flow once.
func TestLoopTermination(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.assign("app.py", 20, "acc", "acc + uid", "handler", "acc", "uid")
	f.sqlSink("app.py", 21, "handler", "acc", true)
	f.block(1, "app.py", "handler", 10, 11, 10)
	f.block(2, "app.py", "handler", 20, 21, 20, 21)
	f.edge("app.py", "handler", 1, 2)
	f.edge("app.py", "handler", 2, 2)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
}

// Taint crosses into a callee whose CFG is recorded: the argument taints the
// named parameter and the sink inside the callee fires. The path spans both
// functions.
func TestInterproceduralFlowIntoCallee(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 12, "handler", "helper", 0, "uid", "p", "lib.py")
	f.block(1, "app.py", "handler", 10, 12, 10, 12)
	f.sqlSink("lib.py", 22, "helper", "p", true)
	f.block(100, "lib.py", "helper", 21, 23, 22)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)

	finding := res.Findings[0]
	require.Equal(t, "lib.py", finding.Sink.File)
	require.Equal(t, 22, finding.Sink.Line)
	require.Equal(t, "app.py", finding.Source.File)
}

// A tainted return value re-enters the caller through the call's assignment.
func TestInterproceduralFlowThroughReturn(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 12, "handler", "wrap", 0, "uid", "p", "lib.py")
	f.assign("app.py", 12, "res", "wrap(uid)", "handler")
	f.sqlSink("app.py", 14, "handler", "res", true)
	f.block(1, "app.py", "handler", 10, 14, 10, 12, 14)
	f.assign("lib.py", 32, "out", "'<' + p", "wrap", "p")
	f.ret("lib.py", 33, "wrap", "out")
	f.block(100, "lib.py", "wrap", 31, 33, 32)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, 14, res.Findings[0].Sink.Line)
}

// A call with no recorded callee CFG is a boundary, not a sanitizer: the
// assignment rows still carry the taint into the result.
func TestMissingCalleeCFGIsBoundary(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.call("app.py", 12, "handler", "thirdparty.transform", 0, "uid", "", "")
	f.assign("app.py", 12, "out", "thirdparty.transform(uid)", "handler", "uid")
	f.sqlSink("app.py", 14, "handler", "out", true)
	f.block(1, "app.py", "handler", 10, 14, 10, 12, 14)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
}

// Mutual recursion is cut by the call-graph recursion sets; the search
// terminates and intra-procedural findings survive.
func TestRecursionIsCut(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "even", false)
	f.assign("app.py", 10, "n", "request.args['n']", "even")
	f.call("app.py", 12, "even", "odd", 0, "n", "m", "app.py")
	f.call("app.py", 22, "odd", "even", 0, "m", "n", "app.py")
	f.sqlSink("app.py", 13, "even", "n", true)
	f.block(1, "app.py", "even", 10, 13, 10, 12, 13)
	f.block(2, "app.py", "odd", 20, 23, 22)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	require.Equal(t, 13, res.Findings[0].Sink.Line)
}

// Once the global ceiling is reached, remaining sources are skipped and
// counted, and completed findings are preserved.
func TestGlobalCeilingSkipsSources(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "first", false)
	f.assign("app.py", 10, "a", "request.args['a']", "first")
	f.sqlSink("app.py", 11, "first", "a", true)
	f.block(1, "app.py", "first", 10, 11, 10, 11)

	f.endpoint("zz.py", 10, "second", false)
	f.assign("zz.py", 10, "b", "request.args['b']", "second")
	f.sqlSink("zz.py", 11, "second", "b", true)
	f.block(2, "zz.py", "second", 10, 11, 10, 11)

	cfg := testConfig()
	cfg.GlobalBlockCeiling = 1

	res, err := taint.RunAnalysis(cfg, f.path)
	require.NoError(t, err)
	require.Equal(t, 1, res.SkippedSources)
	require.Len(t, res.Findings, 1)
	require.Equal(t, "app.py", res.Findings[0].Source.File)
}

// A source in a function without a recorded CFG produces no findings and no
// error.
func TestSourceWithoutCFG(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.sqlSink("app.py", 14, "handler", "uid", true)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Empty(t, res.Findings)
	require.Equal(t, 1, res.Sources)
}

// Blocks unreachable from the entry are dead: taint inside them never
// reaches a sink.
func TestDeadBlocksAreNotSearched(t *testing.T) {
	f := newFixture(t)
	f.endpoint("app.py", 10, "handler", false)
	f.assign("app.py", 10, "uid", "request.args['id']", "handler")
	f.block(1, "app.py", "handler", 10, 11, 10)
	// Blocks 2 and 3 form an island with no path from the entry; the sink
	// inside block 2 is unreachable.
	f.assign("app.py", 20, "q", "uid", "handler", "uid")
	f.sqlSink("app.py", 21, "handler", "q", true)
	f.block(2, "app.py", "handler", 20, 21, 20, 21)
	f.block(3, "app.py", "handler", 25, 26)
	f.edge("app.py", "handler", 2, 3)
	f.edge("app.py", "handler", 3, 2)

	res, err := taint.RunAnalysis(testConfig(), f.path)
	require.NoError(t, err)
	require.Empty(t, res.Findings)
}
