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

package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/flowscope/flowscope/analysis/store"
	"github.com/flowscope/flowscope/internal/dbtest"
)

func loadCache(t *testing.T, path string) *store.Cache {
	t.Helper()
	conn, err := store.OpenReadOnly(path)
	require.NoError(t, err)
	defer conn.Close()
	cache := store.NewCache(nil)
	require.NoError(t, cache.Load(conn))
	return cache
}

func TestLoadRoundTrip(t *testing.T) {
	path, conn := dbtest.Create(t)
	dbtest.Insert(t, conn, "files", "app.py", "python", 120)
	dbtest.Insert(t, conn, "files", "lib.py", "python", 40)
	dbtest.Insert(t, conn, "assignments", "app.py", 10, "uid", "request.args['id']", "handler")
	dbtest.Insert(t, conn, "assignment_sources", "app.py", 12, "query", "uid")
	dbtest.Insert(t, conn, "sql_queries", "app.py", 14, "handler", "SELECT", false, true, "query")

	cache := loadCache(t, path)

	require.Len(t, cache.Files().All(), 2)
	require.Len(t, cache.Files().ByLanguage("python"), 2)
	require.Empty(t, cache.Files().ByLanguage("go"))

	assigns := cache.Assignments().ByFile("app.py")
	require.Len(t, assigns, 1)
	require.Equal(t, "uid", assigns[0].TargetVar)
	require.Equal(t, assigns, cache.Assignments().ByTargetVar("uid"))

	srcs := cache.AssignmentSources().BySourceVar("uid")
	require.Len(t, srcs, 1)
	require.Equal(t, "query", srcs[0].TargetVar)

	queries := cache.SQLQueries().ByCommand("SELECT")
	require.Len(t, queries, 1)
	require.True(t, queries[0].HasConcatenation)
	require.False(t, queries[0].IsParameterized)
}

func TestLoadNullableColumns(t *testing.T) {
	path, conn := dbtest.Create(t)
	dbtest.Insert(t, conn, "symbols", "app.py", "handler", "function", 8, 0, nil)
	dbtest.Insert(t, conn, "env_reads", "app.py", 3, "API_KEY", "main", nil, true)

	cache := loadCache(t, path)

	syms := cache.Symbols().ByName("handler")
	require.Len(t, syms, 1)
	require.Equal(t, -1, syms[0].EndLine)

	envs := cache.EnvReads().ByFile("app.py")
	require.Len(t, envs, 1)
	require.Equal(t, "", envs[0].TargetVar)
	require.True(t, envs[0].IsCredential)
}

func TestLoadFailsOnMissingTable(t *testing.T) {
	path, conn := dbtest.Create(t)
	dbtest.Exec(t, conn, "DROP TABLE symbols")

	ro, err := store.OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	cache := store.NewCache(nil)
	err = cache.Load(ro)
	var cv *store.ContractViolationError
	require.ErrorAs(t, err, &cv)
	require.Equal(t, "symbols", cv.Table)

	// The failed load leaves no table queryable, including ones loaded
	// before the violation was hit.
	require.False(t, cache.Loaded())
	require.Panics(t, func() { cache.Files() })
}

func TestLoadFailsOnNullInNonNullableColumn(t *testing.T) {
	path, conn := dbtest.Create(t)
	// The registry DDL carries NOT NULL, which would reject the fixture row
	// at insert time; recreate the table relaxed so the scanner's own NULL
	// check is what fires.
	dbtest.Exec(t, conn, "DROP TABLE files")
	dbtest.Exec(t, conn, "CREATE TABLE files (path TEXT, language TEXT, loc INTEGER)")
	dbtest.Insert(t, conn, "files", "app.py", nil, 10)

	ro, err := store.OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	cache := store.NewCache(nil)
	err = cache.Load(ro)
	var cv *store.ContractViolationError
	require.ErrorAs(t, err, &cv)
	require.Equal(t, "files", cv.Table)
	require.False(t, cache.Loaded())
}

func TestLoadTwicePanics(t *testing.T) {
	path, _ := dbtest.Create(t)
	conn, err := store.OpenReadOnly(path)
	require.NoError(t, err)
	defer conn.Close()

	cache := store.NewCache(nil)
	require.NoError(t, cache.Load(conn))
	require.Panics(t, func() { _ = cache.Load(conn) })
}

func TestWriteFindings(t *testing.T) {
	_, conn := dbtest.Create(t)

	rows := []store.FindingsRow{
		{
			SourceFile: "app.py", SourceLine: 10, SourceFunction: "handler",
			SinkFile: "app.py", SinkLine: 14, SinkFunction: "handler",
			Category: "sql-injection", Risk: "critical",
			PathJSON: `[{"file":"app.py","line":10}]`,
		},
		{
			SourceFile: "app.py", SourceLine: 3, SourceFunction: "main",
			SinkFile: "lib.py", SinkLine: 22, SinkFunction: "run",
			Category: "command-injection", Risk: "high",
			PathJSON: "[]", BudgetExceeded: true,
		},
	}
	require.NoError(t, store.WriteFindings(conn, rows))

	count := 0
	partial := 0
	err := sqlitex.ExecuteTransient(conn, "SELECT category, budget_exceeded FROM findings", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count++
			if stmt.ColumnBool(1) {
				partial++
			}
			return nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, 1, partial)
}
