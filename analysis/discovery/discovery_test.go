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

package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowscope/flowscope/analysis/discovery"
	"github.com/flowscope/flowscope/analysis/store"
	"github.com/flowscope/flowscope/internal/dbtest"
)

func fixtureCache(t *testing.T) *store.Cache {
	t.Helper()
	path, conn := dbtest.Create(t)

	dbtest.Insert(t, conn, "api_endpoints", "app.py", 10, "GET", "/users", false, "list_users")
	dbtest.Insert(t, conn, "api_endpoints", "app.py", 30, "POST", "/admin", true, "admin_action")
	dbtest.Insert(t, conn, "env_reads", "app.py", 3, "DB_PASSWORD", "main", "pw", true)
	dbtest.Insert(t, conn, "env_reads", "app.py", 4, "LOG_LEVEL", "main", "lvl", false)
	dbtest.Insert(t, conn, "file_reads", "app.py", 20, "load", "open", "data", false)
	dbtest.Insert(t, conn, "deserialization_sites", "app.py", 25, "load", "pickle", "obj")

	dbtest.Insert(t, conn, "sql_queries", "app.py", 14, "list_users", "SELECT", false, true, "query")
	dbtest.Insert(t, conn, "sql_queries", "app.py", 15, "list_users", "SELECT", true, false, "q2")
	dbtest.Insert(t, conn, "sql_queries", "app.py", 16, "list_users", "UPDATE", false, false, "q3")
	dbtest.Insert(t, conn, "template_renders", "app.py", 40, "page", "index.html", false, "ctx")
	dbtest.Insert(t, conn, "command_executions", "app.py", 50, "run", "subprocess.call", true, "cmd")
	dbtest.Insert(t, conn, "file_writes", "app.py", 60, "save", "write", "dst_path", false)

	ro, err := store.OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()
	cache := store.NewCache(nil)
	require.NoError(t, cache.Load(ro))
	return cache
}

func TestSourcesClassification(t *testing.T) {
	cache := fixtureCache(t)
	sources := discovery.Sources(cache)
	require.Len(t, sources, 6)

	byLine := map[int]discovery.Source{}
	for _, s := range sources {
		byLine[s.Line] = s
	}

	tests := []struct {
		line int
		kind discovery.SourceKind
		risk discovery.Risk
	}{
		{10, discovery.SourceHTTPParameter, discovery.High},     // no auth
		{30, discovery.SourceHTTPParameter, discovery.Medium},   // authenticated
		{3, discovery.SourceEnvironmentRead, discovery.High},    // credential
		{4, discovery.SourceEnvironmentRead, discovery.Low},     // plain config
		{20, discovery.SourceFileRead, discovery.Medium},        // computed path
		{25, discovery.SourceDeserializedObject, discovery.High}, // always high
	}
	for _, tt := range tests {
		s, ok := byLine[tt.line]
		require.True(t, ok, "no source at line %d", tt.line)
		require.Equal(t, tt.kind, s.Kind, "line %d", tt.line)
		require.Equal(t, tt.risk, s.Risk, "line %d", tt.line)
	}
}

func TestSinksClassification(t *testing.T) {
	cache := fixtureCache(t)
	sinks := discovery.Sinks(cache)
	require.Len(t, sinks, 6)

	byLine := map[int]discovery.Sink{}
	for _, s := range sinks {
		byLine[s.Line] = s
	}

	tests := []struct {
		line int
		kind discovery.SinkKind
		risk discovery.Risk
	}{
		{14, discovery.SinkSQLInjection, discovery.Critical},   // concatenation
		{15, discovery.SinkSQLInjection, discovery.Low},        // parameterized
		{16, discovery.SinkSQLInjection, discovery.Medium},     // neither
		{40, discovery.SinkReflectedOutput, discovery.High},    // no autoescape
		{50, discovery.SinkCommandInjection, discovery.Critical}, // shell
		{60, discovery.SinkPathWrite, discovery.Medium},        // computed path
	}
	for _, tt := range tests {
		s, ok := byLine[tt.line]
		require.True(t, ok, "no sink at line %d", tt.line)
		require.Equal(t, tt.kind, s.Kind, "line %d", tt.line)
		require.Equal(t, tt.risk, s.Risk, "line %d", tt.line)
	}
}

func TestDiscoveryIsDeterministic(t *testing.T) {
	cache := fixtureCache(t)
	require.Equal(t, discovery.Sources(cache), discovery.Sources(cache))
	require.Equal(t, discovery.Sinks(cache), discovery.Sinks(cache))
}

func TestDiscoveryIsSorted(t *testing.T) {
	cache := fixtureCache(t)
	sources := discovery.Sources(cache)
	for i := 1; i < len(sources); i++ {
		a, b := sources[i-1], sources[i]
		require.True(t, a.File < b.File || (a.File == b.File && a.Line <= b.Line))
	}
	sinks := discovery.Sinks(cache)
	for i := 1; i < len(sinks); i++ {
		a, b := sinks[i-1], sinks[i]
		require.True(t, a.File < b.File || (a.File == b.File && a.Line <= b.Line))
	}
}
