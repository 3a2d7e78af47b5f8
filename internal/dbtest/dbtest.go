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

// Package dbtest builds throwaway stores for tests. Tables are created from
// the schema registry so fixtures can never drift from the declared shape.
package dbtest

import (
	"fmt"
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/flowscope/flowscope/analysis/schema"
)

// Create builds a store file in a temp directory with every registered table
// created and empty, and returns its path together with an open read-write
// connection. The connection is closed automatically when the test ends.
func Create(t testing.TB) (string, *sqlite.Conn) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	for _, def := range schema.Default.Tables() {
		if err := sqlitex.ExecuteTransient(conn, schema.CreateStatement(def.Name), nil); err != nil {
			t.Fatalf("creating table %s: %v", def.Name, err)
		}
	}
	return path, conn
}

// Insert adds one row to a registered table. Values are given in column
// declaration order; nil inserts a NULL.
func Insert(t testing.TB, conn *sqlite.Conn, table string, values ...any) {
	t.Helper()
	def := schema.Default.Table(table)
	if def == nil {
		t.Fatalf("insert into unregistered table %q", table)
	}
	if len(values) != len(def.Columns) {
		t.Fatalf("insert into %s: got %d values, table has %d columns", table, len(values), len(def.Columns))
	}
	stmt, err := conn.Prepare(schema.InsertStatement(table))
	if err != nil {
		t.Fatalf("preparing insert into %s: %v", table, err)
	}
	for i, v := range values {
		if err := bindValue(stmt, i+1, v); err != nil {
			t.Fatalf("insert into %s: column %s: %v", table, def.Columns[i].Name, err)
		}
	}
	if _, err := stmt.Step(); err != nil {
		t.Fatalf("insert into %s: %v", table, err)
	}
	if err := stmt.Reset(); err != nil {
		t.Fatalf("insert into %s: %v", table, err)
	}
	if err := stmt.ClearBindings(); err != nil {
		t.Fatalf("insert into %s: %v", table, err)
	}
}

// Exec runs one statement against the test store, for fixtures that need raw
// DDL (e.g. dropping a column to provoke a contract violation).
func Exec(t testing.TB, conn *sqlite.Conn, stmt string) {
	t.Helper()
	if err := sqlitex.ExecuteTransient(conn, stmt, nil); err != nil {
		t.Fatalf("executing %q: %v", stmt, err)
	}
}

func bindValue(stmt *sqlite.Stmt, param int, v any) error {
	switch x := v.(type) {
	case nil:
		stmt.BindNull(param)
	case string:
		stmt.BindText(param, x)
	case int:
		stmt.BindInt64(param, int64(x))
	case int64:
		stmt.BindInt64(param, x)
	case bool:
		stmt.BindBool(param, x)
	case float64:
		stmt.BindFloat(param, x)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}
