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

//go:generate go run github.com/flowscope/flowscope/cmd/schemagen -out zz_generated.go

package store

import (
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/flowscope/flowscope/analysis/schema"
)

// loadTable runs the full unfiltered SELECT over one registered table and
// feeds every row to fn. Any failure, including a scan error surfaced by fn,
// is a contract violation: the declared columns are the query, so a missing
// table or column fails here rather than deep in the analysis.
func loadTable(conn *sqlite.Conn, table string, cols []string, fn func(*sqlite.Stmt) error) error {
	q := schema.BuildQuery(table, cols)
	if err := sqlitex.ExecuteTransient(conn, q, &sqlitex.ExecOptions{ResultFunc: fn}); err != nil {
		return &ContractViolationError{Table: table, Err: err}
	}
	return nil
}
