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

package store

import (
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/flowscope/flowscope/analysis/schema"
)

// WriteFindings appends rows to the findings table inside a single
// transaction, creating the table when it does not exist yet. The findings
// table is append-only: nothing in this subsystem reads it back.
func WriteFindings(conn *sqlite.Conn, rows []FindingsRow) (err error) {
	if err := sqlitex.ExecuteTransient(conn, schema.CreateStatement("findings"), nil); err != nil {
		return &ContractViolationError{Table: "findings", Err: err}
	}
	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return &ContractViolationError{Table: "findings", Err: err}
	}
	defer endFn(&err)

	stmt, err := conn.Prepare(schema.InsertStatement("findings"))
	if err != nil {
		return &ContractViolationError{Table: "findings", Err: err}
	}
	for _, r := range rows {
		r.bind(stmt)
		if _, err := stmt.Step(); err != nil {
			return &ContractViolationError{Table: "findings", Err: err}
		}
		if err := stmt.Reset(); err != nil {
			return &ContractViolationError{Table: "findings", Err: err}
		}
	}
	return nil
}
