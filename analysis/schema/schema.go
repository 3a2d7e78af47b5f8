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

package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the semantic type of a column. The store maps these onto
// SQLite storage classes; the code generator maps them onto Go types.
type ColumnType int

const (
	Text ColumnType = iota
	Int
	Bool
	Float
)

// SQLType returns the SQLite column type for the semantic type.
func (t ColumnType) SQLType() string {
	switch t {
	case Text:
		return "TEXT"
	case Int:
		return "INTEGER"
	case Bool:
		return "BOOLEAN"
	case Float:
		return "REAL"
	}
	panic(fmt.Sprintf("unknown column type %d", int(t)))
}

// GoType returns the Go type the code generator uses for the semantic type.
func (t ColumnType) GoType() string {
	switch t {
	case Text:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Float:
		return "float64"
	}
	panic(fmt.Sprintf("unknown column type %d", int(t)))
}

// Column describes one column of a table definition.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// SQL returns the column definition fragment for a CREATE TABLE statement.
func (c Column) SQL() string {
	parts := []string{c.Name, c.Type.SQLType()}
	if !c.Nullable {
		parts = append(parts, "NOT NULL")
	}
	return strings.Join(parts, " ")
}

// ForeignKey links columns of the defining table to columns of another
// registered table. Validation rejects definitions whose target table or
// columns do not exist.
type ForeignKey struct {
	Columns       []string
	TargetTable   string
	TargetColumns []string
}

// TableDef is the declarative definition of one table: ordered columns, the
// set of indexed columns (each of which gets a generated ByCol accessor and
// an in-memory index at load time), an optional primary key and optional
// foreign keys. Definitions are created once at startup and never mutated.
type TableDef struct {
	Name        string
	Columns     []Column
	Indexed     []string
	PrimaryKey  []string
	ForeignKeys []ForeignKey

	// WriteOnly marks a table this subsystem appends to but never reads
	// (the findings table). Write-only tables get no cache slot and no
	// accessors, only a typed row and an insert binder.
	WriteOnly bool
}

// Column returns the named column definition, or false if it is not part of
// the table.
func (t *TableDef) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in declaration order.
func (t *TableDef) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// validate checks the table definition in isolation. Cross-table checks
// (foreign key targets) live in Registry.Validate.
func (t *TableDef) validate() error {
	if t.Name == "" {
		return &SpecError{Table: t.Name, Reason: "table has no name"}
	}
	if len(t.Columns) == 0 {
		return &SpecError{Table: t.Name, Reason: "table has no columns"}
	}
	seen := map[string]bool{}
	for _, c := range t.Columns {
		if c.Name == "" {
			return &SpecError{Table: t.Name, Reason: "column has no name"}
		}
		if seen[c.Name] {
			return &SpecError{Table: t.Name, Reason: fmt.Sprintf("duplicate column %q", c.Name)}
		}
		seen[c.Name] = true
	}
	for _, idx := range t.Indexed {
		if !seen[idx] {
			return &SpecError{Table: t.Name, Reason: fmt.Sprintf("indexed column %q absent from column list", idx)}
		}
	}
	for _, pk := range t.PrimaryKey {
		if !seen[pk] {
			return &SpecError{Table: t.Name, Reason: fmt.Sprintf("primary key column %q absent from column list", pk)}
		}
	}
	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) != len(fk.TargetColumns) {
			return &SpecError{Table: t.Name, Reason: fmt.Sprintf(
				"foreign key to %q has %d local columns but %d target columns",
				fk.TargetTable, len(fk.Columns), len(fk.TargetColumns))}
		}
		for _, col := range fk.Columns {
			if !seen[col] {
				return &SpecError{Table: t.Name, Reason: fmt.Sprintf("foreign key column %q absent from column list", col)}
			}
		}
	}
	return nil
}

// SpecError reports a self-inconsistent table definition. It is fatal at
// startup, before any analysis runs.
type SpecError struct {
	Table  string
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid table definition %q: %s", e.Table, e.Reason)
}
