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

// QueryOption modifies a query built by BuildQuery.
type QueryOption func(*queryParts)

type queryParts struct {
	where   string
	orderBy string
	limit   int
}

// Where appends a WHERE clause. The clause references columns by name and
// uses ? placeholders; callers bind arguments at execution time.
func Where(clause string) QueryOption {
	return func(q *queryParts) { q.where = clause }
}

// OrderBy appends an ORDER BY clause.
func OrderBy(clause string) QueryOption {
	return func(q *queryParts) { q.orderBy = clause }
}

// Limit appends a LIMIT clause.
func Limit(n int) QueryOption {
	return func(q *queryParts) { q.limit = n }
}

// BuildQuery constructs a SELECT over a registered table. Every column must
// be declared in the table definition; referencing an unregistered table or
// column is a programming error and panics. This is the only way query
// strings are built, so a schema change surfaces at the registry instead of
// in scattered SQL literals.
func (r *Registry) BuildQuery(table string, cols []string, opts ...QueryOption) string {
	def := r.Table(table)
	if def == nil {
		panic(fmt.Sprintf("schema: query against unregistered table %q", table))
	}
	for _, col := range cols {
		if _, ok := def.Column(col); !ok {
			panic(fmt.Sprintf("schema: query against undeclared column %s.%s", table, col))
		}
	}
	var q queryParts
	for _, opt := range opts {
		opt(&q)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(cols, ", "), table)
	if q.where != "" {
		fmt.Fprintf(&b, " WHERE %s", q.where)
	}
	if q.orderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", q.orderBy)
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	return b.String()
}

// CreateStatement returns the CREATE TABLE statement for a registered table.
// The extraction layer and test fixtures create tables through this, so the
// stored shape can never drift from the registry.
func (r *Registry) CreateStatement(table string) string {
	def := r.Table(table)
	if def == nil {
		panic(fmt.Sprintf("schema: create statement for unregistered table %q", table))
	}
	cols := make([]string, 0, len(def.Columns)+1)
	for _, c := range def.Columns {
		cols = append(cols, c.SQL())
	}
	if len(def.PrimaryKey) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(def.PrimaryKey, ", ")))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", def.Name, strings.Join(cols, ", "))
}

// InsertStatement returns the parameterized INSERT statement covering all
// columns of a registered table, in declaration order.
func (r *Registry) InsertStatement(table string) string {
	def := r.Table(table)
	if def == nil {
		panic(fmt.Sprintf("schema: insert statement for unregistered table %q", table))
	}
	names := def.ColumnNames()
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", def.Name, strings.Join(names, ", "), marks)
}

// BuildQuery builds a SELECT against the default registry.
func BuildQuery(table string, cols []string, opts ...QueryOption) string {
	return Default.BuildQuery(table, cols, opts...)
}

// CreateStatement builds a CREATE TABLE against the default registry.
func CreateStatement(table string) string {
	return Default.CreateStatement(table)
}

// InsertStatement builds an INSERT against the default registry.
func InsertStatement(table string) string {
	return Default.InsertStatement(table)
}
