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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validDef(name string) *TableDef {
	return &TableDef{
		Name: name,
		Columns: []Column{
			{Name: "file", Type: Text},
			{Name: "line", Type: Int},
			{Name: "note", Type: Text, Nullable: true},
		},
		Indexed: []string{"file"},
	}
}

func TestRegisterRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  *TableDef
	}{
		{"no name", &TableDef{Columns: []Column{{Name: "a", Type: Text}}}},
		{"no columns", &TableDef{Name: "t"}},
		{"duplicate column", &TableDef{Name: "t", Columns: []Column{
			{Name: "a", Type: Text}, {Name: "a", Type: Int}}}},
		{"unknown indexed column", &TableDef{Name: "t",
			Columns: []Column{{Name: "a", Type: Text}}, Indexed: []string{"b"}}},
		{"unknown primary key column", &TableDef{Name: "t",
			Columns: []Column{{Name: "a", Type: Text}}, PrimaryKey: []string{"b"}}},
		{"foreign key arity mismatch", &TableDef{Name: "t",
			Columns: []Column{{Name: "a", Type: Text}},
			ForeignKeys: []ForeignKey{{
				Columns: []string{"a"}, TargetTable: "u", TargetColumns: []string{"x", "y"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.def)
			var specErr *SpecError
			require.ErrorAs(t, err, &specErr)
		})
	}
}

func TestRegisterRejectsDuplicateTable(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(validDef("t")))
	err := r.Register(validDef("t"))
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
	require.Equal(t, "t", specErr.Table)
}

func TestValidateChecksForeignKeyTargets(t *testing.T) {
	r := NewRegistry()
	def := validDef("child")
	def.ForeignKeys = []ForeignKey{{
		Columns: []string{"file"}, TargetTable: "parent", TargetColumns: []string{"file"},
	}}
	require.NoError(t, r.Register(def))

	err := r.Validate()
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)

	r2 := NewRegistry()
	require.NoError(t, r2.Register(validDef("parent")))
	def2 := validDef("child")
	def2.ForeignKeys = []ForeignKey{{
		Columns: []string{"file"}, TargetTable: "parent", TargetColumns: []string{"file"},
	}}
	require.NoError(t, r2.Register(def2))
	require.NoError(t, r2.Validate())
}

func TestValidateSealsRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(validDef("t")))
	require.NoError(t, r.Validate())

	err := r.Register(validDef("u"))
	var specErr *SpecError
	require.True(t, errors.As(err, &specErr))
}

func TestBuildQuery(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(validDef("t")))

	tests := []struct {
		name string
		cols []string
		opts []QueryOption
		want string
	}{
		{"plain", []string{"file", "line"}, nil,
			"SELECT file, line FROM t"},
		{"where", []string{"file"}, []QueryOption{Where("line = ?")},
			"SELECT file FROM t WHERE line = ?"},
		{"ordered and limited", []string{"file"},
			[]QueryOption{OrderBy("line"), Limit(10)},
			"SELECT file FROM t ORDER BY line LIMIT 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, r.BuildQuery("t", tt.cols, tt.opts...))
		})
	}
}

func TestBuildQueryPanicsOnUndeclared(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(validDef("t")))
	require.Panics(t, func() { r.BuildQuery("missing", []string{"file"}) })
	require.Panics(t, func() { r.BuildQuery("t", []string{"nope"}) })
}

func TestCreateAndInsertStatements(t *testing.T) {
	r := NewRegistry()
	def := validDef("t")
	def.PrimaryKey = []string{"file", "line"}
	require.NoError(t, r.Register(def))

	require.Equal(t,
		"CREATE TABLE IF NOT EXISTS t (file TEXT NOT NULL, line INTEGER NOT NULL, note TEXT, PRIMARY KEY (file, line))",
		r.CreateStatement("t"))
	require.Equal(t,
		"INSERT INTO t (file, line, note) VALUES (?, ?, ?)",
		r.InsertStatement("t"))
}

func TestDefaultCatalogIsValid(t *testing.T) {
	// The catalog registers and validates at init; reaching this test means
	// it did not panic. Spot-check a few invariants the rest of the system
	// relies on.
	require.NotNil(t, Default.Table("assignments"))
	require.NotNil(t, Default.Table("cfg_blocks"))
	require.True(t, Default.Table("findings").WriteOnly)
	for _, def := range Default.Tables() {
		for _, idx := range def.Indexed {
			_, ok := def.Column(idx)
			require.True(t, ok, "table %s indexes unknown column %s", def.Name, idx)
		}
	}
}
