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

// The table catalog. Adding a table here (and teaching the extraction layer
// to populate it) is all that is needed for a typed row, accessors and a
// cache slot to appear: rerun `go generate ./analysis/store` afterwards.

// Files lists every indexed source file.
var Files = &TableDef{
	Name: "files",
	Columns: []Column{
		{Name: "path", Type: Text},
		{Name: "language", Type: Text},
		{Name: "loc", Type: Int},
	},
	PrimaryKey: []string{"path"},
	Indexed:    []string{"path", "language"},
}

// Symbols holds every named program entity (functions, variables, calls,
// properties) with its location.
var Symbols = &TableDef{
	Name: "symbols",
	Columns: []Column{
		{Name: "path", Type: Text},
		{Name: "name", Type: Text},
		{Name: "kind", Type: Text},
		{Name: "line", Type: Int},
		{Name: "col", Type: Int},
		{Name: "end_line", Type: Int, Nullable: true},
	},
	PrimaryKey: []string{"path", "name", "kind", "line", "col"},
	Indexed:    []string{"path", "name", "kind"},
}

// APIEndpoints holds externally reachable HTTP/queue/CLI entry points with
// the authentication metadata captured by extraction.
var APIEndpoints = &TableDef{
	Name: "api_endpoints",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "method", Type: Text},
		{Name: "pattern", Type: Text},
		{Name: "has_auth", Type: Bool},
		{Name: "handler_function", Type: Text},
	},
	Indexed: []string{"file", "handler_function"},
}

// EnvReads holds environment and credential reads.
var EnvReads = &TableDef{
	Name: "env_reads",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "name", Type: Text},
		{Name: "in_function", Type: Text},
		{Name: "target_var", Type: Text, Nullable: true},
		{Name: "is_credential", Type: Bool},
	},
	Indexed: []string{"file"},
}

// DeserializationSites holds points where serialized external data is turned
// into live objects.
var DeserializationSites = &TableDef{
	Name: "deserialization_sites",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "codec", Type: Text},
		{Name: "target_var", Type: Text, Nullable: true},
	},
	Indexed: []string{"file"},
}

// FileReads holds file-read operations whose result enters program state.
var FileReads = &TableDef{
	Name: "file_reads",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "callee", Type: Text},
		{Name: "target_var", Type: Text, Nullable: true},
		{Name: "path_is_literal", Type: Bool},
	},
	Indexed: []string{"file"},
}

// SQLQueries holds query executions with the structural facts extraction
// captured about how the query text was constructed.
var SQLQueries = &TableDef{
	Name: "sql_queries",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "command", Type: Text},
		{Name: "is_parameterized", Type: Bool},
		{Name: "has_concatenation", Type: Bool},
		{Name: "argument_expr", Type: Text},
	},
	Indexed: []string{"file", "command"},
}

// TemplateRenders holds templated-output rendering sites.
var TemplateRenders = &TableDef{
	Name: "template_renders",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "template_name", Type: Text, Nullable: true},
		{Name: "is_autoescaped", Type: Bool},
		{Name: "argument_expr", Type: Text},
	},
	Indexed: []string{"file"},
}

// CommandExecutions holds process and command invocations.
var CommandExecutions = &TableDef{
	Name: "command_executions",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "callee", Type: Text},
		{Name: "uses_shell", Type: Bool},
		{Name: "argument_expr", Type: Text},
	},
	Indexed: []string{"file"},
}

// FileWrites holds filesystem writes whose target path may be influenced by
// program data.
var FileWrites = &TableDef{
	Name: "file_writes",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "in_function", Type: Text},
		{Name: "callee", Type: Text},
		{Name: "path_expr", Type: Text},
		{Name: "path_is_literal", Type: Bool},
	},
	Indexed: []string{"file"},
}

// Assignments holds one row per assignment statement.
var Assignments = &TableDef{
	Name: "assignments",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "target_var", Type: Text},
		{Name: "source_expr", Type: Text},
		{Name: "in_function", Type: Text},
	},
	PrimaryKey: []string{"file", "line", "target_var"},
	Indexed:    []string{"file", "in_function", "target_var"},
}

// AssignmentSources is the junction table with one row per variable read on
// the right-hand side of an assignment. It replaces substring matching on
// source_expr during propagation.
var AssignmentSources = &TableDef{
	Name: "assignment_sources",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "target_var", Type: Text},
		{Name: "source_var", Type: Text},
	},
	Indexed: []string{"file", "source_var"},
	ForeignKeys: []ForeignKey{{
		Columns:       []string{"file", "line", "target_var"},
		TargetTable:   "assignments",
		TargetColumns: []string{"file", "line", "target_var"},
	}},
}

// FunctionCallArgs holds one row per call argument (one row with a null
// argument index for zero-argument calls).
var FunctionCallArgs = &TableDef{
	Name: "function_call_args",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "caller_function", Type: Text},
		{Name: "callee_function", Type: Text},
		{Name: "argument_index", Type: Int, Nullable: true},
		{Name: "argument_expr", Type: Text, Nullable: true},
		{Name: "param_name", Type: Text, Nullable: true},
		{Name: "callee_file", Type: Text, Nullable: true},
	},
	Indexed: []string{"file", "caller_function", "callee_function"},
}

// FunctionReturns holds one row per return statement.
var FunctionReturns = &TableDef{
	Name: "function_returns",
	Columns: []Column{
		{Name: "file", Type: Text},
		{Name: "line", Type: Int},
		{Name: "function_name", Type: Text},
		{Name: "return_expr", Type: Text},
	},
	PrimaryKey: []string{"file", "line", "function_name"},
	Indexed:    []string{"file", "function_name"},
}

// CFGBlocks holds the basic blocks of every function's control-flow graph.
var CFGBlocks = &TableDef{
	Name: "cfg_blocks",
	Columns: []Column{
		{Name: "id", Type: Int},
		{Name: "file", Type: Text},
		{Name: "function_name", Type: Text},
		{Name: "block_type", Type: Text},
		{Name: "start_line", Type: Int},
		{Name: "end_line", Type: Int},
		{Name: "condition_expr", Type: Text, Nullable: true},
	},
	PrimaryKey: []string{"id"},
	Indexed:    []string{"id", "file", "function_name"},
}

// CFGEdges holds the directed edges between basic blocks.
var CFGEdges = &TableDef{
	Name: "cfg_edges",
	Columns: []Column{
		{Name: "id", Type: Int},
		{Name: "file", Type: Text},
		{Name: "function_name", Type: Text},
		{Name: "source_block_id", Type: Int},
		{Name: "target_block_id", Type: Int},
		{Name: "edge_type", Type: Text},
	},
	PrimaryKey: []string{"id"},
	Indexed:    []string{"file", "function_name", "source_block_id", "target_block_id"},
	ForeignKeys: []ForeignKey{
		{Columns: []string{"source_block_id"}, TargetTable: "cfg_blocks", TargetColumns: []string{"id"}},
		{Columns: []string{"target_block_id"}, TargetTable: "cfg_blocks", TargetColumns: []string{"id"}},
	},
}

// CFGBlockStatements holds the ordered statements of each basic block.
var CFGBlockStatements = &TableDef{
	Name: "cfg_block_statements",
	Columns: []Column{
		{Name: "block_id", Type: Int},
		{Name: "statement_order", Type: Int},
		{Name: "statement_type", Type: Text},
		{Name: "line", Type: Int},
		{Name: "statement_text", Type: Text, Nullable: true},
	},
	Indexed: []string{"block_id", "line"},
	ForeignKeys: []ForeignKey{{
		Columns:       []string{"block_id"},
		TargetTable:   "cfg_blocks",
		TargetColumns: []string{"id"},
	}},
}

// Findings is the append-only output table. This subsystem writes it and
// never reads it back.
var Findings = &TableDef{
	Name: "findings",
	Columns: []Column{
		{Name: "source_file", Type: Text},
		{Name: "source_line", Type: Int},
		{Name: "source_function", Type: Text},
		{Name: "sink_file", Type: Text},
		{Name: "sink_line", Type: Int},
		{Name: "sink_function", Type: Text},
		{Name: "category", Type: Text},
		{Name: "risk", Type: Text},
		{Name: "path_json", Type: Text},
		{Name: "budget_exceeded", Type: Bool},
	},
	WriteOnly: true,
}

func init() {
	for _, def := range []*TableDef{
		Files,
		Symbols,
		APIEndpoints,
		EnvReads,
		DeserializationSites,
		FileReads,
		SQLQueries,
		TemplateRenders,
		CommandExecutions,
		FileWrites,
		Assignments,
		AssignmentSources,
		FunctionCallArgs,
		FunctionReturns,
		CFGBlocks,
		CFGEdges,
		CFGBlockStatements,
		Findings,
	} {
		Default.MustRegister(def)
	}
	if err := Default.Validate(); err != nil {
		panic(err)
	}
}
