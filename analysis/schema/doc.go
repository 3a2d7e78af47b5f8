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

// Package schema is the single source of truth for the relational store's
// table definitions. The extraction layer creates tables from these
// definitions, the store package loads them into memory through accessors
// generated from them, and every query string is built through BuildQuery so
// that no consumer hardcodes a table or column name.
//
// Table definitions are registered once at init time in the default registry
// (see tables.go) and are immutable afterwards. A definition that is
// self-inconsistent (duplicate table name, dangling foreign key, indexed
// column absent from the column list) is reported as a *SpecError before any
// analysis runs.
package schema
