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

// Package store reads the relational store produced by the extraction layer
// and materializes it into an in-memory Cache.
//
// The cache has a strict two-phase lifecycle: constructed empty, loaded
// exactly once with one unfiltered read per registered table, read-only
// afterwards. A table or column missing from the store is a
// *ContractViolationError and aborts the load; there is no lazy or degraded
// mode, and no code path queries the backing store again until findings are
// written.
//
// The typed rows, per-table accessors and load hooks in zz_generated.go are
// produced by cmd/schemagen from the schema registry. NULL values in
// nullable columns scan to "" for text, -1 for integers and false for
// booleans; a NULL in a non-nullable column fails the load.
package store
