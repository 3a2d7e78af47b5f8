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

import "fmt"

// ContractViolationError reports a mismatch between the schema registry and
// the backing store: a missing table or column, a NULL in a non-nullable
// column, or a failed write to the findings table. It is always fatal; the
// cache is left unloaded and the analysis must not proceed.
type ContractViolationError struct {
	Table string
	Err   error
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("schema contract violation on table %q: %v", e.Table, e.Err)
}

func (e *ContractViolationError) Unwrap() error { return e.Err }
