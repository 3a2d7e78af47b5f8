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

package config

const (
	// DefaultMaxBlocksPerSource is the default per-source exploration budget.
	DefaultMaxBlocksPerSource = 512

	// DefaultGlobalBlockCeiling is the default run-wide exploration budget.
	DefaultGlobalBlockCeiling = 1 << 20

	// DefaultMaxCallDepth is the default bound on interprocedural descent.
	DefaultMaxCallDepth = 10
)
