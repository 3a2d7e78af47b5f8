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

// Package discovery derives taint sources and sinks from the loaded store.
//
// Sources and sinks are pure functions of the cache: running discovery twice
// on the same cache yields identical slices. Risk classification reads only
// the structural columns extraction recorded (has_auth, is_parameterized,
// uses_shell, ...) and never inspects expression text.
package discovery

import "fmt"

// SourceKind identifies where untrusted data enters the program.
type SourceKind int

const (
	// SourceHTTPParameter is request data reaching an API handler.
	SourceHTTPParameter SourceKind = iota
	// SourceEnvironmentRead is data read from the process environment.
	SourceEnvironmentRead
	// SourceFileRead is data read from the filesystem.
	SourceFileRead
	// SourceDeserializedObject is an object decoded from serialized input.
	SourceDeserializedObject
)

func (k SourceKind) String() string {
	switch k {
	case SourceHTTPParameter:
		return "http-parameter"
	case SourceEnvironmentRead:
		return "environment-read"
	case SourceFileRead:
		return "file-read"
	case SourceDeserializedObject:
		return "deserialized-object"
	}
	panic(fmt.Sprintf("unknown source kind %d", int(k)))
}

// SinkKind identifies an operation that must not receive tainted data.
type SinkKind int

const (
	// SinkSQLInjection is a query execution built from program data.
	SinkSQLInjection SinkKind = iota
	// SinkReflectedOutput is templated output rendered back to a client.
	SinkReflectedOutput
	// SinkCommandInjection is a process or shell invocation.
	SinkCommandInjection
	// SinkPathWrite is a filesystem write to a computed path.
	SinkPathWrite
)

func (k SinkKind) String() string {
	switch k {
	case SinkSQLInjection:
		return "sql-injection"
	case SinkReflectedOutput:
		return "reflected-output"
	case SinkCommandInjection:
		return "command-injection"
	case SinkPathWrite:
		return "path-write"
	}
	panic(fmt.Sprintf("unknown sink kind %d", int(k)))
}

// Risk orders findings by severity.
type Risk int

const (
	Low Risk = iota
	Medium
	High
	Critical
)

func (r Risk) String() string {
	switch r {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Critical:
		return "critical"
	}
	panic(fmt.Sprintf("unknown risk %d", int(r)))
}

// Source is one point where untrusted data enters the program.
type Source struct {
	Kind     SourceKind
	File     string
	Line     int
	Function string
	// TargetVar is the variable the source value was bound to, when
	// extraction recorded one. Empty otherwise.
	TargetVar string
	Risk      Risk
	// Detail is a human-readable description of the entry point (route
	// pattern, environment variable name, callee).
	Detail string
}

// Sink is one operation that untrusted data must not reach.
type Sink struct {
	Kind     SinkKind
	File     string
	Line     int
	Function string
	// ArgumentExpr is the extracted expression flowing into the operation.
	ArgumentExpr string
	Risk         Risk
}
