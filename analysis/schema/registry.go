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

import "fmt"

// Registry is the catalog of table definitions. All consumers share the
// default registry populated in tables.go; separate registries exist only in
// tests.
type Registry struct {
	tables map[string]*TableDef
	order  []string
	sealed bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: map[string]*TableDef{}}
}

// Register adds a table definition. It returns a *SpecError when the
// definition is self-inconsistent or when the name collides with an already
// registered table.
func (r *Registry) Register(def *TableDef) error {
	if r.sealed {
		return &SpecError{Table: def.Name, Reason: "registry is sealed, definitions are immutable after validation"}
	}
	if err := def.validate(); err != nil {
		return err
	}
	if _, dup := r.tables[def.Name]; dup {
		return &SpecError{Table: def.Name, Reason: "duplicate table name"}
	}
	r.tables[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister registers a definition and panics on error. Used for the
// static catalog, where a bad definition is a programming error.
func (r *Registry) MustRegister(def *TableDef) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Validate runs the cross-table checks (every foreign-key target table and
// column must be registered) and seals the registry. It must be called once
// after all registrations and before the registry is used to build queries
// or load a cache.
func (r *Registry) Validate() error {
	for _, def := range r.tables {
		for _, fk := range def.ForeignKeys {
			target, ok := r.tables[fk.TargetTable]
			if !ok {
				return &SpecError{Table: def.Name, Reason: fmt.Sprintf("foreign key targets unregistered table %q", fk.TargetTable)}
			}
			for _, col := range fk.TargetColumns {
				if _, ok := target.Column(col); !ok {
					return &SpecError{Table: def.Name, Reason: fmt.Sprintf(
						"foreign key targets column %q absent from table %q", col, fk.TargetTable)}
				}
			}
		}
	}
	r.sealed = true
	return nil
}

// Table returns the definition of the named table, or nil when the table is
// not registered.
func (r *Registry) Table(name string) *TableDef {
	return r.tables[name]
}

// Tables returns all registered definitions in registration order. Code
// generation iterates this, so the order is part of the generated output.
func (r *Registry) Tables() []*TableDef {
	defs := make([]*TableDef, len(r.order))
	for i, n := range r.order {
		defs[i] = r.tables[n]
	}
	return defs
}

// Default is the registry holding the full table catalog. It is populated
// and validated in tables.go at init time.
var Default = NewRegistry()
