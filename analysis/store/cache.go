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

import (
	"time"

	"zombiezen.com/go/sqlite"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/internal/funcutil"
)

// Cache holds the entire relational store in memory. It is safe for
// concurrent reads once Load has returned successfully; it must never be
// mutated afterwards.
type Cache struct {
	log    *config.LogGroup
	loaded bool
	tables tables
}

// NewCache returns an empty cache. It is unusable until Load succeeds.
func NewCache(log *config.LogGroup) *Cache {
	return &Cache{log: log}
}

// Load reads every registered table through the connection, in full, exactly
// once. On any failure the cache is reset so that no table is queryable.
// Calling Load twice is a programming error and panics.
func (c *Cache) Load(conn *sqlite.Conn) error {
	if c.loaded {
		panic("store: cache loaded twice")
	}
	start := time.Now()
	if err := c.tables.load(conn); err != nil {
		c.tables = tables{}
		return err
	}
	c.loaded = true
	if c.log != nil {
		c.log.Infof("cache loaded in %s", time.Since(start))
		if c.log.LogsDebug() {
			sizes := c.tables.sizes()
			for _, name := range funcutil.SetToOrderedSlice(trueKeys(sizes)) {
				c.log.Debugf("  %-24s %d rows", name, sizes[name])
			}
		}
	}
	return nil
}

// Loaded reports whether Load has completed successfully.
func (c *Cache) Loaded() bool { return c.loaded }

func (c *Cache) mustBeLoaded() {
	if !c.loaded {
		panic("store: cache used before Load")
	}
}

func trueKeys(m map[string]int) map[string]bool {
	set := make(map[string]bool, len(m))
	for k := range m {
		set[k] = true
	}
	return set
}
