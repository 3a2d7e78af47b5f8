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

package taint

import (
	"sync"

	"github.com/flowscope/flowscope/analysis/config"
	"github.com/flowscope/flowscope/analysis/store"
)

// cfgCache memoizes CFG construction across concurrent source searches.
// Every function's CFG is built at most once; a second requester blocks only
// while the first build of that same function is in flight. Entries are
// immutable once their ready channel is closed.
type cfgCache struct {
	cache *store.Cache
	log   *config.LogGroup

	mu      sync.Mutex
	entries map[funcKey]*cfgEntry
}

type cfgEntry struct {
	ready chan struct{}
	cfg   *CFG // nil when the function's CFG is unavailable
}

func newCFGCache(cache *store.Cache, log *config.LogGroup) *cfgCache {
	return &cfgCache{cache: cache, log: log, entries: map[funcKey]*cfgEntry{}}
}

// get returns the CFG for the function, building it on first request. A nil
// result means no usable CFG is recorded for the function.
func (c *cfgCache) get(key funcKey) *CFG {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		c.mu.Unlock()
		<-e.ready
		return e.cfg
	}
	e = &cfgEntry{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.cfg = buildCFG(c.cache, key)
	if e.cfg == nil {
		c.log.Debugf("no usable CFG for %s, treating as boundary", key)
	}
	close(e.ready)
	return e.cfg
}
