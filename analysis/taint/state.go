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

// varKey is a scope-qualified variable: the same identifier in two functions
// is two distinct keys, so taint never bleeds across scopes by name.
type varKey struct {
	File     string
	Function string
	Var      string
}

// varLabel tracks one variable along one path of the search.
type varLabel struct {
	tainted  bool
	allClean bool
	clean    map[string]bool
}

func (l *varLabel) cleanFor(category string) bool {
	return l.allClean || l.clean[category]
}

// live reports whether the label carries taint some sink category must treat
// as reaching.
func (l *varLabel) live() bool { return l.tainted && !l.allClean }

func (l *varLabel) clone() *varLabel {
	c := &varLabel{tainted: l.tainted, allClean: l.allClean}
	if l.clean != nil {
		c.clean = make(map[string]bool, len(l.clean))
		for k := range l.clean {
			c.clean[k] = true
		}
	}
	return c
}

// TaintState is the label map of one path through the search. States flow
// along CFG edges and merge at join blocks: taint survives any path into the
// join, sanitization only survives all of them.
type TaintState struct {
	labels map[varKey]*varLabel
}

func newTaintState() *TaintState {
	return &TaintState{labels: map[varKey]*varLabel{}}
}

// Clone returns an independent copy.
func (s *TaintState) Clone() *TaintState {
	c := newTaintState()
	for k, l := range s.labels {
		c.labels[k] = l.clone()
	}
	return c
}

func (s *TaintState) label(k varKey) *varLabel {
	l, ok := s.labels[k]
	if !ok {
		l = &varLabel{}
		s.labels[k] = l
	}
	return l
}

// Taint marks the variable tainted and discards any sanitized status it had:
// the variable now holds a value the sanitizer never saw.
func (s *TaintState) Taint(k varKey) {
	s.labels[k] = &varLabel{tainted: true}
}

// Sanitize marks the variable clean for the given sink categories; an empty
// list neutralizes every category.
func (s *TaintState) Sanitize(k varKey, categories []string) {
	l := s.label(k)
	if len(categories) == 0 {
		l.allClean = true
		l.clean = nil
		return
	}
	if l.clean == nil {
		l.clean = map[string]bool{}
	}
	for _, c := range categories {
		l.clean[c] = true
	}
}

// TaintedFor reports whether the variable carries taint that a sink of the
// given category must treat as live.
func (s *TaintState) TaintedFor(k varKey, category string) bool {
	l, ok := s.labels[k]
	return ok && l.tainted && !l.cleanFor(category)
}

// TaintedAny reports whether the variable carries taint for at least one
// category.
func (s *TaintState) TaintedAny(k varKey) bool {
	l, ok := s.labels[k]
	return ok && l.live()
}

// PropagateInto flows the right-hand-side labels of an assignment into its
// target. The target becomes tainted when any contributor carries live
// taint; it stays clean for a category only when every live contributor is
// clean for it. An assignment with no live contributor leaves the target
// untouched: constants and unextracted expressions never launder taint away.
func (s *TaintState) PropagateInto(to varKey, froms []varKey) {
	var live []*varLabel
	for _, f := range froms {
		if l, ok := s.labels[f]; ok && l.live() {
			live = append(live, l)
		}
	}
	if len(live) == 0 {
		return
	}
	nl := &varLabel{tainted: true}
	for c := range live[0].clean {
		all := true
		for _, l := range live[1:] {
			if !l.cleanFor(c) {
				all = false
				break
			}
		}
		if all {
			if nl.clean == nil {
				nl.clean = map[string]bool{}
			}
			nl.clean[c] = true
		}
	}
	s.labels[to] = nl
}

// MergeFrom merges another path's state into this one at a CFG join: taint
// is unioned, sanitized status survives only when present on both paths. A
// variable untouched on the other path was not sanitized there, so its
// sanitized status drops. It reports whether this state changed, which is
// the worklist's fixpoint test; changes are monotone (taint grows, clean
// shrinks), so the fixpoint is reached in finitely many merges.
func (s *TaintState) MergeFrom(o *TaintState) bool {
	changed := false
	for k, ol := range o.labels {
		l, ok := s.labels[k]
		if !ok {
			s.labels[k] = ol.clone()
			changed = true
			continue
		}
		if ol.tainted && !l.tainted {
			l.tainted = true
			changed = true
		}
		if l.allClean && !ol.allClean {
			l.allClean = false
			l.clean = nil
			for c := range ol.clean {
				if l.clean == nil {
					l.clean = map[string]bool{}
				}
				l.clean[c] = true
			}
			changed = true
			continue
		}
		if ol.allClean {
			continue
		}
		for c := range l.clean {
			if !ol.clean[c] {
				delete(l.clean, c)
				changed = true
			}
		}
	}
	for k, l := range s.labels {
		if _, ok := o.labels[k]; ok {
			continue
		}
		if l.allClean || len(l.clean) > 0 {
			l.allClean = false
			l.clean = nil
			changed = true
		}
	}
	return changed
}
