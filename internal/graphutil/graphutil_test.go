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

package graphutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStronglyConnectedComponents(t *testing.T) {
	// a -> b -> c -> b, d isolated
	succs := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"b"},
	}
	sccs := StronglyConnectedComponents([]string{"a", "b", "c", "d"},
		func(n string) []string { return succs[n] })
	require.Len(t, sccs, 3)

	var cycle []string
	for _, scc := range sccs {
		if len(scc) == 2 {
			cycle = scc
		}
	}
	require.ElementsMatch(t, []string{"b", "c"}, cycle)
}

func TestRecursionSets(t *testing.T) {
	succs := map[string][]string{
		"a":    {"b"},
		"b":    {"c"},
		"c":    {"b"},
		"self": {"self"},
	}
	sets := RecursionSets([]string{"a", "b", "c", "self"},
		func(n string) []string { return succs[n] })

	require.NotContains(t, sets, "a")
	require.Contains(t, sets, "self")
	require.Contains(t, sets, "b")
	require.Contains(t, sets, "c")
	require.Equal(t, sets["b"], sets["c"])
	require.NotEqual(t, sets["b"], sets["self"])
}

func TestReachableFrom(t *testing.T) {
	g := DirectedFromEdges(
		[]int64{1, 2, 3, 4},
		[][2]int64{{1, 2}, {2, 3}, {4, 4}, {2, 2}},
	)
	reached := ReachableFrom(g, 1)
	require.True(t, reached[1])
	require.True(t, reached[2])
	require.True(t, reached[3])
	require.False(t, reached[4])

	require.Empty(t, ReachableFrom(g, 99))
}
