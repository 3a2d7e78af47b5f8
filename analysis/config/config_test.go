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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "log-level: 4\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxBlocksPerSource, cfg.MaxBlocksPerSource)
	require.Equal(t, DefaultGlobalBlockCeiling, cfg.GlobalBlockCeiling)
	require.Equal(t, DefaultMaxCallDepth, cfg.MaxCallDepth)
	require.Equal(t, int(DebugLevel), cfg.LogLevel)
	require.Equal(t, path, cfg.SourceFile())
}

func TestLoadReadsSanitizers(t *testing.T) {
	path := writeConfig(t, `
max-blocks-per-source: 64
sanitizers:
  - callee: escape_html
    neutralizes: [reflected-output]
  - callee: shlex.quote
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.MaxBlocksPerSource)
	require.Len(t, cfg.Sanitizers, 2)
	require.Equal(t, "escape_html", cfg.Sanitizers[0].Callee)
	require.Equal(t, []string{"reflected-output"}, cfg.Sanitizers[0].Neutralizes)
	require.Empty(t, cfg.Sanitizers[1].Neutralizes)
}

func TestLoadRejectsSanitizerWithoutCallee(t *testing.T) {
	path := writeConfig(t, "sanitizers:\n  - neutralizes: [sql-injection]\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNumWorkersFloor(t *testing.T) {
	cfg := NewDefault()
	cfg.Workers = -3
	require.GreaterOrEqual(t, cfg.NumWorkers(), 1)
	cfg.Workers = 7
	require.Equal(t, 7, cfg.NumWorkers())
}

func TestSilenceWarnDropsLevel(t *testing.T) {
	cfg := NewDefault()
	cfg.SilenceWarn = true
	l := NewLogGroup(cfg)
	require.False(t, l.LogsDebug())
}
