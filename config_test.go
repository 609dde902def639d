// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
traversal:
  default_order: levelorder
cache:
  expiration: 30s
demo:
  insert: [3, 1, 2]
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "levelorder", config.Traversal.DefaultOrder)
	assert.Equal(t, 30*time.Second, config.Cache.Expiration)
	assert.Equal(t, []int{3, 1, 2}, config.Demo.Insert)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Cache.Cleanup, config.Cache.Cleanup)
	assert.Equal(t, defaults.Demo.Remove, config.Demo.Remove)
	assert.Equal(t, defaults.Membership, config.Membership)
	assert.Equal(t, "info", config.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "traversal: [unclosed"},
		{"wrong type", "demo:\n  insert: nope\n"},
		{"unknown order", "traversal:\n  default_order: sideways\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), config, "failures fall back to defaults")
		})
	}

	_, err := LoadConfig(writeConfig(t, "traversal:\n  default_order: sideways\n"))
	assert.ErrorIs(t, err, avl.ErrUnknownOrder)
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestDefaultConfigIsACopy(t *testing.T) {
	a := DefaultConfig()
	a.Demo.Insert[0] = 999
	a.Traversal.DefaultOrder = "preorder"

	b := DefaultConfig()
	assert.Equal(t, 10, b.Demo.Insert[0])
	assert.Equal(t, "inorder", b.Traversal.DefaultOrder)
}

func TestSessionConfig(t *testing.T) {
	config := DefaultConfig()
	config.Membership.FilterBits = 1024
	config.Cache.Expiration = time.Minute

	got := config.SessionConfig()
	assert.Equal(t, session.Config{
		FilterBits:      1024,
		FilterHashes:    session.DefaultConfig().FilterHashes,
		RebuildRatio:    session.DefaultConfig().RebuildRatio,
		CacheExpiration: time.Minute,
		CacheCleanup:    session.DefaultConfig().CacheCleanup,
	}, got)
}

func TestDisplaySettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	styles := NewStyles(TerminalModeDark)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path, styles))
	assert.Contains(t, out.String(), "(newly created)")
	assert.Contains(t, out.String(), "default_order: inorder")
	assert.FileExists(t, path)

	out.Reset()
	require.NoError(t, displaySettings(&out, path, styles))
	assert.NotContains(t, out.String(), "(newly created)")
}
