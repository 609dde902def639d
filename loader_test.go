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
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKeys = "10, 20 30\n# header comment\n40 # trailing\nabc 50,,60\n"

func TestLoadKeys(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs)

	result, err := loadKeys(strings.NewReader(sampleKeys), int64(len(sampleKeys)), nil, log)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, result.Keys)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 4, result.Lines)
	assert.Contains(t, logs.String(), "skipping non-integer key")
	assert.Contains(t, logs.String(), `"token":"abc"`)
}

func TestLoadKeysLongLine(t *testing.T) {
	const count = 20000
	tokens := make([]string, count)
	for i := range count {
		tokens[i] = strconv.Itoa(i * 3)
	}
	// one comma separated line well past 64 KiB, with no trailing newline
	input := strings.Join(tokens, ",") + " # generated"
	require.Greater(t, len(input), 64*1024)

	result, err := loadKeys(strings.NewReader(input), int64(len(input)), nil, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, result.Keys, count)
	assert.Equal(t, 0, result.Keys[0])
	assert.Equal(t, (count-1)*3, result.Keys[count-1])
	assert.Equal(t, 1, result.Lines)
	assert.Zero(t, result.Skipped)
}

func TestLoadKeysEmpty(t *testing.T) {
	result, err := loadKeys(strings.NewReader(""), 0, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.Keys)
	assert.Zero(t, result.Skipped)
}

func TestLoadKeysWithProgress(t *testing.T) {
	var progress bytes.Buffer

	result, err := loadKeys(strings.NewReader(sampleKeys), int64(len(sampleKeys)), &progress, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, result.Keys, 6)
	assert.NotEmpty(t, progress.String())
}

func TestOpenKeySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleKeys), 0644))

	src, size, err := openKeySource(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, int64(len(sampleKeys)), size)
	data, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, sampleKeys, string(data))

	_, size, err = openKeySource("-")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), size)

	_, _, err = openKeySource(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
