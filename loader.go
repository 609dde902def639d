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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// LoadResult is what a key file produced
type LoadResult struct {
	Keys    []int
	Skipped int
	Lines   int
}

// openKeySource opens path for reading. "-" means stdin, whose size is unknown (-1).
func openKeySource(path string) (io.ReadCloser, int64, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), -1, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open key file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat key file: %w", err)
	}
	return f, info.Size(), nil
}

func isKeySeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// loadKeys reads integer keys separated by whitespace or commas. Text after
// '#' on a line is ignored. Tokens that are not integers are skipped with a
// warning. When progress is non-nil a byte progress bar is drawn to it.
func loadKeys(r io.Reader, size int64, progress io.Writer, log zerolog.Logger) (LoadResult, error) {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Loading keys..."),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(0),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
		r = io.TeeReader(r, bar)
	}

	var result LoadResult
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			result.Lines++
			result.parseLine(line, log)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read keys: %w", err)
		}
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			log.Debug().Err(err).Msg("progress bar did not finish cleanly")
		}
	}

	log.Debug().Int("keys", len(result.Keys)).Int("skipped", result.Skipped).Msg("key file loaded")
	return result, nil
}

// parseLine collects the keys on one line of any length.
func (result *LoadResult) parseLine(line string, log zerolog.Logger) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	for _, token := range strings.FieldsFunc(line, isKeySeparator) {
		key, err := strconv.Atoi(token)
		if err != nil {
			result.Skipped++
			log.Warn().Int("line", result.Lines).Str("token", token).Msg("skipping non-integer key")
			continue
		}
		result.Keys = append(result.Keys, key)
	}
}
