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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/session"
)

const configFileName = ".avltree.yaml"

type TraversalConfig struct {
	DefaultOrder string `yaml:"default_order"`
}

type DemoConfig struct {
	Insert []int `yaml:"insert"`
	Remove []int `yaml:"remove"`
	Probe  []int `yaml:"probe"`
}

type MembershipConfig struct {
	FilterBits   uint    `yaml:"filter_bits"`
	FilterHashes uint    `yaml:"filter_hashes"`
	RebuildRatio float64 `yaml:"rebuild_ratio"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Traversal  TraversalConfig  `yaml:"traversal"`
	Demo       DemoConfig       `yaml:"demo"`
	Membership MembershipConfig `yaml:"membership"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
}

var defaultConfig = Config{
	Traversal: TraversalConfig{
		DefaultOrder: "inorder",
	},
	Demo: DemoConfig{
		Insert: []int{10, 20, 30, 40, 50, 25},
		Remove: []int{30},
		Probe:  []int{25, 30},
	},
	Membership: MembershipConfig{
		FilterBits:   session.DefaultConfig().FilterBits,
		FilterHashes: session.DefaultConfig().FilterHashes,
		RebuildRatio: session.DefaultConfig().RebuildRatio,
	},
	Cache: CacheConfig{
		Expiration: session.DefaultConfig().CacheExpiration,
		Cleanup:    session.DefaultConfig().CacheCleanup,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	c := defaultConfig
	c.Demo.Insert = slices.Clone(defaultConfig.Demo.Insert)
	c.Demo.Remove = slices.Clone(defaultConfig.Demo.Remove)
	c.Demo.Probe = slices.Clone(defaultConfig.Demo.Probe)
	return &c
}

// LoadConfig reads path, or ~/.avltree.yaml when path is empty. A missing
// file yields the defaults. Any other failure yields the defaults together
// with the error so callers can warn and carry on.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := avl.ParseOrder(config.Traversal.DefaultOrder); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid traversal.default_order in %s: %w", path, err)
	}

	return config, nil
}

// SessionConfig maps the membership and cache sections onto session settings.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		FilterBits:      c.Membership.FilterBits,
		FilterHashes:    c.Membership.FilterHashes,
		RebuildRatio:    c.Membership.RebuildRatio,
		CacheExpiration: c.Cache.Expiration,
		CacheCleanup:    c.Cache.Cleanup,
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating a default
// file first when none exists at path.
func displaySettings(w io.Writer, path string, styles *Styles) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Title.Render("avltree configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprint(w, string(data))

	fmt.Fprintf(w, "\n%s\n", styles.Muted.Render(
		"Change traversal.default_order to one of inorder, preorder, postorder, levelorder."))
	return nil
}
