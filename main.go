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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/commands"
	"github.com/cybrota/avltree/session"
)

var version = "v0.1.0"

const asciiLogo = `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Height-balanced binary search tree with every classic traversal [Version: %s]
`

// app carries what every subcommand needs once flags are parsed
type app struct {
	configPath string
	logLevel   string

	config *Config
	log    zerolog.Logger
	styles *Styles
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.styles = NewStyles(detectTerminalMode())

	config, err := LoadConfig(a.configPath)
	level := config.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		a.log.Warn().Err(err).Msg("Failed to load configuration. Using default settings.")
	}
	a.config = config
	return nil
}

func (a *app) newSession() *session.Session {
	return session.New(a.config.SessionConfig(), a.log)
}

func (a *app) newManager() *commands.Manager {
	return commands.NewManager(commands.WithDefaultOrder(a.config.Traversal.DefaultOrder))
}

func (a *app) orderOrDefault(order string) string {
	if order == "" {
		return a.config.Traversal.DefaultOrder
	}
	return order
}

// listPrinter is satisfied by both avl.Tree and session.Session
type listPrinter interface {
	FprintAsList(w io.Writer, order string)
}

// printTraversals writes one traversal, or all four when order is "all".
func printTraversals(w io.Writer, p listPrinter, order string) {
	if strings.EqualFold(strings.TrimSpace(order), "all") {
		for _, o := range avl.Orders() {
			p.FprintAsList(w, o.String())
		}
		return
	}
	p.FprintAsList(w, order)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	logo := fmt.Sprintf(asciiLogo, version)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the insert, traverse, remove and lookup walkthrough",
		Long:  fmt.Sprintf("%s\n%s", logo, "Demo inserts the configured keys, prints every traversal, removes keys and probes membership"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout(), avl.New[int](), a.config.Demo)
			return nil
		},
	}

	var keys, removals []int
	var order string
	var draw bool
	var cmdTraverse = &cobra.Command{
		Use:   "traverse",
		Short: "Build a tree from --keys and print its traversals",
		Long:  fmt.Sprintf("%s\n%s", logo, `Traverse builds a tree from the given keys and prints one traversal, or "all"`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.newSession()
			s.Insert(keys...)
			s.Remove(removals...)

			out := cmd.OutOrStdout()
			printTraversals(out, s, a.orderOrDefault(order))
			if draw {
				fmt.Fprintln(out, s.String())
			}
			return nil
		},
	}
	cmdTraverse.Flags().IntSliceVar(&keys, "keys", nil, "keys to insert, comma separated")
	cmdTraverse.Flags().IntSliceVar(&removals, "remove", nil, "keys to remove after inserting")
	cmdTraverse.Flags().StringVar(&order, "order", "", "inorder, preorder, postorder, levelorder or all")
	cmdTraverse.Flags().BoolVar(&draw, "draw", false, "also draw the tree")

	var loadOrder string
	var showProgress, validate bool
	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Load keys from a file (\"-\" for stdin) and print a traversal",
		Long:  fmt.Sprintf("%s\n%s", logo, "Load reads integer keys separated by whitespace or commas; '#' starts a comment"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, size, err := openKeySource(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			var progress io.Writer
			if showProgress {
				progress = cmd.ErrOrStderr()
			}
			result, err := loadKeys(src, size, progress, a.log)
			if err != nil {
				return err
			}

			s := a.newSession()
			added := s.Insert(result.Keys...)
			a.log.Info().Str("source", args[0]).Int("keys", added).Msg("keys loaded")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded %d keys (%d duplicates, %d skipped tokens)\n",
				added, len(result.Keys)-added, result.Skipped)
			printTraversals(out, s, a.orderOrDefault(loadOrder))

			if validate {
				if err := s.Validate(); err != nil {
					return fmt.Errorf("tree failed validation: %w", err)
				}
			}
			return nil
		},
	}
	cmdLoad.Flags().StringVar(&loadOrder, "order", "", "inorder, preorder, postorder, levelorder or all")
	cmdLoad.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar while reading")
	cmdLoad.Flags().BoolVar(&validate, "validate", true, "check the tree invariants after loading")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", logo, "Shell keeps one tree alive across commands. Type help inside for the list"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(a.newSession(), a.newManager(), a.styles)
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  fmt.Sprintf("%s\n%s", logo, "Config prints the settings file, creating a default one if missing"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath, a.styles)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "avltree",
		Version:           version,
		Long:              logo,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the demo when no subcommand is provided
			return cmdDemo.RunE(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.avltree.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(cmdDemo, cmdTraverse, cmdLoad, cmdShell, cmdConfig, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
