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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
}

// paletteFor picks darker colors on light terminals for contrast.
func paletteFor(mode TerminalMode) Palette {
	if mode == TerminalModeLight {
		return Palette{
			Primary: lipgloss.Color("4"),
			Accent:  lipgloss.Color("5"),
			Success: lipgloss.Color("2"),
			Warning: lipgloss.Color("3"),
			Error:   lipgloss.Color("1"),
			Border:  lipgloss.Color("8"),
			Muted:   lipgloss.Color("240"),
		}
	}
	return Palette{
		Primary: lipgloss.Color("39"),
		Accent:  lipgloss.Color("205"),
		Success: lipgloss.Color("46"),
		Warning: lipgloss.Color("11"),
		Error:   lipgloss.Color("196"),
		Border:  lipgloss.Color("62"),
		Muted:   lipgloss.Color("243"),
	}
}

// Styles holds all the styling for the application
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Echo     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Muted    lipgloss.Style
	Frame    lipgloss.Style
}

func NewStyles(mode TerminalMode) *Styles {
	p := paletteFor(mode)
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Echo:    lipgloss.NewStyle().Foreground(p.Primary),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Muted),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
	}
}
