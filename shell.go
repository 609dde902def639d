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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/commands"
	"github.com/cybrota/avltree/session"
)

const shellPrompt = "avl> "

// ShellModel is the Bubble Tea state of the interactive shell
type ShellModel struct {
	ready bool

	input      textinput.Model
	transcript viewport.Model

	// Data
	session *session.Session
	manager *commands.Manager

	// State
	lines      []string
	history    []string
	historyPos int

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

func InitialShellModel(s *session.Session, manager *commands.Manager, styles *Styles) ShellModel {
	ti := textinput.New()
	ti.Prompt = shellPrompt
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "insert 10 20 30, print levelorder, help..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	transcript := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := ShellModel{
		input:           ti,
		transcript:      transcript,
		session:         s,
		manager:         manager,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.appendLine(styles.Muted.Render("Type \"help\" for commands, \"quit\" to leave."))
	return m
}

// Init is called when the program starts
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.run(line)
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 8 {
		return "Terminal too small. Please resize your terminal."
	}

	box := m.styles.Frame.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf(" AVL shell (%d keys) ", m.session.Len())),
			m.transcript.View(),
		))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		box,
		m.input.View(),
		m.renderKeyHelp(),
	)
}

// run executes one command line and appends the outcome to the transcript.
func (m *ShellModel) run(line string) {
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	m.appendLine(m.styles.Prompt.Render(shellPrompt) + m.styles.Echo.Render(line))

	out, err := m.manager.Execute(m.session, line)
	if err != nil {
		m.appendLine(m.styles.Error.Render("error: " + err.Error()))
		return
	}

	// Help text is markdown
	if strings.HasPrefix(out, "# ") && m.glamourRenderer != nil {
		if rendered, rerr := m.glamourRenderer.Render(out); rerr == nil {
			out = strings.TrimRight(rendered, "\n")
		}
		m.appendLine(out)
		return
	}
	m.appendLine(m.styleOutput(out))
}

// successPrefixes mark command output that confirms a change or a check.
var successPrefixes = []string{"Inserted", "Removed", "Copied", "Tree cleared", "Tree is valid"}

// styleOutput colors confirmations and the unknown-order notice; other
// output is left as is.
func (m ShellModel) styleOutput(out string) string {
	if rest, ok := strings.CutPrefix(out, avl.UnknownOrderNotice); ok {
		return m.styles.Warning.Render(avl.UnknownOrderNotice) + rest
	}
	for _, prefix := range successPrefixes {
		if strings.HasPrefix(out, prefix) {
			return m.styles.Success.Render(out)
		}
	}
	return out
}

// recall walks the input history; stepping past the newest entry clears the input.
func (m *ShellModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}

	pos := m.historyPos + step
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(m.history):
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}

	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *ShellModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

func (m *ShellModel) updateLayout() {
	m.input.Width = max(m.width-len(shellPrompt)-2, 10)
	m.transcript.Width = max(m.width-4, 10)
	m.transcript.Height = max(m.height-7, 1)
	m.transcript.GotoBottom()
}

func (m ShellModel) renderKeyHelp() string {
	keys := []string{"enter", "up/down", "pgup/pgdown", "esc"}
	descs := []string{"run command", "history", "scroll", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runShell starts the interactive shell on the alternate screen
func runShell(s *session.Session, manager *commands.Manager, styles *Styles) error {
	program := tea.NewProgram(
		InitialShellModel(s, manager, styles),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
