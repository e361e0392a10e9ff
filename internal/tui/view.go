package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"regtools/internal/console"
	"regtools/internal/envvars"
	"regtools/internal/model"
)

const (
	separatorWidth = 50
	// spacingWidth covers the index column and the two " | " separators.
	spacingWidth  = 15
	minValueWidth = 10
	ellipsis      = "..."
)

// Styles colours the console output.
type Styles struct {
	Title   lipgloss.Style
	Index   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles is the colour scheme of the interactive tool.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
		Index:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")), // White
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // Red
	}
}

// PlainStyles renders without any escape codes.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Index: s, Key: s, Value: s, Success: s, Error: s}
}

// ValueWidth is the room left for the value column at a given terminal width.
func ValueWidth(termWidth, keyWidth int) int {
	w := (console.Floor(termWidth) - keyWidth - spacingWidth) / 2
	if w < minValueWidth {
		return minValueWidth
	}
	return w
}

// FormatVariables renders one "index | name | value" line per variable.
func FormatVariables(vars []model.Variable, termWidth int, st Styles) []string {
	if len(vars) == 0 {
		return nil
	}
	keyWidth := 0
	for _, v := range vars {
		if w := runewidth.StringWidth(v.Name); w > keyWidth {
			keyWidth = w
		}
	}
	valueWidth := ValueWidth(termWidth, keyWidth)

	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("%s | %s | %s",
			st.Index.Render(fmt.Sprintf("%3d", v.Index)),
			st.Key.Render(runewidth.FillRight(v.Name, keyWidth)),
			st.Value.Render(runewidth.Truncate(v.Value, valueWidth, ellipsis)),
		))
	}
	return lines
}

// RenderScope writes the titled table of one scope.
func RenderScope(b *strings.Builder, snap envvars.Snapshot, scope model.Scope, termWidth int, st Styles) {
	b.WriteString("\n" + st.Title.Render(scope.Title()+":") + "\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	if err := snap.Err(scope); err != nil {
		b.WriteString(st.Error.Render("Registry access error: "+err.Error()) + "\n")
	}
	lines := FormatVariables(snap.Variables(scope), termWidth, st)
	if len(lines) == 0 {
		b.WriteString(st.Error.Render(fmt.Sprintf("No %s variables found.", scope)) + "\n")
		return
	}
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
}

// RenderSnapshot renders the banner and both scope tables.
func RenderSnapshot(snap envvars.Snapshot, termWidth int, st Styles) string {
	var b strings.Builder
	rule := strings.Repeat("=", separatorWidth)
	b.WriteString(rule + "\n")
	b.WriteString(st.Title.Render("Environment Variable Manager") + "\n")
	b.WriteString(rule + "\n")
	for _, scope := range model.Scopes {
		RenderScope(&b, snap, scope, termWidth, st)
	}
	return b.String()
}

var menuOptions = []string{
	"Update variable",
	"Add new variable",
	"Refresh",
	"Exit",
}

func renderMenu(st Styles) string {
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", separatorWidth) + "\n")
	b.WriteString(st.Title.Render("OPERATIONS:") + "\n")
	for i, o := range menuOptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o)
	}
	return b.String()
}

const scopeMenu = "\nSelect variable type:\n1. System variable\n2. User variable"

func (m AppModel) footer() string {
	var b strings.Builder
	b.WriteString(renderMenu(m.styles))
	for _, l := range m.Transcript {
		b.WriteString(l + "\n")
	}
	b.WriteString(m.Input.View())
	return b.String()
}

// View renders the tables, the menu, the conversation so far and the active prompt.
func (m AppModel) View() string {
	if m.State == StateExit {
		return strings.Join(m.Transcript, "\n") + "\n"
	}

	var tables string
	if m.WindowSize.Height > 0 {
		// Sized by layout; PgUp/PgDn scroll it.
		tables = m.Tables.View()
	} else {
		tables = RenderSnapshot(m.Snapshot, m.width(), m.styles)
	}
	return tables + m.footer() + "\n"
}
