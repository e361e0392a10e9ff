// Package tui is the interactive console of the environment variable manager.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"regtools/internal/console"
	"regtools/internal/envvars"
	"regtools/internal/model"
	"regtools/internal/winreg"
)

// State is a step of the menu conversation.
type State int

const (
	StateMainMenu State = iota
	StateUpdateScope
	StateUpdateIndex
	StateUpdateValue
	StateAddScope
	StateAddName
	StateAddValue
	StateResult
	StateExit
)

// AppModel holds the console state.
type AppModel struct {
	// Data
	Registry winreg.Registry
	Writer   *envvars.Writer
	Snapshot envvars.Snapshot // rescanned on every return to the main menu

	// Conversation
	State      State
	Input      textinput.Model
	Transcript []string // prompts answered and messages since the menu was shown
	scope      model.Scope
	target     model.Variable
	name       string

	// Components
	Tables     viewport.Model
	WindowSize tea.WindowSizeMsg
	styles     Styles
}

// InitialModel scans the registry and shows the main menu.
func InitialModel(reg winreg.Registry, w *envvars.Writer) AppModel {
	ti := textinput.New()
	ti.Focus()

	m := AppModel{
		Registry: reg,
		Writer:   w,
		Input:    ti,
		Tables:   viewport.New(console.MinWidth, 0),
		styles:   DefaultStyles(),
	}
	m.enterMainMenu()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AppModel) width() int {
	return console.Floor(m.WindowSize.Width)
}
