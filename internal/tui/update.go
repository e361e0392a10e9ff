package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"regtools/internal/envvars"
	"regtools/internal/model"
)

const restartNote = "Note: Some changes may require a system restart."

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.handle(msg)
	m.layout()
	return m, cmd
}

func (m AppModel) handle(msg tea.Msg) (AppModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Tables.Width = m.width()
		m.refreshTables()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.State = StateExit
			m.Transcript = []string{m.styles.Title.Render("Exiting program...")}
			return m, tea.Quit
		case tea.KeyEsc:
			// Abandon the current step.
			if m.State != StateMainMenu {
				m.enterMainMenu()
			}
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.Tables, cmd = m.Tables.Update(msg)
			return m, cmd
		case tea.KeyEnter:
			line := m.Input.Value()
			m.Transcript = append(m.Transcript, m.Input.Prompt+line)
			m.Input.SetValue("")
			return m.submit(line)
		}
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit applies one answered prompt and moves to the next state.
func (m AppModel) submit(line string) (AppModel, tea.Cmd) {
	switch m.State {
	case StateMainMenu:
		switch line {
		case "1":
			m.ask(StateUpdateScope, scopeMenu)
		case "2":
			m.ask(StateAddScope, scopeMenu)
		case "3":
			m.enterMainMenu()
		case "4":
			m.State = StateExit
			m.Transcript = append(m.Transcript, m.styles.Title.Render("Exiting program..."))
			return m, tea.Quit
		default:
			m.fail("Invalid selection")
		}

	case StateUpdateScope, StateAddScope:
		scope, ok := model.ParseScopeChoice(line)
		if !ok {
			m.fail("Invalid selection")
			break
		}
		m.scope = scope
		if m.State == StateUpdateScope {
			m.ask(StateUpdateIndex, "")
		} else {
			m.ask(StateAddName, "")
		}

	case StateUpdateIndex:
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.fail(model.IconError + " Invalid number")
			break
		}
		v, err := m.Snapshot.Target(index, m.scope)
		switch {
		case errors.Is(err, envvars.ErrScopeMismatch):
			m.fail(fmt.Sprintf("Selected variable is not a %s variable", m.scope))
		case err != nil:
			m.fail(model.IconError + " Invalid index")
		default:
			m.target = v
			m.ask(StateUpdateValue, "Current value: "+v.Value)
		}

	case StateUpdateValue:
		if _, err := m.Writer.Update(m.Snapshot, m.target.Index, m.scope, line); err != nil {
			m.fail("Error: "+err.Error(), model.IconError+" Failed to update variable")
			break
		}
		m.succeed(model.IconOK + " Variable updated successfully")

	case StateAddName:
		m.name = line
		m.ask(StateAddValue, "")

	case StateAddValue:
		if err := m.Writer.Add(m.name, line, m.scope); err != nil {
			m.fail("Error: "+err.Error(), model.IconError+" Failed to add variable")
			break
		}
		m.succeed(model.IconOK + " New variable added successfully")

	case StateResult:
		m.enterMainMenu()
	}
	return m, nil
}

// prompt returns the input label for a state.
func (m AppModel) prompt(s State) string {
	switch s {
	case StateMainMenu:
		return "Select an option (1-4): "
	case StateUpdateScope, StateAddScope:
		return "Select (1-2): "
	case StateUpdateIndex:
		return "Enter variable number to modify: "
	case StateUpdateValue:
		return fmt.Sprintf("Enter new value for '%s': ", m.target.Name)
	case StateAddName:
		return "Enter new variable name: "
	case StateAddValue:
		return "Enter variable value: "
	default:
		return "Press Enter to continue..."
	}
}

// ask prints an optional message and waits for the next answer.
func (m *AppModel) ask(s State, message string) {
	if message != "" {
		m.Transcript = append(m.Transcript, message)
	}
	m.State = s
	m.Input.Prompt = m.prompt(s)
}

func (m *AppModel) fail(lines ...string) {
	for _, l := range lines {
		m.Transcript = append(m.Transcript, m.styles.Error.Render(l))
	}
	m.ask(StateResult, "")
}

func (m *AppModel) succeed(message string) {
	m.Transcript = append(m.Transcript,
		m.styles.Success.Render(message),
		m.styles.Title.Render(restartNote))
	m.ask(StateResult, "")
}

// enterMainMenu rescans the registry so every index shown is current.
func (m *AppModel) enterMainMenu() {
	m.Snapshot = envvars.Scan(m.Registry)
	m.Transcript = nil
	m.target = model.Variable{}
	m.name = ""
	m.refreshTables()
	m.ask(StateMainMenu, "")
}

// layout gives the tables whatever rows the menu and prompt leave free.
func (m *AppModel) layout() {
	if m.WindowSize.Height <= 0 {
		return
	}
	h := m.WindowSize.Height - lipgloss.Height(m.footer()) - 1
	if h < 3 {
		h = 3
	}
	m.Tables.Height = h
	m.Tables.SetYOffset(m.Tables.YOffset)
}

func (m *AppModel) refreshTables() {
	m.Tables.SetContent(RenderSnapshot(m.Snapshot, m.width(), m.styles))
	m.Tables.GotoTop()
}
