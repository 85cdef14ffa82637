package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// how often the connection badge is refreshed
const connectionCheckInterval = 5 * time.Second

func NewApp(client *APIClient) *Model {
	return &Model{
		state:   StateWelcome,
		client:  client,
		welcome: NewWelcome(),
		editor:  NewEditor(client),
		history: NewHistory(client),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.client.CheckConnectionCmd()
}

func scheduleConnectionCheck() tea.Cmd {
	return tea.Tick(connectionCheckInterval, func(time.Time) tea.Msg {
		return connectionTickMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// any key dismisses an error
		if m.err != nil {
			m.err = nil
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			if m.state == StateWelcome {
				return m, tea.Quit
			}

			m.state = StateWelcome
			return m, nil

		case "esc":
			if m.state != StateWelcome {
				m.state = StateWelcome
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor, _ = m.editor.Update(msg)
		m.history, _ = m.history.Update(msg)
		return m, nil

	case ConnectionMsg:
		m.online = msg.online
		return m, scheduleConnectionCheck()

	case connectionTickMsg:
		return m, m.client.CheckConnectionCmd()

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterEditorMsg:
		m.state = StateEditor
		return m, m.editor.Init()

	case EnterHistoryMsg:
		m.state = StateHistory
		return m, m.history.Load()

	case GenerateResultMsg, GenerateErrorMsg, spinner.TickMsg:
		// results land in the editor even if the user navigated away
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case HistoryLoadedMsg, HistoryDeletedMsg:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd

	switch m.state {
	case StateWelcome:
		m.welcome, cmd = m.welcome.Update(msg)
	case StateEditor:
		m.editor, cmd = m.editor.Update(msg)
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateEditor:
		return m.editor.View(m.online)
	case StateHistory:
		return m.history.View()
	default:
		return m.welcome.View(m.online, m.client.Endpoint())
	}
}

func errorView(err error) string {
	return fmt.Sprintf("\n  %s\n\n  %s\n", errorStyle.Render("error: "+err.Error()), helpStyle.Render("press any key to continue"))
}
