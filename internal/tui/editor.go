package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rows used by the header, input box and status line
const editorChromeHeight = 8

// returns a new prompt editor
func NewEditor(client *APIClient) *EditorModel {
	ti := textinput.New()
	ti.Placeholder = "describe the code you need..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGray)

	return &EditorModel{
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		client:   client,
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (*EditorModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			prompt := strings.TrimSpace(m.input.Value())
			if prompt == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.lastPrompt = prompt
			m.errText = ""
			m.input.SetValue("")

			return m, tea.Batch(m.client.GenerateCmd(prompt), m.spinner.Tick)

		case "ctrl+l":
			m.input.SetValue("")
			m.result = nil
			m.errText = ""
			m.lastPrompt = ""
			m.refreshViewport()
			return m, nil

		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case GenerateResultMsg:
		m.isFetching = false
		m.result = &msg.result
		m.lastPrompt = msg.prompt
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case GenerateErrorMsg:
		m.isFetching = false
		m.result = nil
		m.errText = msg.err.Error()
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-10)
		m.viewport.Width = max(10, msg.Width-4)
		m.viewport.Height = max(5, msg.Height-editorChromeHeight)
		m.renderer = newRenderer(m.viewport.Width)
		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *EditorModel) refreshViewport() {
	switch {
	case m.errText != "":
		m.viewport.SetContent(errorStyle.Render("error: " + m.errText))
	case m.result != nil:
		m.viewport.SetContent(render(m.renderer, resultMarkdown(m.lastPrompt, *m.result)))
	default:
		m.viewport.SetContent(infoStyle.Render("ready! type what the code should do and press enter."))
	}

	m.viewport.GotoTop()
}

func (m *EditorModel) View(online bool) string {
	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("EDITOR")
	help := helpStyle.UnsetMarginTop().Render("[enter: send] [ctrl+l: clear] [pgup/pgdown: scroll] [esc: back]")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, header, "  ", connectionBadge(online), "  ", help))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Width(max(10, m.width-4)).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(boxStyle.Width(max(10, m.width-4)).Padding(0, 1).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(m.spinner.View() + infoStyle.Render(" generating..."))
	}

	return b.String()
}
