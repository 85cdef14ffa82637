package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome() *Welcome {
	return &Welcome{
		commands: []Command{
			{Name: "editor", Description: "ask for code"},
			{Name: "history", Description: "browse and delete past requests"},
			{Name: "quit", Description: "exit codegen"},
		},
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand()
			m.input = ""
			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	}

	return m, nil
}

func (m *Welcome) View(online bool, endpoint string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("describe the code you need, get it back with an explanation"))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("server: " + endpoint))
	b.WriteString("  ")
	b.WriteString(connectionBadge(online))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		fmt.Fprintf(&b, "  %s %s\n",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + inputStyle.Render(m.input+"_"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)

	switch cmd {
	case "quit", "q":
		return tea.Quit

	case "editor", "e":
		return func() tea.Msg { return EnterEditorMsg{} }

	case "history", "h":
		return func() tea.Msg { return EnterHistoryMsg{} }

	case "":
		return nil
	}

	return func() tea.Msg {
		return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
	}
}
