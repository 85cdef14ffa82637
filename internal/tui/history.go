package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rows reserved for the list above the detail pane
const historyListHeight = 10

func NewHistory(client *APIClient) *HistoryModel {
	return &HistoryModel{
		client:   client,
		viewport: viewport.New(80, 10),
	}
}

// starts a fresh load of the history list
func (m *HistoryModel) Load() tea.Cmd {
	m.loading = true
	return m.client.HistoryCmd()
}

func (m *HistoryModel) selected() (HistoryRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return HistoryRecord{}, false
	}

	return m.records[m.cursor], true
}

func (m *HistoryModel) Update(msg tea.Msg) (*HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetails()
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
				m.refreshDetails()
			}
		case "d", "delete":
			if record, ok := m.selected(); ok {
				return m, m.client.DeleteHistoryCmd(record.ID)
			}
		case "r":
			return m, m.Load()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case HistoryLoadedMsg:
		m.loading = false
		m.records = msg.records
		m.cursor = min(m.cursor, max(0, len(m.records)-1))
		m.refreshDetails()

	case HistoryDeletedMsg:
		m.removeRecord(msg.id)
		m.refreshDetails()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(10, msg.Width-4)
		m.viewport.Height = max(5, msg.Height-historyListHeight-6)
		m.renderer = newRenderer(m.viewport.Width)
		m.refreshDetails()
	}

	return m, nil
}

func (m *HistoryModel) removeRecord(id int64) {
	for i, record := range m.records {
		if record.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}

	m.cursor = min(m.cursor, max(0, len(m.records)-1))
}

func (m *HistoryModel) refreshDetails() {
	record, ok := m.selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	m.viewport.SetContent(render(m.renderer, resultMarkdown(record.Prompt, storedResult(record.Response))))
	m.viewport.GotoTop()
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("HISTORY")
	help := helpStyle.UnsetMarginTop().Render("[up/down: select] [d: delete] [r: reload] [esc: back]")
	b.WriteString(header + "  " + help)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(infoStyle.Render("loading..."))
		return b.String()
	case len(m.records) == 0:
		b.WriteString(infoStyle.Render("history is empty"))
		return b.String()
	}

	// keep the cursor inside the visible window
	start := max(0, m.cursor-historyListHeight+1)
	end := min(len(m.records), start+historyListHeight)

	for i := start; i < end; i++ {
		record := m.records[i]
		line := fmt.Sprintf("%s  %s", record.CreatedAt.Local().Format("2006-01-02 15:04"), firstLine(record.Prompt))

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(promptStyle.Render("  " + line))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boxStyle.Width(max(10, m.width-4)).Render(m.viewport.View()))

	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}

	return s
}
