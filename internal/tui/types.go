package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateEditor
	StateHistory
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	online  bool
	client  *APIClient
	welcome *Welcome
	editor  *EditorModel
	history *HistoryModel
}

// interpreted reply from POST /generate-code
type GenerateResult struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
	Resources   any    `json:"resources"`
}

// one row of GET /history
type HistoryRecord struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// prompt input and rendered result
type EditorModel struct {
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer
	client     *APIClient
	width      int
	height     int
	lastPrompt string
	result     *GenerateResult
	errText    string
	isFetching bool
}

// browsable list of stored exchanges
type HistoryModel struct {
	client   *APIClient
	records  []HistoryRecord
	cursor   int
	loading  bool
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
}

// welcome screen model
type Welcome struct {
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to switch screens
type EnterEditorMsg struct{}
type EnterHistoryMsg struct{}

// sent when a generate request completes
type GenerateResultMsg struct {
	prompt string
	result GenerateResult
}

// sent when a generate request fails
type GenerateErrorMsg struct {
	prompt string
	err    error
}

type HistoryLoadedMsg struct {
	records []HistoryRecord
}

type HistoryDeletedMsg struct {
	id int64
}

// result of a /check-connection probe
type ConnectionMsg struct {
	online bool
}

// fires the next connection probe
type connectionTickMsg struct{}
