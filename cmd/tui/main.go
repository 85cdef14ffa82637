package main

import (
	"flag"
	"fmt"
	"os"

	"codeberg.org/codegen/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

func main() {
	endpoint := flag.String("endpoint", "", "codegen server URL (default $CODEGEN_API_ENDPOINT or http://127.0.0.1:8000)")
	flag.Parse()

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "codegen-tui needs an interactive terminal")
		os.Exit(1)
	}

	app := tui.NewApp(tui.NewAPIClient(*endpoint))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running codegen-tui: %v\n", err)
		os.Exit(1)
	}
}
