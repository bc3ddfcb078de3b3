package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"warranty-tui/api"
	"warranty-tui/model"
	"warranty-tui/session"
)

func main() {
	apiURL := flag.String("api", "", "Backend base URL (defaults to WARRANTY_API_URL)")
	statePath := flag.String("state", "", "State directory for session and downloads (defaults to WARRANTY_STATE_DIR)")
	flag.Parse()

	_ = godotenv.Load() // .env is optional

	base := *apiURL
	if base == "" {
		base = os.Getenv("WARRANTY_API_URL")
	}
	if base == "" {
		base = "http://localhost:8080"
	}

	stateDir := *statePath
	if stateDir == "" {
		stateDir = os.Getenv("WARRANTY_STATE_DIR")
	}
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot resolve home directory: %v\n", err)
			os.Exit(1)
		}
		stateDir = filepath.Join(home, ".warranty-tui")
	}

	sess, err := session.Open(filepath.Join(stateDir, "session.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so debug output goes to a file when asked for.
	if os.Getenv("WARRANTY_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(stateDir, "debug.log"), "debug")
		if err == nil {
			defer f.Close()
		}
	}

	client := api.New(base, sess)
	m := model.New(&model.Deps{
		API:      client,
		Session:  sess,
		DataPath: stateDir,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
