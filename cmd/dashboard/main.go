package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
	"github.com/healthhub/gym-admin/internal/dashboard/credential"
	"github.com/healthhub/gym-admin/internal/dashboard/guard"
	"github.com/healthhub/gym-admin/internal/dashboard/session"
	"github.com/healthhub/gym-admin/internal/dashboard/tui"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("gym-admin dashboard " + version)
			return nil
		case "--help", "help", "-h":
			printHelp()
			return nil
		}
	}

	apiURL := os.Getenv("GYM_ADMIN_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:10000"
	}

	creds, err := credential.NewFileStore()
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	client := apiclient.New(apiURL, creds)
	sessions := session.NewStore()
	g := guard.New(creds, sessions, client)

	app := tui.NewApp(client, g, creds, sessions)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func printHelp() {
	fmt.Println(`gym-admin dashboard — terminal admin console for the gym platform

Usage:
  dashboard            start the interactive console
  dashboard version    print the version

Environment:
  GYM_ADMIN_API_URL    admin API base URL (default http://localhost:10000)`)
}
