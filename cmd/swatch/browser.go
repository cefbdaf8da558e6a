package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/tui/browser"
)

func newBrowseCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive palette browser",
		Long:  "Launch the interactive palette browser. Running 'swatch' with no arguments does the same.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(log)
		},
	}

	return cmd
}

func runBrowser(log *logger.Logger) error {
	svc, err := openService("browse", log)
	if err != nil {
		return err
	}

	log.Debug("launching browser")

	m := browser.NewModel(svc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser exited with error")
		return newCommandError("browse", "running the palette browser", err, "Run swatch from an interactive terminal.")
	}

	return nil
}
