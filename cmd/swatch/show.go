package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <palette>",
		Short: "Show a palette's colors and details",
		Long:  "Show a palette's colors and details. The palette may be referenced by ID or by exact name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output palette details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, ref string, opts *showOptions, log *logger.Logger) error {
	svc, err := openService("show", log)
	if err != nil {
		return err
	}

	p, err := resolvePalette(svc, ref)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up palette %q", ref), err, "Run 'swatch list' to view saved palettes.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(p)
	}

	renderShow(cmd, p)
	return nil
}

func renderShow(cmd *cobra.Command, p palette.Palette) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Palette:  %s\n", p.Name)
	fmt.Fprintf(out, "ID:       %s\n", p.ID)
	fmt.Fprintf(out, "Mode:     %s\n", p.Mode)
	fmt.Fprintf(out, "Keywords: %s\n", valueOrFallback(strings.Join(p.Keywords, ", "), "(none)"))
	fmt.Fprintf(out, "\nDescription:\n  %s\n", valueOrFallback(p.Description, "(none)"))

	useSwatches := supportsUnicode(out)
	fmt.Fprintf(out, "\nColors (%d):\n", len(p.Colors))
	for _, c := range p.Colors {
		fmt.Fprintf(out, "  %s\n", formatColor(c, useSwatches))
	}

	fmt.Fprintf(out, "\nCreated: %s\n", p.CreatedAt.Format(time.RFC3339))
}

// formatColor prefixes the value with a colored block on terminals that
// can show one, plus the normalized hex form when the input isn't hex.
func formatColor(value string, useSwatches bool) string {
	hex, ok := palette.HexString(value)
	if !ok {
		return value
	}

	line := value
	if !strings.EqualFold(strings.TrimSpace(value), hex) {
		line = fmt.Sprintf("%s  (%s)", value, hex)
	}

	if useSwatches {
		block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		return block + " " + line
	}
	return line
}
