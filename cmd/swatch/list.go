package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
)

type listOptions struct {
	jsonOutput bool
	keyword    string
}

func newListCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved color palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.keyword, "keyword", "", "Only show palettes tagged with this keyword")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions, log *logger.Logger) error {
	svc, err := openService("list", log)
	if err != nil {
		return err
	}

	all := svc.List()
	if opts.keyword != "" {
		all = filterByKeyword(all, opts.keyword)
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, all)
	}

	if len(all) == 0 {
		if opts.keyword != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No palettes tagged %q.\n", opts.keyword)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No palettes yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'swatch create' to create your first palette.")
		return nil
	}

	return renderListTable(cmd, all)
}

func filterByKeyword(all []palette.Palette, keyword string) []palette.Palette {
	out := make([]palette.Palette, 0, len(all))
	for _, p := range all {
		for _, kw := range p.Keywords {
			if strings.EqualFold(kw, keyword) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func renderListTable(cmd *cobra.Command, all []palette.Palette) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tMODE\tCOLORS\tKEYWORDS\tCREATED")

	for _, p := range all {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\n",
			shortID(p.ID),
			p.Name,
			p.Mode,
			len(p.Colors),
			valueOrFallback(strings.Join(p.Keywords, ", "), "-"),
			formatRelativeTime(p.CreatedAt),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version  string            `json:"version"`
	Count    int               `json:"count"`
	Palettes []palette.Palette `json:"palettes"`
}

func renderListJSON(cmd *cobra.Command, all []palette.Palette) error {
	payload := listJSONPayload{
		Version:  "1.0",
		Count:    len(all),
		Palettes: all,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// shortID abbreviates UUIDs for the table; JSON output keeps them whole.
func shortID(id string) string {
	if idx := strings.Index(id, "-"); idx > 0 {
		return id[:idx]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
