package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
)

type exportOptions struct {
	output string
}

// exportFile is the YAML document shape shared by export and import.
type exportFile struct {
	Version  string            `yaml:"version"`
	Keywords []string          `yaml:"keywords,omitempty"`
	Palettes []palette.Palette `yaml:"palettes"`
}

func newExportCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [palette...]",
		Short: "Export palettes as YAML",
		Long: `Export palettes as YAML, to stdout or to a file. With no arguments
every palette is exported; otherwise only the named ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, refs []string, opts *exportOptions, log *logger.Logger) error {
	svc, err := openService("export", log)
	if err != nil {
		return err
	}

	var selected []palette.Palette
	if len(refs) == 0 {
		selected = svc.List()
	} else {
		for _, ref := range refs {
			p, err := resolvePalette(svc, ref)
			if err != nil {
				return newCommandError("export", fmt.Sprintf("looking up palette %q", ref), err, "Run 'swatch list' to view saved palettes.")
			}
			selected = append(selected, p)
		}
	}

	doc := exportFile{
		Version:  "1.0",
		Keywords: svc.Keywords(),
		Palettes: selected,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return newCommandError("export", "encoding palettes", err, "This is a bug; please report it.")
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return newCommandError("export", fmt.Sprintf("writing %s", opts.output), err, "Check that the directory exists and is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d palette(s) to %s\n", len(selected), opts.output)
	return nil
}
