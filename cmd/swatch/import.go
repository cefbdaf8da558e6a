package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swatchkit/swatch/internal/app/palettes"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

type importOptions struct {
	skipInvalid bool
}

func newImportCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import palettes from a YAML export",
		Long: `Import palettes from a YAML export. Imported palettes get fresh IDs,
so importing the same file twice creates copies rather than conflicts.
Keywords in the file merge into the global set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip palettes that fail validation instead of aborting")

	return cmd
}

func runImport(cmd *cobra.Command, path string, opts *importOptions, log *logger.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("import", fmt.Sprintf("reading %s", path), err, "Check that the file exists and you have permission to read it.")
	}

	var doc exportFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return newCommandError("import", fmt.Sprintf("parsing %s", path), swatcherrors.NewParseError(path, err), "The file must be a 'swatch export' document.")
	}

	svc, err := openService("import", log)
	if err != nil {
		return err
	}

	if len(doc.Keywords) > 0 {
		if _, err := svc.ApplyKeywords(strings.Join(doc.Keywords, ",")); err != nil {
			return newCommandError("import", "merging keywords", err, "Check disk space and file permissions, then retry.")
		}
	}

	imported := 0
	skipped := 0
	for _, p := range doc.Palettes {
		if _, err := svc.Submit(importRequest(p)); err != nil {
			if opts.skipInvalid {
				skipped++
				fmt.Fprintf(cmd.ErrOrStderr(), "  skipped %q: %v\n", p.Name, err)
				continue
			}
			return newCommandError("import", fmt.Sprintf("importing palette %q", p.Name), err, "Fix the palette in the file, or use --skip-invalid to import the rest.")
		}
		imported++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d palette(s) from %s\n", imported, path)
	if skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  Skipped %d invalid palette(s).\n", skipped)
	}
	return nil
}

// importRequest projects an imported palette through the same submission
// pipeline a form would use, so validation and keyword reconciliation
// apply uniformly.
func importRequest(p palette.Palette) palettes.SubmitRequest {
	fields := map[string]string{
		palette.FieldName:        p.Name,
		palette.FieldDescription: p.Description,
		palette.FieldMode:        p.Mode.String(),
		palette.FieldKeywords:    strings.Join(p.Keywords, ", "),
	}
	for i, c := range p.Colors {
		fields[palette.ColorField(i+1)] = c
	}

	slotCount := len(p.Colors)
	if slotCount == 0 {
		slotCount = 1
	}

	return palettes.SubmitRequest{Fields: fields, SlotCount: slotCount}
}
