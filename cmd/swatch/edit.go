package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
)

func newEditCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <palette>",
		Short: "Edit a palette in the interactive form",
		Long: `Edit a palette in the interactive form, prefilled from the stored
record. The palette keeps its ID and creation time. An interrupted
session is restored as a draft next time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], log)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, ref string, log *logger.Logger) error {
	svc, err := openService("edit", log)
	if err != nil {
		return err
	}

	p, err := resolvePalette(svc, ref)
	if err != nil {
		return newCommandError("edit", fmt.Sprintf("looking up palette %q", ref), err, "Run 'swatch list' to view saved palettes.")
	}

	fields, slotCount := palette.RecordFields(p)

	return runPaletteForm(cmd, svc, formSession{
		title:     "Edit Palette",
		draftKey:  store.DraftKeyEdit + p.ID,
		replaceID: p.ID,
		fields:    fields,
		slotCount: slotCount,
	})
}
