package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
)

type duplicateOptions struct {
	name string
}

func newDuplicateCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &duplicateOptions{}

	cmd := &cobra.Command{
		Use:   "duplicate <palette>",
		Short: "Duplicate a palette under a new identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicate(cmd, args[0], opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", `Name for the copy (defaults to "<original> Copy")`)

	return cmd
}

func runDuplicate(cmd *cobra.Command, ref string, opts *duplicateOptions, log *logger.Logger) error {
	svc, err := openService("duplicate", log)
	if err != nil {
		return err
	}

	p, err := resolvePalette(svc, ref)
	if err != nil {
		return newCommandError("duplicate", fmt.Sprintf("looking up palette %q", ref), err, "Run 'swatch list' to view saved palettes.")
	}

	dup, err := svc.Duplicate(p.ID, opts.name)
	if err != nil {
		return newCommandError("duplicate", fmt.Sprintf("duplicating palette %q", p.Name), err, "Check disk space and file permissions, then retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Duplicated %q as %q\n", p.Name, dup.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "  ID: %s\n", dup.ID)
	return nil
}
