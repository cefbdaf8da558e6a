package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/swatchkit/swatch/internal/logger"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <palette>",
		Short: "Remove a palette",
		Long: `Remove a palette. Keywords the palette contributed stay in the
global keyword set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], opts, log)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, ref string, opts *removeOptions, log *logger.Logger) error {
	svc, err := openService("remove", log)
	if err != nil {
		return err
	}

	p, err := resolvePalette(svc, ref)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up palette %q", ref), err, "Run 'swatch list' to view saved palettes.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, p.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := svc.Delete(p.ID); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing palette %q", p.Name), err, "Verify the palette still exists using 'swatch list'.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed palette %q\n", p.Name)
	return nil
}

func confirmRemoval(cmd *cobra.Command, name string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Remove palette %q? [y/N]: ", name)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
