package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch manages color palettes from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the interactive browser.
			if len(args) == 0 {
				return runBrowser(log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCreateCmd(flags, log))
	cmd.AddCommand(newListCmd(flags, log))
	cmd.AddCommand(newShowCmd(flags, log))
	cmd.AddCommand(newEditCmd(flags, log))
	cmd.AddCommand(newDuplicateCmd(flags, log))
	cmd.AddCommand(newRemoveCmd(flags, log))
	cmd.AddCommand(newKeywordsCmd(flags, log))
	cmd.AddCommand(newExportCmd(flags, log))
	cmd.AddCommand(newImportCmd(flags, log))
	cmd.AddCommand(newBrowseCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
