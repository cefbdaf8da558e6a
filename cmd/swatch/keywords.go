package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
)

type keywordsOptions struct {
	jsonOutput bool
}

func newKeywordsCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &keywordsOptions{}

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the global keyword set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywords(cmd, opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newKeywordsApplyCmd(log))

	return cmd
}

func runKeywords(cmd *cobra.Command, opts *keywordsOptions, log *logger.Logger) error {
	svc, err := openService("keywords", log)
	if err != nil {
		return err
	}

	keywords := svc.Keywords()

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Count    int      `json:"count"`
			Keywords []string `json:"keywords"`
		}{Count: len(keywords), Keywords: keywords})
	}

	if len(keywords) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No keywords yet. Keywords accumulate as palettes are created.")
		return nil
	}

	for _, kw := range keywords {
		fmt.Fprintln(cmd.OutOrStdout(), kw)
	}
	return nil
}

func newKeywordsApplyCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <input>",
		Short: "Add or remove keywords from the global set",
		Long: `Add or remove keywords from the global set. The input is a
comma-separated list; prefix an entry with ! to remove it:

  swatch keywords apply 'warm, pastel, !neon'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywordsApply(cmd, args[0], log)
		},
	}

	return cmd
}

func runKeywordsApply(cmd *cobra.Command, input string, log *logger.Logger) error {
	svc, err := openService("keywords apply", log)
	if err != nil {
		return err
	}

	added, err := svc.ApplyKeywords(input)
	if err != nil {
		return newCommandError("keywords apply", "saving the keyword set", err, "Check disk space and file permissions, then retry.")
	}

	if len(added) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", strings.Join(added, ", "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Keywords: %s\n", valueOrFallback(strings.Join(svc.Keywords(), ", "), "(none)"))
	return nil
}
