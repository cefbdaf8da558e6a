package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/app/palettes"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
	"github.com/swatchkit/swatch/internal/tui/form"
)

type createOptions struct {
	name        string
	description string
	mode        string
	colors      []string
	keywords    string
}

func newCreateCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new color palette",
		Long: `Create a new color palette.

Without flags the interactive form opens; an interrupted session is
restored as a draft next time. With --name the palette is created
directly from the flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Palette name (skips the interactive form)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "light", "Display mode: light or dark")
	cmd.Flags().StringArrayVarP(&opts.colors, "color", "c", nil, "Color value (repeatable)")
	cmd.Flags().StringVarP(&opts.keywords, "keywords", "k", "", "Comma-separated keywords; prefix with ! to remove")

	return cmd
}

func runCreate(cmd *cobra.Command, opts *createOptions, log *logger.Logger) error {
	svc, err := openService("create", log)
	if err != nil {
		return err
	}

	if opts.name == "" {
		return runPaletteForm(cmd, svc, formSession{
			title:    "New Palette",
			draftKey: store.DraftKeyCreate,
		})
	}

	fields := map[string]string{
		palette.FieldName:        opts.name,
		palette.FieldDescription: opts.description,
		palette.FieldMode:        opts.mode,
		palette.FieldKeywords:    opts.keywords,
	}
	for i, c := range opts.colors {
		fields[palette.ColorField(i+1)] = c
	}
	slotCount := len(opts.colors)
	if slotCount == 0 {
		slotCount = 1
	}

	result, err := svc.Submit(palettes.SubmitRequest{Fields: fields, SlotCount: slotCount})
	if err != nil {
		return newCommandError("create", fmt.Sprintf("creating palette %q", opts.name), err, "Fix the reported field and try again.")
	}

	printSubmitResult(cmd, result)
	return nil
}

func printSubmitResult(cmd *cobra.Command, result *palettes.SubmitResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", result.Message)
	fmt.Fprintf(cmd.OutOrStdout(), "  ID: %s\n", result.Palette.ID)
	if len(result.AddedKeywords) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  Keywords added: %s\n", strings.Join(result.AddedKeywords, ", "))
	}
}

// formSession describes one interactive form run.
type formSession struct {
	title     string
	draftKey  string
	replaceID string
	fields    map[string]string
	slotCount int
}

// runPaletteForm runs the palette form as a standalone Bubble Tea program
// and persists the outcome: submit saves the palette, esc saves a draft.
func runPaletteForm(cmd *cobra.Command, svc *palettes.Service, session formSession) error {
	fields := session.fields
	slotCount := session.slotCount
	focusSlot := 0

	if draft, ok := svc.Draft(session.draftKey); ok {
		fields = draft.Fields
		slotCount = draft.SlotCount
		if slot, ok := palette.NextFocusSlot(draftColors(draft)); ok {
			focusSlot = slot
		}
	}

	m := formRunner{
		form: form.New(form.Options{
			Title:     session.title,
			DraftKey:  session.draftKey,
			ReplaceID: session.replaceID,
			Fields:    fields,
			SlotCount: slotCount,
			FocusSlot: focusSlot,
			Keywords:  svc.Keywords(),
			Validate:  svc.ValidateFields,
		}),
		svc: svc,
	}

	op := "create"
	if session.replaceID != "" {
		op = "edit"
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return newCommandError(op, "running the palette form", err, "Run swatch from an interactive terminal.")
	}

	runner, ok := final.(formRunner)
	if !ok {
		return nil
	}

	switch {
	case runner.err != nil:
		return runner.err
	case runner.result != nil:
		printSubmitResult(cmd, runner.result)
	case runner.draftSaved:
		fmt.Fprintln(cmd.OutOrStdout(), "Draft saved. Run the form again to pick up where you left off.")
	}
	return nil
}

func draftColors(draft store.Draft) []string {
	colors := make([]string, draft.SlotCount)
	for i := range colors {
		colors[i] = draft.Fields[palette.ColorField(i+1)]
	}
	return colors
}

// formRunner hosts the form model in a standalone program.
type formRunner struct {
	form form.Model
	svc  *palettes.Service

	result     *palettes.SubmitResult
	draftSaved bool
	err        error
}

func (r formRunner) Init() tea.Cmd {
	return r.form.Init()
}

func (r formRunner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case form.SubmittedMsg:
		result, err := r.svc.Submit(palettes.SubmitRequest{
			Fields:    msg.Fields,
			SlotCount: msg.SlotCount,
			ReplaceID: msg.ReplaceID,
		})
		if err != nil {
			// Typed input survives as a draft so a store failure
			// does not throw the session away.
			_ = r.svc.SaveDraft(msg.DraftKey, msg.Fields, msg.SlotCount)
			r.err = err
			return r, tea.Quit
		}
		r.svc.ClearDraft(msg.DraftKey)
		r.result = result
		return r, tea.Quit

	case form.CancelledMsg:
		if err := r.svc.SaveDraft(msg.DraftKey, msg.Fields, msg.SlotCount); err != nil {
			r.err = err
		} else {
			r.draftSaved = true
		}
		return r, tea.Quit
	}

	var cmd tea.Cmd
	r.form, cmd = r.form.Update(msg)
	return r, cmd
}

func (r formRunner) View() string {
	return r.form.View()
}
