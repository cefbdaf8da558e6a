package main

import (
	"fmt"
	"strings"

	"github.com/swatchkit/swatch/internal/app/palettes"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/store"
)

// openService builds the palette service over the stores under ~/.swatch.
func openService(operation string, log *logger.Logger) (*palettes.Service, error) {
	libraryPath, err := defaultLibraryPath()
	if err != nil {
		return nil, newCommandError(operation, "determining library path", err, "Ensure your HOME directory is set correctly.")
	}

	keywordsPath, err := defaultKeywordsPath()
	if err != nil {
		return nil, newCommandError(operation, "determining keywords path", err, "Ensure your HOME directory is set correctly.")
	}

	draftsPath, err := defaultDraftsPath()
	if err != nil {
		return nil, newCommandError(operation, "determining drafts path", err, "Ensure your HOME directory is set correctly.")
	}

	library, err := store.NewLibrary(libraryPath)
	if err != nil {
		return nil, newCommandError(operation, "loading palette library", err, "Check library file permissions and try again.")
	}

	keywords, err := store.NewKeywordStore(keywordsPath)
	if err != nil {
		return nil, newCommandError(operation, "loading keyword store", err, "Check keyword file permissions and try again.")
	}

	drafts, err := store.NewDraftStore(draftsPath)
	if err != nil {
		return nil, newCommandError(operation, "loading draft store", err, "Check draft file permissions and try again.")
	}

	return palettes.NewService(library, keywords, drafts, log), nil
}

// resolvePalette looks up a palette by ID first, then by exact name.
// Name lookup fails when two palettes share the name.
func resolvePalette(svc *palettes.Service, ref string) (palette.Palette, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return palette.Palette{}, fmt.Errorf("palette reference cannot be empty")
	}

	if p, err := svc.Get(ref); err == nil {
		return p, nil
	}

	var matches []palette.Palette
	for _, p := range svc.List() {
		if strings.EqualFold(p.Name, ref) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return palette.Palette{}, fmt.Errorf("no palette with ID or name %q", ref)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, p := range matches {
			ids[i] = p.ID
		}
		return palette.Palette{}, fmt.Errorf("name %q matches %d palettes (%s); use an ID", ref, len(matches), strings.Join(ids, ", "))
	}
}
