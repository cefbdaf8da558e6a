package main

import (
	"os"
	"path/filepath"
)

func defaultLibraryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".swatch", "palettes.json"), nil
}

func defaultKeywordsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".swatch", "keywords.json"), nil
}

func defaultDraftsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".swatch", "drafts.json"), nil
}
