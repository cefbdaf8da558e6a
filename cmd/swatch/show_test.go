package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommand_ByName(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("create",
		"--name", "Ocean",
		"--description", "Cool blues",
		"--color", "#0077be",
		"--color", "rgb(0, 180, 216)",
		"--keywords", "sea",
	)
	require.NoError(t, err)

	stdout, err := executeCommand("show", "Ocean")
	require.NoError(t, err)
	require.Contains(t, stdout, "Palette:  Ocean")
	require.Contains(t, stdout, "Mode:     light")
	require.Contains(t, stdout, "Cool blues")
	require.Contains(t, stdout, "sea")
	require.Contains(t, stdout, "Colors (2):")
	require.Contains(t, stdout, "#0077be")
	// Non-hex inputs show their normalized hex alongside.
	require.Contains(t, stdout, "rgb(0, 180, 216)  (#00b4d8)")
}

func TestShowCommand_JSON(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be")

	stdout, err := executeCommand("show", "Ocean", "--json")
	require.NoError(t, err)

	var payload struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "Ocean", payload.Name)
	require.Equal(t, []string{"#0077be"}, payload.Colors)

	// IDs resolve too.
	stdout, err = executeCommand("show", payload.ID)
	require.NoError(t, err)
	require.Contains(t, stdout, "Ocean")
}

func TestShowCommand_NotFound(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("show", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "swatch list")
}

func TestShowCommand_AmbiguousName(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#111")
	seedTestPalette(t, "Ocean", "#222")

	_, err := executeCommand("show", "Ocean")
	require.Error(t, err)
	require.Contains(t, err.Error(), "use an ID")
}
