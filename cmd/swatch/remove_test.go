package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveCommand_Force(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be")

	stdout, err := executeCommand("remove", "Ocean", "--force")
	require.NoError(t, err)
	require.Contains(t, stdout, `Removed palette "Ocean"`)

	list, err := executeCommand("list")
	require.NoError(t, err)
	require.NotContains(t, list, "Ocean")
}

func TestRemoveCommand_NonInteractiveNeedsForce(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be")

	// Buffer-backed stdin is not a terminal.
	_, err := executeCommand("remove", "Ocean")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")
}

func TestRemoveCommand_KeepsKeywords(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("create", "--name", "Ocean", "--color", "#0077be", "--keywords", "sea")
	require.NoError(t, err)

	_, err = executeCommand("remove", "Ocean", "--force")
	require.NoError(t, err)

	keywords, err := executeCommand("keywords")
	require.NoError(t, err)
	require.Contains(t, keywords, "sea")
}

func TestRemoveCommand_NotFound(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("remove", "missing", "--force")
	require.Error(t, err)
}
