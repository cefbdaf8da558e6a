package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportCommand_Stdout(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be", "#00b4d8")

	stdout, err := executeCommand("export")
	require.NoError(t, err)

	var doc exportFile
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	require.Equal(t, "1.0", doc.Version)
	require.Len(t, doc.Palettes, 1)
	require.Equal(t, "Ocean", doc.Palettes[0].Name)
	require.Equal(t, []string{"#0077be", "#00b4d8"}, doc.Palettes[0].Colors)
}

func TestExportCommand_ToFile(t *testing.T) {
	home := setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be")

	out := filepath.Join(home, "palettes.yaml")
	stdout, err := executeCommand("export", "--output", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Exported 1 palette(s)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "Ocean")
}

func TestExportCommand_SelectedPalettes(t *testing.T) {
	setupHome(t)
	seedTestPalette(t, "Ocean", "#0077be")
	seedTestPalette(t, "Sunset", "#ff6b35")

	stdout, err := executeCommand("export", "Ocean")
	require.NoError(t, err)

	var doc exportFile
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc.Palettes, 1)
	require.Equal(t, "Ocean", doc.Palettes[0].Name)
}

func TestImportCommand_RoundTrip(t *testing.T) {
	home := setupHome(t)

	_, err := executeCommand("create", "--name", "Ocean", "--color", "#0077be", "--keywords", "sea")
	require.NoError(t, err)

	out := filepath.Join(home, "palettes.yaml")
	_, err = executeCommand("export", "--output", out)
	require.NoError(t, err)

	// A fresh home simulates another machine.
	setupHome(t)

	stdout, err := executeCommand("import", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Imported 1 palette(s)")

	list, err := executeCommand("list")
	require.NoError(t, err)
	require.Contains(t, list, "Ocean")

	keywords, err := executeCommand("keywords")
	require.NoError(t, err)
	require.Contains(t, keywords, "sea")
}

func TestImportCommand_SkipInvalid(t *testing.T) {
	home := setupHome(t)

	doc := `version: "1.0"
palettes:
  - name: Good
    mode: light
    colors: ["#111111"]
  - name: Bad
    mode: light
    colors: ["rgb(999, 0, 0)"]
`
	path := filepath.Join(home, "mixed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := executeCommand("import", path)
	require.Error(t, err)

	stdout, err := executeCommand("import", path, "--skip-invalid")
	require.NoError(t, err)
	require.Contains(t, stdout, "Skipped 1 invalid palette(s).")

	list, err := executeCommand("list")
	require.NoError(t, err)
	require.Contains(t, list, "Good")
	require.NotContains(t, list, "Bad")
}

func TestImportCommand_MissingFile(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("import", "/nonexistent/palettes.yaml")
	require.Error(t, err)
}
