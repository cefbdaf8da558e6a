package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Swatch dev")
	require.Contains(t, stdout, "commit: none")
	require.Contains(t, stdout, "built: unknown")
}
