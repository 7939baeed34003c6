package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPrintsSnapshotWithoutTerminal(t *testing.T) {
	for _, args := range [][]string{{}, {"demo"}} {
		out, _, err := execute(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Demo App")
		assert.Contains(t, out, "Name")
		assert.NotContains(t, out, "ctrl+t", "snapshots carry no key help")
	}
}

func TestDemoSnapshotHonoursConfig(t *testing.T) {
	path := writeConfig(t, `
theme: dark
view: table
`)

	out, _, err := execute(t, "--config", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Charlie")
	assert.Contains(t, out, "Light", "dark mode offers the light toggle")
}

func TestDemoEnvThemeOverridesConfig(t *testing.T) {
	path := writeConfig(t, "theme: light\n")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "demo"})
	t.Setenv("WIDGETKIT_THEME", "dark")

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Light")
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
