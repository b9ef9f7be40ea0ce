package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`[9, 17, "hour", "day"]`), 0644))

	cmd := newValidateCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "valid\n", buf.String())
}

func TestValidateCmd_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`[17, 9, "hour", "day"]`), 0644))

	cmd := newValidateCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "invalid\n", buf.String())
}
