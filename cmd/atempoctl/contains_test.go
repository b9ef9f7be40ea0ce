package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`[9, 17, "hour", "day"]`), 0644))

	cmd := newContainsCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "2024-03-14T10:00:00Z"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "true\n", buf.String())
}

func TestForwardCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`[9, 17, "hour", "day"]`), 0644))

	cmd := newForwardCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "2024-01-01T00:00:00Z", "--count", "2"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "2024-01-01T09:00:00Z")
	assert.Contains(t, buf.String(), "2024-01-02T09:00:00Z")
}

func TestDescribeCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`[9, 17, "hour", "day"]`), 0644))

	cmd := newDescribeCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.NotEmpty(t, buf.String())
}
