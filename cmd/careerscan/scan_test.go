package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScan_PlainTextFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("React and Node developer with Docker"), 0o644))

	err := runScan(scanCmd, []string{path})
	assert.NoError(t, err)
}

func TestRunScan_MissingFile(t *testing.T) {
	err := runScan(scanCmd, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestRunScan_UnsupportedExtension(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cv.docx")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	err := runScan(scanCmd, []string{path})
	assert.Error(t, err)
}
