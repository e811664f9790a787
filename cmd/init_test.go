package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitData(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("INKWELL_DATA", dataDir)
	t.Setenv("INKWELL_STORE", "file")

	output := captureOutput(func() { initData(initCmd, nil) })
	assert.Contains(t, output, "Data directory initialized successfully")
	assert.FileExists(t, filepath.Join(dataDir, "posts.json"))

	output = captureOutput(func() { initData(initCmd, nil) })
	assert.Contains(t, output, "Data directory already exists")
}

func TestCleanWithoutData(t *testing.T) {
	t.Setenv("INKWELL_DATA", filepath.Join(t.TempDir(), "data"))
	t.Setenv("INKWELL_STORE", "file")

	output := captureOutput(func() { clean(cleanCmd, nil) })
	assert.Contains(t, output, "already clean")
}
