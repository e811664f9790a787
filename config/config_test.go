package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("INKWELL_DATA", "")
	t.Setenv("INKWELL_STORE", "")

	cfg := Load()

	assert.Equal(t, "5002", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "file", cfg.StoreBackend)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("INKWELL_DATA", "/var/lib/inkwell")
	t.Setenv("INKWELL_STORE", "badger")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/var/lib/inkwell", cfg.DataDir)
	assert.Equal(t, "badger", cfg.StoreBackend)
}
