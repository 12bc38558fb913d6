package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AIRLINE_DATA_DIR", "")
	t.Setenv("AIRLINE_LOG_FILE", "")

	cfg := Load()
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "airline.log", cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AIRLINE_DATA_DIR", "/var/lib/airline")
	t.Setenv("AIRLINE_LOG_FILE", "/var/log/airline.log")

	cfg := Load()
	assert.Equal(t, "/var/lib/airline", cfg.DataDir)
	assert.Equal(t, "/var/log/airline.log", cfg.LogFile)
}
