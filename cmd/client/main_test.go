package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AdapterErrorIsLoggedAndReturned(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "client.log")
	cfg := &config.ClientConfig{
		LogFile: logFile,
		Adapter: config.ClientAdapter{HTTPAddress: "http://"},
	}

	err := run(cfg, models.NewAppBuildInfo("", "", ""))
	require.Error(t, err)
	assert.ErrorContains(t, err, "error creating directory adapter")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "error creating directory adapter")
	assert.Contains(t, string(content), `"role":"phonebook-client"`)
}

func TestRun_AdapterErrorWithoutLogFile(t *testing.T) {
	err := run(&config.ClientConfig{}, models.NewAppBuildInfo("", "", ""))
	assert.ErrorContains(t, err, "empty address")
}
