package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	c := Config{}
	if c.Valid() == nil {
		t.Fail()
	}
	c.FilesURL = "not empty"
	c.AppURL = "not empty"
	if c.Valid() == nil {
		t.Fail()
	}
	c.AppID = "not empty"
	if c.Valid() == nil {
		t.Fail()
	}
	c.Token = "not empty"
	if c.Valid() != nil {
		t.Fail()
	}
}

func TestValidNamesEveryMissingField(t *testing.T) {
	err := Config{}.Valid()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty token")
	assert.Contains(t, err.Error(), "empty app id")
	assert.Contains(t, err.Error(), "empty files base URL")
	assert.Contains(t, err.Error(), "empty app base URL")
}

func TestGetConfigDefaults(t *testing.T) {
	c, err := GetConfig(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, ProductionFilesURL, c.FilesURL)
	assert.Equal(t, ProductionAppURL, c.AppURL)
	assert.Zero(t, c.Timeout)
}

func TestGetConfigEnv(t *testing.T) {
	t.Setenv("SYMBOLS_TOKEN", "env-token")
	t.Setenv("SYMBOLS_APP_ID", "env-app")
	t.Setenv("SYMBOLS_FILES_URL", "http://files.local")
	t.Setenv("SYMBOLS_TIMEOUT", "30s")

	c, err := GetConfig(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "env-token", c.Token)
	assert.Equal(t, "env-app", c.AppID)
	assert.Equal(t, "http://files.local", c.FilesURL)
	assert.Equal(t, ProductionAppURL, c.AppURL)
	assert.Equal(t, 30*time.Second, c.Timeout)
}

func TestGetConfigCLIWinsOverEnv(t *testing.T) {
	t.Setenv("SYMBOLS_TOKEN", "env-token")
	t.Setenv("SYMBOLS_FILES_URL", "http://files.env")

	c, err := GetConfig(Overrides{
		Token:    "cli-token",
		AppID:    "cli-app",
		FilesURL: "http://files.cli",
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-token", c.Token)
	assert.Equal(t, "cli-app", c.AppID)
	assert.Equal(t, "http://files.cli", c.FilesURL)
	assert.Equal(t, 5*time.Second, c.Timeout)
}
