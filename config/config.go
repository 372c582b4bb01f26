// Package config provides configuration parameters for a symbol-upload
// invocation.
package config

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// ProductionFilesURL is the base URL of the file-resource API in the
// production environment.
const ProductionFilesURL = "https://files.crittercism.com/api/v1"

// ProductionAppURL is the base URL of the application API in the production
// environment.
const ProductionAppURL = "https://app.crittercism.com/v1.0"

// envPrefix namespaces the environment variables consulted by GetConfig,
// e.g. SYMBOLS_TOKEN, SYMBOLS_FILES_URL.
const envPrefix = "symbols"

// A Config represents parameters of a symbol-upload invocation.
type Config struct {
	// Token is the pre-obtained bearer token authorizing API access.
	Token string `envconfig:"TOKEN"`
	// AppID identifies the application the symbols belong to.
	AppID string `envconfig:"APP_ID"`
	// FilesURL is the base URL for resource creation and fill.
	FilesURL string `envconfig:"FILES_URL"`
	// AppURL is the base URL for symbol-upload job creation.
	AppURL string `envconfig:"APP_URL"`
	// Timeout bounds each HTTP request. Zero means the transport default.
	Timeout time.Duration `envconfig:"TIMEOUT"`
}

// An Overrides carries values taken from the command line. Any non-zero
// field takes precedence over the environment and built-in defaults.
type Overrides struct {
	Token    string
	AppID    string
	FilesURL string
	AppURL   string
	Timeout  time.Duration
}

// GetConfig returns a Config resolved field by field: command-line value if
// given, then environment, then the production endpoints.
func GetConfig(cli Overrides) (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "reading environment")
	}

	if cli.Token != "" {
		c.Token = cli.Token
	}
	if cli.AppID != "" {
		c.AppID = cli.AppID
	}
	if cli.FilesURL != "" {
		c.FilesURL = cli.FilesURL
	}
	if cli.AppURL != "" {
		c.AppURL = cli.AppURL
	}
	if cli.Timeout != 0 {
		c.Timeout = cli.Timeout
	}

	if c.FilesURL == "" {
		c.FilesURL = ProductionFilesURL
	}
	if c.AppURL == "" {
		c.AppURL = ProductionAppURL
	}
	return c, nil
}

// Valid returns nil if c is complete, otherwise an error naming every
// missing field.
func (c Config) Valid() error {
	var result *multierror.Error
	if c.Token == "" {
		result = multierror.Append(result, errors.New("empty token"))
	}
	if c.AppID == "" {
		result = multierror.Append(result, errors.New("empty app id"))
	}
	if c.FilesURL == "" {
		result = multierror.Append(result, errors.New("empty files base URL"))
	}
	if c.AppURL == "" {
		result = multierror.Append(result, errors.New("empty app base URL"))
	}
	return result.ErrorOrNil()
}
