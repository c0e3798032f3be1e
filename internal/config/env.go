package config

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Env is the process environment the tool reads.
type Env struct {
	AppID              string `envconfig:"SIS_COURSE_API_ID" required:"true"`
	AppKey             string `envconfig:"SIS_COURSE_API_KEY" required:"true"`
	CatalogAddress     string `envconfig:"CATALOG_ADDRESS"`
	Author             string `envconfig:"CONFIG_AUTHOR"`
	GoogleAnalyticsTag string `envconfig:"GOOGLE_ANALYTICS_TAG"`
	Workspace          string `envconfig:"GITHUB_WORKSPACE"` // e.g. "/github/workspace"
}

// LoadEnvFiles loads KEY=VALUE dotenv files into the process environment.
// Variables that are already set are not overwritten and files that do not
// exist are skipped. It returns the files that were loaded.
func LoadEnvFiles(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		err := godotenv.Load(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return loaded, errors.Wrapf(err, "load env file %s", p)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// LoadEnv reads Env from the process environment. Missing credentials are an
// error.
func LoadEnv() (*Env, error) {
	var e Env
	err := envconfig.Process("", &e)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
