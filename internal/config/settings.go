package config

import (
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

// DefaultDirectory is used when neither a directory flag nor
// GITHUB_WORKSPACE is set.
const DefaultDirectory = "."

// Settings are the resolved values of a run.
type Settings struct {
	SubjectArea        string
	CatalogNumber      string
	Directory          string
	OverridePath       string
	Author             string
	GoogleAnalyticsTag string
	CatalogAddress     string
	AppID              string
	AppKey             string

	// AuthorSet and GoogleAnalyticsTagSet mark values given explicitly. An
	// explicit empty value is not replaced by the environment.
	AuthorSet             bool
	GoogleAnalyticsTagSet bool
}

// Defaults returns the settings the environment provides.
func (e *Env) Defaults() Settings {
	dir := e.Workspace
	if dir == "" {
		dir = DefaultDirectory
	}
	return Settings{
		Directory:          dir,
		Author:             e.Author,
		GoogleAnalyticsTag: e.GoogleAnalyticsTag,
		CatalogAddress:     e.CatalogAddress,
		AppID:              e.AppID,
		AppKey:             e.AppKey,
	}
}

// Resolve fills the settings left empty by flags from the environment.
// Values given as flags win, including explicitly empty ones.
func Resolve(flags Settings, env *Env) (Settings, error) {
	s := flags
	if env == nil {
		env = &Env{}
	}
	if err := mergo.Merge(&s, env.Defaults()); err != nil {
		return Settings{}, errors.Wrap(err, "resolve settings")
	}
	if flags.AuthorSet {
		s.Author = flags.Author
	}
	if flags.GoogleAnalyticsTagSet {
		s.GoogleAnalyticsTag = flags.GoogleAnalyticsTag
	}
	if s.Directory == "" {
		s.Directory = DefaultDirectory
	}
	return s, nil
}
