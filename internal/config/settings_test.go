package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	env := &Env{
		AppID:              "id",
		AppKey:             "key",
		CatalogAddress:     "http://catalog.test",
		Author:             "Env Author",
		GoogleAnalyticsTag: "G-ENV",
		Workspace:          "/github/workspace",
	}

	cases := []struct {
		name  string
		flags Settings
		env   *Env
		e     Settings
	}{
		{
			"env_fills_unset",
			Settings{SubjectArea: "CS", CatalogNumber: "C131A"},
			env,
			Settings{
				SubjectArea:        "CS",
				CatalogNumber:      "C131A",
				Directory:          "/github/workspace",
				Author:             "Env Author",
				GoogleAnalyticsTag: "G-ENV",
				CatalogAddress:     "http://catalog.test",
				AppID:              "id",
				AppKey:             "key",
			},
		},
		{
			"flags_win",
			Settings{
				SubjectArea:    "CS",
				Directory:      "site",
				Author:         "Jane",
				CatalogAddress: "http://other.test",
			},
			env,
			Settings{
				SubjectArea:        "CS",
				Directory:          "site",
				Author:             "Jane",
				GoogleAnalyticsTag: "G-ENV",
				CatalogAddress:     "http://other.test",
				AppID:              "id",
				AppKey:             "key",
			},
		},
		{
			"explicit_empty_kept",
			Settings{
				SubjectArea:           "CS",
				AuthorSet:             true,
				GoogleAnalyticsTagSet: true,
			},
			env,
			Settings{
				SubjectArea:           "CS",
				Directory:             "/github/workspace",
				CatalogAddress:        "http://catalog.test",
				AppID:                 "id",
				AppKey:                "key",
				AuthorSet:             true,
				GoogleAnalyticsTagSet: true,
			},
		},
		{
			"directory_default",
			Settings{SubjectArea: "CS"},
			&Env{AppID: "id", AppKey: "key"},
			Settings{
				SubjectArea: "CS",
				Directory:   ".",
				AppID:       "id",
				AppKey:      "key",
			},
		},
		{
			"nil_env",
			Settings{SubjectArea: "CS"},
			nil,
			Settings{SubjectArea: "CS", Directory: "."},
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			s, err := Resolve(tc.flags, tc.env)
			require.NoError(t, err)
			assert.Equal(t, tc.e, s)
		})
	}
}
