package dependency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogCoursesQuery(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		number  string
		id      string
		params  string
		err     bool
	}{
		{"subject_only", "MATH", "", "catalog.courses(MATH)", "subject-area-code=MATH", false},
		{"subject_and_number", "COM SCI", "C131A",
			"catalog.courses(COM SCI C131A)",
			"catalog-number=C131A&subject-area-code=COM+SCI", false},
		{"sent_as_given", " CS ", " 31 ", "catalog.courses( CS   31 )",
			"catalog-number=+31+&subject-area-code=+CS+", false},
		{"empty_subject", "  ", "31", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := NewCatalogCoursesQuery(tc.subject, tc.number)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, q.ID())
			assert.Equal(t, tc.id, q.String())
			assert.Equal(t, tc.params, q.Params().Encode())
		})
	}
}

func TestCatalogCoursesQuery_Fetch(t *testing.T) {
	t.Run("returns_in_order", func(t *testing.T) {
		fake := &FakeCatalog{Records: []map[string]interface{}{
			{"title": "first"}, {"title": "second"},
		}}
		q, err := NewCatalogCoursesQuery("CS", "31")
		require.NoError(t, err)

		data, rm, err := q.Fetch(testContext(t), FakeClients{Fake: fake})
		require.NoError(t, err)
		assert.Equal(t, 2, rm.Count)

		records := data.([]map[string]interface{})
		assert.Equal(t, "first", records[0]["title"])
		assert.Equal(t, "second", records[1]["title"])

		queries := fake.Queries()
		require.Len(t, queries, 1)
		assert.Equal(t, "CS", queries[0].Get("subject-area-code"))
		assert.Equal(t, "31", queries[0].Get("catalog-number"))
	})

	t.Run("no_client", func(t *testing.T) {
		q, _ := NewCatalogCoursesQuery("CS", "")
		_, _, err := q.Fetch(testContext(t), FakeClients{})
		assert.True(t, errors.Is(err, ErrNoClient))
	})

	t.Run("client_error", func(t *testing.T) {
		fake := &FakeCatalog{Err: errors.New("boom")}
		q, _ := NewCatalogCoursesQuery("CS", "")
		_, _, err := q.Fetch(testContext(t), FakeClients{Fake: fake})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.courses(CS): boom")
	})
}
