package coursesite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseCatalogNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		course Course
		e      CatalogNumber
		ok     bool
	}{
		{
			"full",
			Course{"catalogNumber": map[string]interface{}{
				"prefix":    "C",
				"number":    "131",
				"suffix":    "A",
				"formatted": "C131A",
			}},
			CatalogNumber{Prefix: "C", Number: "131", Suffix: "A", Formatted: "C131A"},
			true,
		},
		{
			"numeric_number",
			Course{"catalogNumber": map[string]interface{}{
				"number":    float64(31),
				"formatted": "31",
			}},
			CatalogNumber{Number: "31", Formatted: "31"},
			true,
		},
		{
			"missing",
			Course{"title": "x"},
			CatalogNumber{},
			false,
		},
		{
			"wrong_type",
			Course{"catalogNumber": "C131A"},
			CatalogNumber{},
			false,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			cn, ok := tc.course.CatalogNumber()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.e, cn)
		})
	}
}

func TestCourseIdentifier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		formatted string
		e         string
	}{
		{"C131A", "131a"},
		{"31", "31"},
		{"CM146", "m146"},
		{"M51A", "m51a"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.formatted), func(t *testing.T) {
			c := Course{"catalogNumber": map[string]interface{}{"formatted": tc.formatted}}
			assert.Equal(t, tc.e, c.Identifier())
		})
	}

	t.Run("no_catalog_number", func(t *testing.T) {
		assert.Equal(t, "", Course{}.Identifier())
	})
}

func TestCourseSubjectArea(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "COM SCI", Course{"subjectArea": "COM SCI"}.SubjectArea())
	assert.Equal(t, "MATH", Course{"subjectAreaCode": "MATH"}.SubjectArea())
	assert.Equal(t, "", Course{}.SubjectArea())
}

func TestCourseClone(t *testing.T) {
	t.Parallel()

	c := Course{"title": "A", "credits": 4}
	clone := c.Clone()
	clone["title"] = "B"

	assert.Equal(t, "A", c["title"])
	assert.Equal(t, "B", clone["title"])
	assert.Nil(t, Course(nil).Clone())
}
