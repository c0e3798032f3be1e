package coursesite

import (
	"fmt"

	"github.com/coursesite/coursesite/tfunc"
)

// Course is a course record as returned by the catalog service, possibly with
// override values merged in. Fields other than the catalog number and subject
// area are passed through to templates untouched.
type Course map[string]interface{}

// CatalogNumber is the structured catalog number of a course.
type CatalogNumber struct {
	Prefix    string
	Number    string
	Suffix    string
	Formatted string
}

// CatalogNumber returns the record's catalog number. ok is false when the
// record has no catalogNumber mapping.
func (c Course) CatalogNumber() (cn CatalogNumber, ok bool) {
	m, ok := c["catalogNumber"].(map[string]interface{})
	if !ok {
		return cn, false
	}
	return CatalogNumber{
		Prefix:    stringValue(m["prefix"]),
		Number:    stringValue(m["number"]),
		Suffix:    stringValue(m["suffix"]),
		Formatted: stringValue(m["formatted"]),
	}, true
}

// SubjectArea returns the subject area code, read from subjectArea or
// subjectAreaCode.
func (c Course) SubjectArea() string {
	for _, k := range []string{"subjectArea", "subjectAreaCode"} {
		if s := stringValue(c[k]); s != "" {
			return s
		}
	}
	return ""
}

// Identifier is the short course identifier derived from the formatted
// catalog number, "C131A" -> "131a".
func (c Course) Identifier() string {
	cn, _ := c.CatalogNumber()
	return tfunc.FormatCatalogNumber(cn.Formatted)
}

// Clone returns a shallow copy of the record.
func (c Course) Clone() Course {
	if c == nil {
		return nil
	}
	out := make(Course, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// stringValue renders scalars the catalog may send as numbers (e.g. the
// catalog number's "number") as strings.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
