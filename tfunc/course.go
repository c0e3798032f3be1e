package tfunc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatCatalogNumber lower-cases a formatted catalog number and drops a
// single leading "c", giving the short course identifier ("C131A" -> "131a").
func FormatCatalogNumber(s string) string {
	return strings.TrimPrefix(strings.ToLower(s), "c")
}

// FormatSubjectAreaCodeCap upper-cases the first character of a subject area
// code and lower-cases the rest ("MATH" -> "Math").
func FormatSubjectAreaCodeCap(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// FormatSubjectAreaCodeLower lower-cases a subject area code.
func FormatSubjectAreaCodeLower(s string) string {
	return strings.ToLower(s)
}
