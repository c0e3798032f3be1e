/*
Package coursesite generates the configuration and README of a static course
website.

A run looks a course up in the course catalog service by subject area and,
optionally, catalog number, overlays a local override document, and renders
two text/template files found in the site's templates directory,
_config.yml.tmpl and README.md.tmpl, into _config.yml and README.md.

Templates can use the course formatting filters from the tfunc package, for
example {{ .course.catalogNumber.formatted | format_catalog_number }}.
Referencing a course field the record does not have fails the run; optional
fields are read with index, as in {{ with index .course "description" }}.
*/
package coursesite
