// Package openapi builds resume form models from OpenAPI 3 documents. Form
// sections are described as component schemas: property titles become labels,
// formats pick input widgets and the x-resume extension carries ordering,
// placeholders and widget overrides. The personal info section ships as an
// embedded document so the builder works offline.
package openapi
