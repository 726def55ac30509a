// Package escape implements the two escaping contexts used by the renderers.
//
// Every piece of caller-supplied text must pass through the matching function
// immediately before being concatenated into markup. Numeric fields are parsed
// and clamped instead, since they are only ever emitted as numbers.
package escape

import "strings"

// Ampersand must be replaced first so entities introduced by the later
// substitutions are not double-escaped.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// XML escapes s for embedding in SVG element content and attribute values.
func XML(s string) string {
	return xmlReplacer.Replace(s)
}

// HTML escapes s for embedding in HTML element content and attribute values.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}
