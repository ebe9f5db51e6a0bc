package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML replaces the characters that are unsafe inside HTML text and
// double-quoted attributes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
