package highlight

import "strings"

// escaper replaces the five HTML-significant characters with named entities in
// a single left-to-right pass. The table is fixed; no other characters are
// altered. User-supplied text must pass through escape before any <em> markers
// are inserted, so the source text cannot inject markup.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape returns s with &, <, >, " and ' replaced by their HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}
