package highlight

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"a < b", "a &lt; b"},
		{"a > b", "a &gt; b"},
		{"a & b", "a &amp; b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{`<script>alert("XSS")</script>`, "&lt;script&gt;alert(&quot;XSS&quot;)&lt;/script&gt;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscape_noRawSpecialsRemain(t *testing.T) {
	in := `&<>"' mixed & nested <tags attr="v">'q'</tags>`
	got := Escape(in)
	if strings.ContainsAny(got, `<>"'`) {
		t.Errorf("escaped string still contains raw specials: %q", got)
	}
	// Every ampersand must start one of the five entities.
	rest := got
	for {
		i := strings.Index(rest, "&")
		if i < 0 {
			break
		}
		rest = rest[i:]
		ok := false
		for _, ent := range []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#39;"} {
			if strings.HasPrefix(rest, ent) {
				rest = rest[len(ent):]
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("bare ampersand outside an entity in %q", got)
		}
	}
}
