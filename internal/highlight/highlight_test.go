package highlight

import (
	"errors"
	"strings"
	"testing"
)

func TestHighlight_fullMode(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ranges []Range
		want   string
	}{
		{
			name: "unordered_with_duplicate_and_empty",
			text: "abc def ghi", ranges: []Range{{10, 9}, {4, 4}, {0, 3}},
			want: "<em>abc</em> def g<em>h</em>i",
		},
		{
			name: "overlapping_ranges_merge",
			text: "abcdefghij", ranges: []Range{{1, 4}, {3, 6}},
			want: "a<em>bcdef</em>ghij",
		},
		{
			name: "whole_text",
			text: "abc", ranges: []Range{{0, 3}},
			want: "<em>abc</em>",
		},
		{
			name: "adjacent_ranges_single_wrapper",
			text: "abcdef", ranges: []Range{{0, 3}, {3, 6}},
			want: "<em>abcdef</em>",
		},
		{
			name: "out_of_bounds_clamped",
			text: "abc", ranges: []Range{{1, 99}},
			want: "a<em>bc</em>",
		},
		{
			name: "negative_start_clamped",
			text: "abc", ranges: []Range{{-2, 1}},
			want: "<em>a</em>bc",
		},
		{
			name: "input_trimmed_before_rendering",
			text: "  abc  ", ranges: []Range{{0, 3}},
			want: "<em>abc</em>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Highlight(tt.text, tt.ranges, false)
			if err != nil {
				t.Fatalf("Highlight: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlight_invalidInput(t *testing.T) {
	if _, err := Highlight("", []Range{{0, 4}}, false); !errors.Is(err, ErrEmptyText) {
		t.Errorf("empty text: got %v, want ErrEmptyText", err)
	}
	if _, err := Highlight("Text", nil, false); !errors.Is(err, ErrEmptyRanges) {
		t.Errorf("empty ranges: got %v, want ErrEmptyRanges", err)
	}
	if _, err := Highlight("", nil, true); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("both empty: got %v, want an invalid-input error", err)
	}
}

func TestHighlight_escapesBeforeWrapping(t *testing.T) {
	text := `<script>alert("XSS")</script>`
	got, err := Highlight(text, []Range{{0, len(text)}}, false)
	if err != nil {
		t.Fatal(err)
	}
	want := "<em>&lt;script&gt;alert(&quot;XSS&quot;)&lt;/script&gt;</em>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "<script>") {
		t.Error("raw script tag survived escaping")
	}
}

func TestHighlight_endOfTextFixUp(t *testing.T) {
	// Escaping grows the string; a range meant to reach the end of the input
	// must still reach the end of the escaped text.
	text := `a & b`
	got, err := Highlight(text, []Range{{0, len(text)}}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<em>a &amp; b</em>" {
		t.Errorf("got %q", got)
	}
}

func TestHighlight_outputNeverShorterThanInput(t *testing.T) {
	texts := []string{"abc def ghi", "a & b < c", "hello world"}
	for _, text := range texts {
		got, err := Highlight(text, []Range{{0, 3}, {5, 7}}, false)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) < len(strings.TrimSpace(text)) {
			t.Errorf("output %q shorter than input %q", got, text)
		}
	}
}

func TestRenderFull_emptyShortCircuits(t *testing.T) {
	if got := renderFull("", []Range{{0, 1}}); got != "" {
		t.Errorf("empty text: got %q", got)
	}
	if got := renderFull("abc", nil); got != "" {
		t.Errorf("no ranges: got %q", got)
	}
}
