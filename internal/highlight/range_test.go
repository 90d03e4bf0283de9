package highlight

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Range
		want []Range
	}{
		{"empty", nil, nil},
		{"single", []Range{{2, 5}}, []Range{{2, 5}}},
		{"inverted_endpoints", []Range{{5, 2}}, []Range{{2, 5}}},
		{"unsorted", []Range{{10, 9}, {4, 4}, {0, 3}}, []Range{{0, 3}, {4, 4}, {9, 10}}},
		{"duplicates", []Range{{1, 4}, {1, 4}, {1, 4}}, []Range{{1, 4}}},
		{"overlap", []Range{{1, 4}, {3, 6}}, []Range{{1, 6}}},
		{"exact_adjacency", []Range{{3, 5}, {5, 7}}, []Range{{3, 7}}},
		{"contained", []Range{{0, 10}, {2, 4}}, []Range{{0, 10}}},
		{"gap_preserved", []Range{{0, 2}, {4, 6}}, []Range{{0, 2}, {4, 6}}},
		{"mixed", []Range{{8, 6}, {0, 2}, {2, 4}, {0, 2}}, []Range{{0, 4}, {6, 8}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_idempotent(t *testing.T) {
	in := []Range{{7, 3}, {1, 1}, {3, 5}, {9, 12}, {12, 14}}
	once := Normalize(in)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize not idempotent: %v then %v", once, twice)
	}
}

func TestNormalize_noOverlapPostcondition(t *testing.T) {
	in := []Range{{0, 5}, {5, 9}, {3, 4}, {20, 11}, {15, 15}, {15, 16}}
	got := Normalize(in)
	for i := 1; i < len(got); i++ {
		if got[i].Start <= got[i-1].End {
			t.Errorf("ranges %v and %v overlap or touch after normalization", got[i-1], got[i])
		}
	}
}

func TestNormalize_mergeTakesMaxEnd(t *testing.T) {
	got := Normalize([]Range{{1, 8}, {2, 5}})
	want := []Range{{1, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize_doesNotModifyInput(t *testing.T) {
	in := []Range{{5, 2}, {0, 1}}
	Normalize(in)
	if in[0] != (Range{5, 2}) || in[1] != (Range{0, 1}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		lim  int
		want Range
	}{
		{"in_bounds", Range{1, 3}, 10, Range{1, 3}},
		{"negative_start", Range{-4, 3}, 10, Range{0, 3}},
		{"end_past_limit", Range{2, 15}, 10, Range{2, 10}},
		{"fully_past_limit", Range{12, 15}, 10, Range{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.r, tt.lim); got != tt.want {
				t.Errorf("clamp(%v, %d) = %v, want %v", tt.r, tt.lim, got, tt.want)
			}
		})
	}
}
