package handlers

import "testing"

func TestParsePagination(t *testing.T) {
	h := NewHandler(nil, HandlerConfig{HistoryLimit: 10, HistoryMaxLimit: 100})

	cases := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
	}{
		{"defaults when absent", "", "", 10, 0},
		{"explicit values", "25", "50", 25, 50},
		{"non-numeric falls back", "abc", "xyz", 10, 0},
		{"negative clamps to defaults", "-5", "-3", 10, 0},
		{"zero limit falls back", "0", "0", 10, 0},
		{"limit capped", "500", "0", 100, 0},
	}

	for _, tc := range cases {
		limit, offset := h.parsePagination(tc.limit, tc.offset)
		if limit != tc.wantLimit || offset != tc.wantOffset {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", tc.name, limit, offset, tc.wantLimit, tc.wantOffset)
		}
	}
}
