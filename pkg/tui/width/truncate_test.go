// ABOUTME: Tests for grapheme counting and cell-budget marker truncation
// ABOUTME: Covers ASCII, combining sequences, wide CJK and emoji clusters, and edge limits

package width

import "testing"

func TestGraphemeCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "combining accent", input: "é", want: 1},
		{name: "family emoji", input: "\U0001F468‍\U0001F469‍\U0001F467", want: 1},
		{name: "flag", input: "\U0001F1EE\U0001F1F9", want: 1},
		{name: "cjk", input: "你好", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GraphemeCount(tt.input); got != tt.want {
				t.Errorf("GraphemeCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "shorter unchanged", input: "abc", limit: 5, want: "abc"},
		{name: "one under limit unchanged", input: "abcd", limit: 5, want: "abcd"},
		{name: "exactly limit truncated", input: "abcde", limit: 5, want: "abcd~"},
		{name: "longer truncated", input: "hello world", limit: 5, want: "hell~"},
		{name: "limit one", input: "abc", limit: 1, want: "~"},
		{name: "limit zero", input: "abc", limit: 0, want: ""},
		{name: "empty input", input: "", limit: 3, want: ""},
		{name: "combining kept whole", input: "éééé", limit: 3, want: "éé~"},
		{name: "emoji not split", input: "a\U0001F468‍\U0001F469b", limit: 4, want: "a\U0001F468‍\U0001F469~"},
		{name: "wide cluster dropped whole", input: "a\U0001F468‍\U0001F469b", limit: 3, want: "a~"},
		{name: "cjk counts two cells", input: "漢字漢字", limit: 5, want: "漢字~"},
		{name: "cjk odd budget leaves a gap", input: "漢字漢字", limit: 4, want: "漢~"},
		{name: "cjk fits", input: "漢字", limit: 5, want: "漢字"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.limit, '~')
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncate_NeverExceedsLimit(t *testing.T) {
	t.Parallel()

	input := "你好世界, hello"
	for limit := 1; limit <= Width(input); limit++ {
		got := Truncate(input, limit, '~')
		if w := Width(got); w > limit {
			t.Errorf("limit %d: Width(%q) = %d", limit, got, w)
		}
		if got[len(got)-1] != '~' {
			t.Errorf("limit %d: %q does not end in the marker", limit, got)
		}
	}
}
