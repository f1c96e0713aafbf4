package engine

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain json untouched",
			raw:  `{"title": "x"}`,
			want: `{"title": "x"}`,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"title\": \"x\"}\n```",
			want: `{"title": "x"}`,
		},
		{
			name: "bare fence",
			raw:  "```\n{\"title\": \"x\"}\n```",
			want: `{"title": "x"}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n{\"a\":1}\n  ",
			want: `{"a":1}`,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
