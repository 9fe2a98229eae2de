package locator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitEntries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "one entry per line",
			text: "\n  'a/b',\n  'c/d'",
			want: []string{"  'a/b'", "  'c/d'"},
		},
		{
			name: "several entries on one line",
			text: "'a', 'b',\t'c'",
			want: []string{"'a'", " 'b'", "\t'c'"},
		},
		{
			name: "comment lines are dropped",
			text: "\n  'a',\n  // 'b',\n  'c' // x, y\n",
			want: []string{"  'a'", "  'c' "},
		},
		{
			name: "trailing comma",
			text: "\n  A,\n  B,\n",
			want: []string{"  A", "  B"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "blank only",
			text: "\n   \n\t\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitEntries(tt.text, ","))
		})
	}
}

func TestComputeFiller(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{"two spaces", []string{"  A", "    B"}, "  "},
		{"tab", []string{"\tA"}, "\t"},
		{"skips comments", []string{"  // c", "    D"}, "    "},
		{"carriage return is removed", []string{"\r  B"}, "  "},
		{"no indentation", []string{"A", "  B"}, ""},
		{"empty list", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeFiller(tt.entries))
		})
	}
}
