package heightmgr

import (
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		columns      int
		echospace    int
		regionHeight int
		wantRows     int
		wantOverride bool
	}{
		{
			name:         "short line fits one row",
			text:         strings.Repeat("x", 79),
			columns:      80,
			echospace:    2,
			regionHeight: 2,
			wantRows:     1,
			wantOverride: false,
		},
		{
			name:         "wrapped line needs two rows",
			text:         strings.Repeat("x", 159),
			columns:      80,
			echospace:    2,
			regionHeight: 1,
			wantRows:     2,
			wantOverride: true, // remainder 79 collides with the prompt
		},
		{
			name:         "exact multiple gets the wrap row",
			text:         strings.Repeat("x", 160),
			columns:      80,
			echospace:    2,
			regionHeight: 1,
			wantRows:     3,
			wantOverride: false, // remainder 0
		},
		{
			name:         "long last line within roomy region",
			text:         strings.Repeat("x", 79),
			columns:      80,
			echospace:    78,
			regionHeight: 1,
			wantRows:     1,
			wantOverride: true, // 79 > 78 and the row count meets the height
		},
		{
			name:         "empty string is one row",
			text:         "",
			columns:      80,
			echospace:    2,
			regionHeight: 2,
			wantRows:     1,
			wantOverride: false,
		},
		{
			name:         "trailing newline preserved",
			text:         "hello\n",
			columns:      80,
			echospace:    2,
			regionHeight: 5,
			wantRows:     2,
			wantOverride: false,
		},
		{
			name:         "multiline sums per line",
			text:         strings.Repeat("a", 81) + "\n" + strings.Repeat("b", 10),
			columns:      80,
			echospace:    20,
			regionHeight: 1,
			wantRows:     3,
			wantOverride: false, // last line remainder 10 <= 20
		},
		{
			name:         "tab expands to eight spaces",
			text:         "\t" + strings.Repeat("x", 73),
			columns:      80,
			echospace:    2,
			regionHeight: 1,
			wantRows:     2, // 8 + 73 = 81 columns
			wantOverride: false,
		},
		{
			name:         "wide runes count double",
			text:         strings.Repeat("世", 41),
			columns:      80,
			echospace:    2,
			regionHeight: 1,
			wantRows:     2, // 82 columns
			wantOverride: false,
		},
		{
			name:         "ansi sequences are invisible",
			text:         "\x1b[31m" + strings.Repeat("x", 40) + "\x1b[0m",
			columns:      80,
			echospace:    50,
			regionHeight: 1,
			wantRows:     1,
			wantOverride: false,
		},
		{
			name:         "zero columns fails closed",
			text:         strings.Repeat("x", 500),
			columns:      0,
			echospace:    2,
			regionHeight: 1,
			wantRows:     1,
			wantOverride: false,
		},
		{
			name:         "override needs row count at region height",
			text:         strings.Repeat("x", 79),
			columns:      80,
			echospace:    10,
			regionHeight: 3,
			wantRows:     1,
			wantOverride: false, // 1 < 3, region already roomy enough
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, override := Measure(tt.text, tt.columns, tt.echospace, tt.regionHeight)
			if rows != tt.wantRows {
				t.Errorf("rows = %d, want %d", rows, tt.wantRows)
			}
			if override != tt.wantOverride {
				t.Errorf("override = %v, want %v", override, tt.wantOverride)
			}
		})
	}
}
