package timeline

import "testing"

func TestIsBodyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"empty line", "", true},
		{"whitespace only", "   \t", true},
		{"fenced code opener", "```go", true},
		{"block quote", "> quoted text", true},
		{"block quote no space", ">quoted", true},
		{"dash list item", "- item one", true},
		{"star list item", "* item", true},
		{"plus list item", "+ item", true},
		{"ordered list item", "12. step twelve", true},
		{"indented list item", "  - nested", true},
		{"plain header", "2024-01-01 | Launch", false},
		{"bare title", "Just a title", false},
		{"version-number date", "1.0 | Release", false},
		{"hyphenated title", "Follow-up review", false},
		{"dash without space", "-no space", false},
		{"numeral period no space", "1.5 stars", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBodyLine(tt.line); got != tt.want {
				t.Errorf("IsBodyLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantDate  string
		wantTitle string
	}{
		{"pipe separator", "2024-01-01 | Launch", "2024-01-01", "Launch"},
		{"pipe without spaces", "2024|Launch", "2024", "Launch"},
		{"multiple pipes keep later ones in title", "2024 | a | b", "2024", "a | b"},
		{"dash separator", "2024-01-01 - Launch", "2024-01-01", "Launch"},
		{"dash separator keeps later dashes", "2024 - a - b", "2024", "a - b"},
		{"pipe beats dash", "2024 - x | Launch", "2024 - x", "Launch"},
		{"bare title", "Just a title", "", "Just a title"},
		{"hyphen inside title is not a separator", "Follow-up review", "", "Follow-up review"},
		{"empty date before pipe", "| Launch", "", "Launch"},
		{"empty title after pipe", "2024 |", "2024", ""},
		{"whitespace collapses to absent", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, title := ParseHeader(tt.line)
			if date != tt.wantDate || title != tt.wantTitle {
				t.Errorf("ParseHeader(%q) = (%q, %q), want (%q, %q)",
					tt.line, date, title, tt.wantDate, tt.wantTitle)
			}
		})
	}
}
