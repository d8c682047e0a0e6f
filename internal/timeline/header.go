package timeline

import (
	"regexp"
	"strings"
)

// listMarker matches unordered (-, *, +) and ordered (1.) list markers.
// The trailing whitespace requirement keeps lines like "1.0 | Release"
// eligible as headers.
var listMarker = regexp.MustCompile(`^([-*+]|\d+\.)\s`)

// IsBodyLine reports whether line is unambiguously body content rather
// than a date/title header. Blank lines, fenced-code openers, block
// quotes, and list items are never headers; treating them as headers
// would corrupt the block they start.
func IsBodyLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, ">") {
		return true
	}
	return listMarker.MatchString(trimmed)
}

// ParseHeader splits a header line into a date and a title.
//
// Three strategies apply in fixed priority order: an explicit pipe
// separator, the literal " - " separator, then the whole line as a bare
// title. Pipe wins because it is the strongest explicit signal; " - " is
// weaker since titles legitimately contain hyphens not surrounded by
// spaces. Fields that trim to nothing are returned as empty strings.
func ParseHeader(line string) (date, title string) {
	if i := strings.Index(line, "|"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	if i := strings.Index(line, " - "); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(" - "):])
	}
	return "", strings.TrimSpace(line)
}
