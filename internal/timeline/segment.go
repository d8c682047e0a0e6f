package timeline

import (
	"regexp"
	"strings"
)

// blockSeparator matches the blank-line runs that delimit entry blocks.
var blockSeparator = regexp.MustCompile(`(?:\r?\n){2,}`)

// Parse segments source into blank-line-delimited blocks and produces one
// entry per block, in block order. Parsing is total: every input string,
// however malformed, yields a valid (possibly empty) entry sequence.
//
// Each block's first line is the header candidate. When that line is
// recognizable body content (see IsBodyLine), or when header extraction
// yields neither date nor title and there are no remaining lines, the
// whole block is kept verbatim as the entry body so no text is lost.
func Parse(source string) []Entry {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil
	}

	var entries []Entry
	for _, block := range blockSeparator.Split(trimmed, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		entries = append(entries, parseBlock(block))
	}
	return entries
}

// parseBlock builds a single entry from one trimmed block.
func parseBlock(block string) Entry {
	first, rest, _ := strings.Cut(block, "\n")
	body := strings.TrimSpace(rest)

	if IsBodyLine(first) {
		return Entry{Body: block}
	}

	date, title := ParseHeader(first)
	if date == "" && title == "" && body == "" {
		// Unparseable header with nothing below it: fall back to the
		// original block rather than dropping content.
		return Entry{Body: block}
	}

	return Entry{Date: date, Title: title, Body: body}
}
