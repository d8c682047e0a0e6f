// Package timeline turns loosely-structured timeline text into ordered entries.
package timeline

import "strings"

// Entry represents one chronological item parsed from timeline source text.
// Date and Title are raw, unvalidated strings as authored; an empty string
// means the field is absent. Entries are immutable once produced and carry
// no identity beyond their position in the parsed sequence.
type Entry struct {
	Date  string `json:"date,omitempty"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// HasDate reports whether the entry carries its own date label.
func (e Entry) HasDate() bool {
	return e.Date != ""
}

// HasTitle reports whether the entry carries a title.
func (e Entry) HasTitle() bool {
	return e.Title != ""
}

// HasBody reports whether the entry has prose content after trimming.
func (e Entry) HasBody() bool {
	return strings.TrimSpace(e.Body) != ""
}
