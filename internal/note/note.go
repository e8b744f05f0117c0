// Package note defines the note record shared by the store, the list and the editor.
package note

import (
	"errors"
	"strings"
	"time"
)

// ErrEmpty is returned when a draft has neither a title nor content.
var ErrEmpty = errors.New("title or content is required")

// Note represents a single stored note.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether both title and content are empty.
func (n Note) IsEmpty() bool {
	return n.Title == "" && n.Content == ""
}

// DisplayTitle returns the title, or fallback when it is empty.
func (n Note) DisplayTitle(fallback string) string {
	if n.Title == "" {
		return fallback
	}
	return n.Title
}

// DisplayContent returns the first line of content, or fallback when empty.
func (n Note) DisplayContent(fallback string) string {
	if n.Content == "" {
		return fallback
	}
	first, _, _ := strings.Cut(n.Content, "\n")
	return first
}

// Draft is the editable part of a note as entered by the user.
type Draft struct {
	Title   string
	Content string
}

// DraftOf returns the editable fields of n.
func DraftOf(n Note) Draft {
	return Draft{Title: n.Title, Content: n.Content}
}

// Normalize returns the draft with surrounding whitespace trimmed from both fields.
func (d Draft) Normalize() Draft {
	return Draft{
		Title:   strings.TrimSpace(d.Title),
		Content: strings.TrimSpace(d.Content),
	}
}

// Validate returns ErrEmpty if the normalized draft has no title and no content.
func (d Draft) Validate() error {
	n := d.Normalize()
	if n.Title == "" && n.Content == "" {
		return ErrEmpty
	}
	return nil
}

// Apply returns n with title and content replaced by the draft.
// ID and timestamps are left untouched.
func (d Draft) Apply(n Note) Note {
	n.Title = d.Title
	n.Content = d.Content
	return n
}
